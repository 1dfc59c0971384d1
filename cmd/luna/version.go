package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/spf13/cobra"

	"luna/internal/driver"
	"luna/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the luna version and the active reader settings",
	Long: `Version prints the luna version together with the reader configuration
in effect for the current directory: boolean syntax, source normalization,
the luna.toml that was picked up and the file extensions check looks at`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	versionCmd.Flags().Bool("build", false, "include git commit, message and build date")
}

// versionReport: всё, что печатает `luna version`.
type versionReport struct {
	Tool    string      `json:"tool"`
	Version string      `json:"version"`
	Go      string      `json:"go"`
	Reader  readerInfo  `json:"reader"`
	Build   *buildStamp `json:"build,omitzero"`
}

type readerInfo struct {
	Booleans   string   `json:"booleans"`
	Normalize  string   `json:"normalize"`
	Config     string   `json:"config,omitempty"`
	Extensions []string `json:"extensions"`
}

type buildStamp struct {
	Commit  string `json:"commit"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	withBuild, err := cmd.Flags().GetBool("build")
	if err != nil {
		return fmt.Errorf("failed to get build flag: %w", err)
	}
	format = strings.ToLower(format)
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	report := buildVersionReport(s, withBuild)
	if format == "json" {
		return writeVersionJSON(cmd.OutOrStdout(), report)
	}
	return writeVersionPretty(cmd.OutOrStdout(), report)
}

func buildVersionReport(s *session, withBuild bool) versionReport {
	v := strings.TrimSpace(version.Version)
	if v == "" {
		v = "dev"
	}
	normalize := strings.ToLower(strings.TrimSpace(s.config.Source.Normalize))
	if normalize == "" {
		normalize = "none"
	}
	report := versionReport{
		Tool:    "luna",
		Version: v,
		Go:      runtime.Version(),
		Reader: readerInfo{
			Booleans:   s.opts.Booleans.String(),
			Normalize:  normalize,
			Config:     s.manifestPath,
			Extensions: driver.SourceExts,
		},
	}
	if withBuild {
		report.Build = &buildStamp{
			Commit:  orUnknown(version.GitCommit),
			Message: orUnknown(version.GitMessage),
			Date:    orUnknown(version.BuildDate),
		}
	}
	return report
}

func writeVersionPretty(out io.Writer, r versionReport) error {
	var b strings.Builder
	fmt.Fprintf(&b, "luna %s (%s)\n", version.Colored(r.Version), r.Go)
	fmt.Fprintf(&b, "booleans:   %s\n", r.Reader.Booleans)
	fmt.Fprintf(&b, "normalize:  %s\n", r.Reader.Normalize)
	fmt.Fprintf(&b, "config:     %s\n", orNone(r.Reader.Config))
	fmt.Fprintf(&b, "extensions: %s\n", strings.Join(r.Reader.Extensions, " "))
	if r.Build != nil {
		fmt.Fprintf(&b, "commit:     %s\n", r.Build.Commit)
		fmt.Fprintf(&b, "message:    %s\n", r.Build.Message)
		fmt.Fprintf(&b, "built:      %s\n", r.Build.Date)
	}
	_, err := io.WriteString(out, b.String())
	return err
}

func writeVersionJSON(out io.Writer, r versionReport) error {
	if err := json.MarshalWrite(out, r, jsontext.Multiline(true), jsontext.WithIndent("  ")); err != nil {
		return err
	}
	_, err := io.WriteString(out, "\n")
	return err
}

func orUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
