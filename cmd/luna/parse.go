package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"luna/internal/diagfmt"
	"luna/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] FILE",
	Short: "Parse a Luna source file",
	Long:  `Parse reads a source file into S-expressions and prints them`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
		return runParsePath(cmd, args[0], format)
	},
}

var errSyntax = errors.New("syntax error")

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|tree|json)")
}

func runParsePath(cmd *cobra.Command, path, format string) error {
	switch format {
	case "pretty", "tree", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	result, err := driver.Parse(path, s.opts)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	if s.timings {
		printTimings(cmd.ErrOrStderr(), result.Timing)
	}

	out := cmd.OutOrStdout()
	if result.Err != nil {
		if format == "json" {
			if err := diagfmt.JSON(out, result.Bag, result.FileSet, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
				return err
			}
		} else if !s.quiet {
			diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, s.prettyOpts())
		}
		return errSyntax
	}

	switch format {
	case "tree":
		return diagfmt.FormatSExprTree(out, result.Program)
	case "json":
		return diagfmt.FormatSExprJSON(out, result.File.Path, result.Program)
	default:
		return diagfmt.FormatSExprPretty(out, result.Program)
	}
}
