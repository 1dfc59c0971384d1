package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"luna/internal/diag"
	"luna/internal/diagfmt"
	"luna/internal/driver"
	"luna/internal/logs"
	"luna/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <FILE|DIR>",
	Short: "Check that Luna sources parse",
	Long:  `Check parses a file or every *.scm and *.luna file under a directory in parallel and reports syntax errors`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto, or [check].jobs)")
	checkCmd.Flags().Bool("cache", true, "use the on-disk parse cache (default from [check].cache)")
	checkCmd.Flags().Bool("clear-cache", false, "drop the parse cache before checking")
	checkCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	checkCmd.Flags().String("path-mode", "auto", "path display (auto|absolute|relative|basename)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	root := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readSwitch("ui", uiFlag)
	if err != nil {
		return err
	}
	pathModeFlag, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	pathMode := diagfmt.ParsePathMode(pathModeFlag)

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if !cmd.Flags().Changed("jobs") {
		jobs = s.config.Check.Jobs
	}
	if !cmd.Flags().Changed("cache") {
		useCache = s.config.Check.Cache
	}

	opts := driver.CheckOptions{Options: s.opts, Jobs: jobs}
	if useCache {
		cache, cacheErr := driver.OpenDiskCache("luna")
		if cacheErr != nil {
			s.logger.Warn("disk cache unavailable", "err", cacheErr)
		} else {
			if clearCache {
				if err := cache.DropAll(); err != nil {
					return fmt.Errorf("failed to clear cache: %w", err)
				}
			}
			opts.Cache = cache
		}
	}

	ctx := logs.With(cmd.Context(), slog.String("cmd", "check"))
	var result *driver.CheckResult
	if format == "pretty" && !s.quiet && mode.enabled(os.Stdout) {
		result, err = checkWithProgress(ctx, root, opts)
	} else {
		result, err = driver.Check(ctx, root, opts)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if err := printCheckResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), result, format, pathMode, s); err != nil {
		return err
	}
	if s.timings {
		printTimings(cmd.ErrOrStderr(), result.Timing)
	}
	if failed := result.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(result.Files))
	}
	return nil
}

func checkWithProgress(ctx context.Context, root string, opts driver.CheckOptions) (*driver.CheckResult, error) {
	files, err := driver.ListSourceFiles(root)
	if err != nil {
		return nil, err
	}
	events := make(chan driver.Event, 64)
	opts.Sink = driver.ChannelSink{Ch: events}

	type outcome struct {
		result *driver.CheckResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := driver.Check(ctx, root, opts)
		close(events)
		done <- outcome{res, err}
	}()

	uiErr := ui.RunProgress("checking", files, events, os.Stdout)
	// UI мог завершиться раньше: дочитываем события, чтобы Check не застрял
	for range events {
	}
	out := <-done
	if out.err != nil {
		return nil, out.err
	}
	if uiErr != nil && opts.Logger != nil {
		opts.Logger.Debug("progress ui failed", "err", uiErr)
	}
	return out.result, nil
}

func printCheckResult(out, errOut io.Writer, result *driver.CheckResult, format string, pathMode diagfmt.PathMode, s *session) error {
	switch format {
	case "json":
		return diagfmt.JSON(out, result.Bag, result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     true,
		})
	case "short":
		_, err := io.WriteString(out, diag.FormatShortDiagnostics(result.Bag.Items(), result.FileSet, false))
		return err
	}

	if result.Bag.Len() > 0 {
		opts := s.prettyOpts()
		opts.PathMode = pathMode
		diagfmt.Pretty(errOut, result.Bag, result.FileSet, opts)
	}
	if !s.quiet {
		_, err := fmt.Fprintf(out, "checked %d files: %d failed, %d cached\n",
			len(result.Files), result.Failed(), result.CacheHits())
		return err
	}
	return nil
}
