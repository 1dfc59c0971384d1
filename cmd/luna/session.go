package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"luna/internal/diagfmt"
	"luna/internal/driver"
	"luna/internal/lexer"
	"luna/internal/logs"
	"luna/internal/prof"
)

// session bundles what every command derives from persistent flags and luna.toml.
type session struct {
	logger       *logs.Logger
	profiler     *prof.Profiler
	config       projectConfig
	manifestPath string
	opts         driver.Options
	color        bool
	quiet        bool
	timings      bool
}

func newSession(cmd *cobra.Command) (*session, error) {
	flags := cmd.Root().PersistentFlags()

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	booleansFlag, err := flags.GetString("booleans")
	if err != nil {
		return nil, fmt.Errorf("failed to get booleans flag: %w", err)
	}
	logLevel, err := flags.GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	logFile, err := flags.GetString("log-file")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-file flag: %w", err)
	}
	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	profCfg, err := readProfileFlags(cmd)
	if err != nil {
		return nil, err
	}

	colorMode, err := readSwitch("color", colorFlag)
	if err != nil {
		return nil, err
	}
	useColor := colorMode.enabled(os.Stderr)
	color.NoColor = !useColor

	cfg, manifestPath, err := resolveProjectConfig(configPath, ".")
	if err != nil {
		return nil, err
	}
	if booleansFlag != "" {
		cfg.Syntax.Booleans = booleansFlag
	}
	booleans, err := lexer.ParseBoolSyntax(cfg.Syntax.Booleans)
	if err != nil {
		return nil, err
	}
	normalize, err := parseNormalization(cfg.Source.Normalize)
	if err != nil {
		return nil, err
	}

	logger, err := logs.New(logs.Config{Level: logLevel, File: logFile, Stderr: cmd.ErrOrStderr()})
	if err != nil {
		return nil, err
	}
	if manifestPath != "" {
		logger.Debug("loaded project config", "path", manifestPath)
	}
	profiler, err := prof.Start(profCfg)
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("failed to start profiling: %w", err)
	}

	return &session{
		logger:       logger,
		profiler:     profiler,
		config:       cfg,
		manifestPath: manifestPath,
		opts: driver.Options{
			Booleans:       booleans,
			Normalize:      normalize,
			MaxDiagnostics: maxDiagnostics,
			Logger:         logger.Logger,
		},
		color:   useColor,
		quiet:   quiet,
		timings: timings,
	}, nil
}

// Close stops profiling and flushes the log file.
func (s *session) Close() error {
	profErr := s.profiler.Stop()
	if profErr != nil {
		s.logger.Error("profiling failed", "err", profErr)
	}
	return errors.Join(profErr, s.logger.Close())
}

func readProfileFlags(cmd *cobra.Command) (prof.Config, error) {
	flags := cmd.Root().PersistentFlags()
	cpu, err := flags.GetString("cpu-profile")
	if err != nil {
		return prof.Config{}, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	mem, err := flags.GetString("mem-profile")
	if err != nil {
		return prof.Config{}, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	tracePath, err := flags.GetString("runtime-trace")
	if err != nil {
		return prof.Config{}, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	return prof.Config{CPU: cpu, Mem: mem, Trace: tracePath}, nil
}

func (s *session) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     s.color,
		Context:   2,
		ShowNotes: true,
	}
}

// switchMode is the value of an auto|on|off flag.
type switchMode string

const (
	switchAuto switchMode = "auto"
	switchOn   switchMode = "on"
	switchOff  switchMode = "off"
)

func readSwitch(flag, value string) (switchMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return switchAuto, nil
	case "on":
		return switchOn, nil
	case "off":
		return switchOff, nil
	default:
		return "", fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
	}
}

// enabled resolves auto by checking whether f is a terminal.
func (m switchMode) enabled(f *os.File) bool {
	switch m {
	case switchOn:
		return true
	case switchOff:
		return false
	default:
		return isTerminal(f)
	}
}
