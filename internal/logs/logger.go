package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// Config selects where log records go.
type Config struct {
	Level  string    // debug|info|warn|error, по умолчанию warn
	File   string    // JSON-лог; если пусто, файла нет
	Stderr io.Writer // текстовый вывод, по умолчанию os.Stderr
}

// Logger owns the handlers and the file, if any.
type Logger struct {
	*slog.Logger
	level *slog.LevelVar
	file  *os.File
}

// ParseLevel accepts the usual level names, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// New builds a logger that fans out to stderr text and an optional JSON file.
// The file handler always records debug and above.
func New(cfg Config) (*Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	level := new(slog.LevelVar)
	level.Set(lvl)

	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	}

	var file *os.File
	if cfg.File != "" {
		// #nosec G304 -- path comes from the command line
		file, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return &Logger{
		Logger: slog.New(&Handler{Handler: slogmulti.Fanout(handlers...)}),
		level:  level,
		file:   file,
	}, nil
}

// SetLevel changes the stderr level at runtime.
func (l *Logger) SetLevel(lvl slog.Level) { l.level.Set(lvl) }

// Close closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
