package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"luna/internal/diagfmt"
	"luna/internal/driver"
	"luna/internal/version"
)

const replPrompt = "> "

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive reader",
	Long:  `Read S-expressions line by line and print them back or the syntax error`,
	Args:  cobra.NoArgs,
	RunE:  runREPL,
}

func init() {
	replCmd.Flags().String("history", "", "history file (default: $XDG_DATA_HOME/luna/history.txt)")
}

func runREPL(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	// у корневой команды флага --history нет
	historyPath := ""
	if f := cmd.Flags().Lookup("history"); f != nil {
		historyPath = f.Value.String()
	}
	if historyPath == "" {
		historyPath = s.config.REPL.History
	}
	if historyPath == "" {
		historyPath = defaultHistoryPath()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Welcome to Luna v%s!\n", version.Colored(version.Version))
	fmt.Fprintln(out, "Press C-d to exit.")

	if historyPath != "" {
		if err := os.MkdirAll(filepath.Dir(historyPath), 0o755); err != nil {
			s.logger.Warn("history disabled", "err", err)
			historyPath = ""
		} else if _, err := os.Stat(historyPath); errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(out, "No previous history.")
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyPath,
		InterruptPrompt: "^C",
		Stdout:          out,
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to start line editor: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("readline: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		evalLine(out, line, s.opts)
	}
}

// evalLine parses one line and prints the canonical form or the syntax error
// with the offending text.
func evalLine(out io.Writer, line string, opts driver.Options) {
	res := driver.ParseText("<repl>", line, opts)
	if res.Err != nil {
		fmt.Fprintf(out, "Syntax error: %s\n", res.Err)
		fmt.Fprintf(out, "context: %s\n", res.File.Text(res.Err.Span))
		return
	}
	if err := diagfmt.FormatSExprPretty(out, res.Program); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}

func defaultHistoryPath() string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "luna", "history.txt")
}
