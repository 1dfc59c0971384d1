package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"luna/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "luna [FILE]",
	Short: "Luna Scheme reader and toolchain",
	Long: `Luna reads Scheme-like S-expressions. With FILE it parses the file and
prints the syntax tree; without arguments it starts an interactive REPL.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// main registers subcommands and persistent flags and executes the root command.
// Any error exits with status 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("booleans", "", "boolean literal syntax (hash|bare), overrides luna.toml")
	rootCmd.PersistentFlags().String("log-level", "warn", "stderr log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-file", "", "append JSON logs to this file")
	rootCmd.PersistentFlags().String("config", "", "path to luna.toml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write runtime trace to file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return runParsePath(cmd, args[0], "tree")
	}
	return runREPL(cmd, nil)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
