package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"luna/internal/diagfmt"
	"luna/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] FILE",
	Short: "Tokenize a Luna source file",
	Long:  `Tokenize breaks a source file into tokens and prints them with their spans`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	result, err := driver.Tokenize(args[0], s.opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if result.Bag.HasErrors() && !s.quiet {
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, s.prettyOpts())
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(out, result.Tokens)
	default:
		return diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	}
}
