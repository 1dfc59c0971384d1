package lexer

import (
	"fmt"
	"strings"
)

// BoolSyntax selects which spelling of boolean literals the lexer accepts.
type BoolSyntax uint8

const (
	// BoolHash accepts the Scheme spellings #t, #f, #true and #false.
	BoolHash BoolSyntax = iota
	// BoolBare accepts the words true and false.
	BoolBare
)

func (b BoolSyntax) String() string {
	switch b {
	case BoolHash:
		return "hash"
	case BoolBare:
		return "bare"
	}
	return "unknown"
}

// ParseBoolSyntax parses the configuration spelling of a BoolSyntax.
func ParseBoolSyntax(s string) (BoolSyntax, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hash":
		return BoolHash, nil
	case "bare":
		return BoolBare, nil
	}
	return BoolHash, fmt.Errorf("unknown boolean syntax %q (must be hash or bare)", s)
}

type Options struct {
	Booleans BoolSyntax
	// SkipShebang starts lexing after a leading "#!" line. Spans stay relative
	// to the full input.
	SkipShebang bool
}
