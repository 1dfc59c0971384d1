package token

import (
	"luna/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is an integer, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, BoolLit, StringLit:
		return true
	default:
		return false
	}
}

// IsDelimiter reports whether the token is one of the six bracket tokens.
func (t Token) IsDelimiter() bool { return t.Kind.IsOpener() || t.Kind.IsCloser() }

// IsSymbol reports whether the token is a symbol.
func (t Token) IsSymbol() bool { return t.Kind == Symbol }

func (t Token) String() string {
	return t.Kind.String()
}
