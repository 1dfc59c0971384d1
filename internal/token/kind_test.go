package token_test

import (
	"testing"

	"luna/internal/source"
	"luna/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 1}}
}

func TestIsLiteral(t *testing.T) {
	for _, k := range []token.Kind{token.IntLit, token.BoolLit, token.StringLit} {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	for _, k := range []token.Kind{token.Symbol, token.LParen, token.Invalid, token.EOF} {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestDelimiters(t *testing.T) {
	pairs := []struct{ open, close token.Kind }{
		{token.LParen, token.RParen},
		{token.LBracket, token.RBracket},
		{token.LBrace, token.RBrace},
	}
	for _, p := range pairs {
		if !p.open.IsOpener() || p.open.IsCloser() {
			t.Fatalf("%v should be an opener only", p.open)
		}
		if !p.close.IsCloser() || p.close.IsOpener() {
			t.Fatalf("%v should be a closer only", p.close)
		}
		if c, ok := p.open.Closer(); !ok || c != p.close {
			t.Fatalf("Closer(%v) = %v, %v", p.open, c, ok)
		}
		if o, ok := p.close.Opener(); !ok || o != p.open {
			t.Fatalf("Opener(%v) = %v, %v", p.close, o, ok)
		}
		if !tok(p.open).IsDelimiter() || !tok(p.close).IsDelimiter() {
			t.Fatalf("%v/%v should be delimiters", p.open, p.close)
		}
	}
}

func TestMatchingIsTotal(t *testing.T) {
	// не-скобки не должны паниковать, а сообщать об отсутствии пары
	for _, k := range []token.Kind{token.Invalid, token.EOF, token.Symbol, token.StringLit, token.IntLit, token.BoolLit} {
		if _, ok := k.Closer(); ok {
			t.Fatalf("%v must not have a closer", k)
		}
		if _, ok := k.Opener(); ok {
			t.Fatalf("%v must not have an opener", k)
		}
	}
	if _, ok := token.RParen.Closer(); ok {
		t.Fatal("a closer must not have a closer")
	}
	if _, ok := token.LParen.Opener(); ok {
		t.Fatal("an opener must not have an opener")
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.LParen:    "`(`",
		token.RBrace:    "`}`",
		token.Symbol:    "symbol",
		token.IntLit:    "integer literal",
		token.BoolLit:   "Boolean literal",
		token.StringLit: "string literal",
		token.Invalid:   "invalid token",
		token.EOF:       "end of input",
		token.Kind(200): "unknown token",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("String(%d) = %q, want %q", k, got, want)
		}
	}
	if token.IntLit.ID() != "IntLit" || token.Kind(200).ID() != "Unknown" {
		t.Errorf("unexpected ids %q %q", token.IntLit.ID(), token.Kind(200).ID())
	}
}

func TestIsAtom(t *testing.T) {
	for _, k := range []token.Kind{token.Symbol, token.StringLit, token.IntLit, token.BoolLit} {
		if !k.IsAtom() {
			t.Fatalf("%v should be an atom", k)
		}
	}
	for _, k := range []token.Kind{token.LParen, token.RParen, token.Invalid, token.EOF} {
		if k.IsAtom() {
			t.Fatalf("%v must NOT be an atom", k)
		}
	}
}
