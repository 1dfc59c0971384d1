package lexer

import (
	"luna/internal/token"
)

// scanAtom consumes the longest run of symbol characters. The run is an
// integer literal when all of it matches [+-]?[0-9]+, a boolean under
// BoolBare when it is exactly true/false, and a symbol otherwise.
func (lx *Lexer) scanAtom() token.Token {
	start := lx.cursor.Mark()
	lx.bumpSymbolRun()

	tok := lx.emit(token.Symbol, start)
	switch {
	case isIntLiteral(tok.Text):
		tok.Kind = token.IntLit
	case lx.opts.Booleans == BoolBare && (tok.Text == "true" || tok.Text == "false"):
		tok.Kind = token.BoolLit
	}
	return tok
}

// scanHash handles '#'. Only #t, #f, #true and #false (under BoolHash) are
// valid; anything else is one Invalid token covering '#' and the symbol
// characters glued to it.
func (lx *Lexer) scanHash() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	lx.bumpSymbolRun()

	tok := lx.emit(token.Invalid, start)
	if lx.opts.Booleans == BoolHash {
		switch tok.Text {
		case "#t", "#f", "#true", "#false":
			tok.Kind = token.BoolLit
		}
	}
	return tok
}

// scanInvalidRune emits an Invalid token for exactly one rune (or one byte of
// malformed UTF-8).
func (lx *Lexer) scanInvalidRune() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	return lx.emit(token.Invalid, start)
}

func (lx *Lexer) bumpSymbolRun() {
	for {
		r, sz := lx.peekRune()
		if sz == 0 || !isSymbolRune(r) {
			return
		}
		lx.bumpRune()
	}
}

func isIntLiteral(text string) bool {
	if text != "" && (text[0] == '+' || text[0] == '-') {
		text = text[1:]
	}
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if !isDec(text[i]) {
			return false
		}
	}
	return true
}
