package lexer

import (
	"luna/internal/token"
)

// scanString scans "..." where '\' escapes the following character. The
// lexeme keeps both quotes; decoding happens in the parser. An unterminated
// literal becomes one Invalid token running to the end of input.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			return lx.emit(token.StringLit, start)
		case '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				return lx.emit(token.Invalid, start)
			}
			// экранированный символ может быть многобайтовым
			lx.bumpRune()
		default:
			lx.cursor.Bump()
		}
	}
	return lx.emit(token.Invalid, start)
}
