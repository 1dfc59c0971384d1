package lexer

import (
	"luna/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
//   - переводы строк '\n' коалесцируются в один TriviaNewline
//   - прочие Pattern_White_Space коалесцируются в один TriviaSpace
//   - ';' до конца строки (включая \n или \r\n) -> TriviaLineComment
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()

		switch b := lx.cursor.Peek(); {
		case b == '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)

		case b == ';':
			lx.skipLineComment()
			lx.pushTrivia(token.TriviaLineComment, start)

		case lx.atSpace():
			for lx.atSpace() {
				lx.bumpRune()
			}
			lx.pushTrivia(token.TriviaSpace, start)

		default:
			return
		}
	}
}

// atSpace reports whether the cursor is at whitespace other than '\n'.
func (lx *Lexer) atSpace() bool {
	r, sz := lx.peekRune()
	return sz > 0 && r != '\n' && isPatternWhiteSpace(r)
}

func (lx *Lexer) skipLineComment() {
	lx.cursor.Bump() // ';'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' || b == '\r' {
			break
		}
		lx.cursor.Bump()
	}
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '\r' && b1 == '\n' {
		lx.cursor.Bump()
		lx.cursor.Bump()
		return
	}
	lx.cursor.Eat('\n')
}

func (lx *Lexer) pushTrivia(k token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: k,
		Span: sp,
		Text: lx.file.Content[sp.Start:sp.End],
	})
}
