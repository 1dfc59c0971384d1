package lexer

import (
	"fmt"
	"iter"

	"fortio.org/safecast"

	"luna/internal/source"
	"luna/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	begin  Mark           // позиция первого токена (после shebang)
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	cursor := NewCursor(file)
	if opts.SkipShebang {
		skip, err := safecast.Conv[uint32](ShebangLen(file.Content))
		if err != nil {
			panic(fmt.Errorf("shebang length overflow: %w", err))
		}
		cursor.Off = skip
	}
	return &Lexer{
		file:   file,
		cursor: cursor,
		opts:   opts,
		begin:  cursor.Mark(),
	}
}

// File returns the file being lexed.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// Next returns the next significant token with its Leading trivia.
// After the input is exhausted it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	// trivia перед EOF не приклеиваем
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	var tok token.Token
	switch ch := lx.cursor.Peek(); ch {
	case '(':
		tok = lx.single(token.LParen)
	case ')':
		tok = lx.single(token.RParen)
	case '[':
		tok = lx.single(token.LBracket)
	case ']':
		tok = lx.single(token.RBracket)
	case '{':
		tok = lx.single(token.LBrace)
	case '}':
		tok = lx.single(token.RBrace)
	case '"':
		tok = lx.scanString()
	case '#':
		tok = lx.scanHash()
	default:
		if r, sz := lx.peekRune(); sz > 0 && isSymbolRune(r) {
			tok = lx.scanAtom()
		} else {
			tok = lx.scanInvalidRune()
		}
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it. Repeated calls return the
// same token until Next is called.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

// Reset rewinds the lexer to the first token of the input.
func (lx *Lexer) Reset() {
	lx.cursor.Reset(lx.begin)
	lx.look = nil
	lx.hold = nil
}

// All returns a lazy sequence of all tokens from the start of the input,
// excluding the final EOF. Iterating rewinds the lexer first.
func (lx *Lexer) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		lx.Reset()
		for {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) single(k token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.emit(k, start)
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: lx.file.Content[sp.Start:sp.End]}
}
