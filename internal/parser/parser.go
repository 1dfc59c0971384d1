// Package parser builds ast.SExpr trees from the token stream.
//
// The parser peeks one token at a time and keeps open lists on an explicit
// stack of frames, so nesting depth is bounded by memory rather than the Go
// call stack. The first error stops the parse; there is no recovery.
package parser

import (
	"luna/internal/ast"
	"luna/internal/lexer"
	"luna/internal/source"
	"luna/internal/token"
)

type Options struct {
	// Booleans selects the accepted boolean literal spelling.
	Booleans lexer.BoolSyntax
	// KeepShebang disables skipping of a leading "#!" line.
	KeepShebang bool
}

// frame: открытый, ещё не закрытый список
type frame struct {
	open  token.Token
	items []ast.SExpr
	end   uint32 // конец последнего съеденного токена внутри списка
}

// Parser: состояние разбора одного входа
type Parser struct {
	lx    *lexer.Lexer
	stack []frame
	top   []ast.SExpr
}

// Parse parses a whole program from an in-memory string. A leading shebang
// line is skipped; spans in the result and in any *Error are offsets into
// input itself.
func Parse(input string) ([]ast.SExpr, error) {
	return ParseFile(source.NewVirtualFile("<input>", input), Options{})
}

// ParseFile parses the contents of file. On failure the returned error is a
// *Error.
func ParseFile(file *source.File, opts Options) ([]ast.SExpr, error) {
	p := Parser{
		lx: lexer.New(file, lexer.Options{
			Booleans:    opts.Booleans,
			SkipShebang: !opts.KeepShebang,
		}),
	}
	prog, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	return prog, nil
}

// parseProgram: основной цикл, один peek на шаг; открытые списки лежат в стеке.
func (p *Parser) parseProgram() ([]ast.SExpr, *Error) {
	p.top = make([]ast.SExpr, 0)
	for {
		tok := p.lx.Peek()
		switch {
		case tok.Kind == token.EOF:
			if len(p.stack) > 0 {
				return nil, p.unmatched()
			}
			return p.top, nil

		case tok.Kind == token.Invalid:
			return nil, &Error{Span: tok.Span, Kind: InvalidToken, Found: tok.Kind}

		case tok.Kind.IsOpener():
			p.lx.Next()
			p.stack = append(p.stack, frame{open: tok, end: tok.Span.End})

		case tok.Kind.IsCloser():
			if err := p.closeList(tok); err != nil {
				return nil, err
			}

		case tok.Kind.IsAtom():
			p.lx.Next()
			node, err := p.parseAtom(tok)
			if err != nil {
				return nil, err
			}
			p.push(node)

		default:
			return nil, &Error{Span: tok.Span, Kind: UnexpectedToken, Found: tok.Kind}
		}
	}
}

// closeList сверяет закрывающую скобку с открывающей и сворачивает верхний фрейм.
func (p *Parser) closeList(tok token.Token) *Error {
	if len(p.stack) == 0 {
		return &Error{Span: tok.Span, Kind: UnexpectedToken, Found: tok.Kind}
	}
	f := &p.stack[len(p.stack)-1]
	want, _ := f.open.Kind.Closer()
	if tok.Kind != want {
		return &Error{
			Span:     source.Span{File: tok.Span.File, Start: f.open.Span.Start, End: tok.Span.End},
			Kind:     UnexpectedBracket,
			Expected: want,
			Found:    tok.Kind,
			Opener:   f.open.Span,
		}
	}
	p.lx.Next()
	list := ast.NewList(f.open.Kind, f.items, f.open.Span.Cover(tok.Span))
	p.stack = p.stack[:len(p.stack)-1]
	p.push(list)
	return nil
}

// unmatched строит ошибку для самого внутреннего незакрытого списка.
func (p *Parser) unmatched() *Error {
	f := p.stack[len(p.stack)-1]
	want, _ := f.open.Kind.Closer()
	return &Error{
		Span:     source.Span{File: f.open.Span.File, Start: f.open.Span.Start, End: f.end},
		Kind:     UnmatchedBracket,
		Expected: want,
		Opener:   f.open.Span,
	}
}

func (p *Parser) push(node ast.SExpr) {
	if len(p.stack) == 0 {
		p.top = append(p.top, node)
		return
	}
	f := &p.stack[len(p.stack)-1]
	f.items = append(f.items, node)
	f.end = node.Span.End
}
