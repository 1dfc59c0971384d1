package parser

import (
	"strconv"
	"strings"

	"luna/internal/ast"
	"luna/internal/token"
)

func (p *Parser) parseAtom(tok token.Token) (ast.SExpr, *Error) {
	switch tok.Kind {
	case token.Symbol:
		return ast.NewSymbol(tok.Text, tok.Span), nil
	case token.StringLit:
		return ast.NewString(decodeString(tok.Text), tok.Span), nil
	case token.IntLit:
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			// не влезает в int64
			return ast.SExpr{}, &Error{Span: tok.Span, Kind: InvalidToken, Found: tok.Kind}
		}
		return ast.NewInt(v, tok.Span), nil
	case token.BoolLit:
		return ast.NewBool(tok.Text == "#t" || tok.Text == "#true" || tok.Text == "true", tok.Span), nil
	}
	return ast.SExpr{}, &Error{Span: tok.Span, Kind: UnexpectedToken, Found: tok.Kind}
}

// decodeString снимает кавычки и раскрывает escape-последовательности:
// \n \t \r: управляющие символы, \c для любого другого c даёт c.
func decodeString(lit string) string {
	body := lit
	if len(body) >= 2 {
		body = body[1 : len(body)-1]
	}
	if !strings.ContainsRune(body, '\\') {
		return body
	}
	var sb strings.Builder
	sb.Grow(len(body))
	escaped := false
	for _, r := range body {
		if !escaped {
			if r == '\\' {
				escaped = true
				continue
			}
			sb.WriteRune(r)
			continue
		}
		escaped = false
		switch r {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
