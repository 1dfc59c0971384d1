package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"luna/internal/token"
)

// String renders e in canonical surface syntax: single spaces between list
// items, the original bracket family, strings re-escaped.
func (e SExpr) String() string {
	var sb strings.Builder
	writeExpr(&sb, e)
	return sb.String()
}

// Format renders a program one top-level expression per line.
func Format(exprs []SExpr) string {
	var sb strings.Builder
	for i, e := range exprs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeExpr(&sb, e)
	}
	return sb.String()
}

func writeExpr(sb *strings.Builder, e SExpr) {
	switch e.Kind {
	case KindSymbol:
		sb.WriteString(e.Text)
	case KindString:
		sb.WriteString(QuoteString(e.Text))
	case KindInt:
		sb.WriteString(strconv.FormatInt(e.Int, 10))
	case KindBool:
		if e.Bool {
			sb.WriteString("#t")
		} else {
			sb.WriteString("#f")
		}
	case KindList:
		open, closeKind := brackets(e.Open)
		sb.WriteString(open)
		for i, child := range e.List {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeExpr(sb, child)
		}
		sb.WriteString(closeKind)
	default:
		sb.WriteString("<invalid>")
	}
}

func brackets(open token.Kind) (o, c string) {
	switch open {
	case token.LBracket:
		return "[", "]"
	case token.LBrace:
		return "{", "}"
	default:
		return "(", ")"
	}
}

// QuoteString produces a string literal that decodes back to s.
func QuoteString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// WriteTree dumps a program as an indented tree with spans, one node per line:
//
//	List ( len=3 0:0-11
//	  Int 1 0:1-2
func WriteTree(w io.Writer, exprs []SExpr) error {
	for _, e := range exprs {
		var err error
		Walk(e, func(n SExpr, depth int) bool {
			if err != nil {
				return false
			}
			_, err = fmt.Fprintf(w, "%s%s %s\n", strings.Repeat("  ", depth), describe(n), n.Span)
			return true
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func describe(n SExpr) string {
	switch n.Kind {
	case KindList:
		o, _ := brackets(n.Open)
		return fmt.Sprintf("List %s len=%d", o, len(n.List))
	case KindInvalid:
		return "Invalid"
	default:
		return n.Kind.String() + " " + n.String()
	}
}
