package diagfmt

import (
	"io"
	"strings"

	"luna/internal/ast"
)

// SExprJSON is the JSON shape of an ast.SExpr. Value holds the atom payload;
// Items is present only for lists.
type SExprJSON struct {
	Kind  string      `json:"kind"`
	Span  SpanJSON    `json:"span"`
	Value any         `json:"value,omitzero"`
	Open  string      `json:"open,omitempty"`
	Items []SExprJSON `json:"items,omitzero"`
}

// ProgramJSON: корень JSON-вывода parse.
type ProgramJSON struct {
	File  string      `json:"file"`
	Exprs []SExprJSON `json:"exprs"`
	Stats ast.Stats   `json:"stats"`
}

func buildSExprJSON(e ast.SExpr) SExprJSON {
	out := SExprJSON{Kind: e.Kind.String(), Span: spanJSON(e.Span)}
	switch e.Kind {
	case ast.KindSymbol, ast.KindString:
		out.Value = e.Text
	case ast.KindInt:
		out.Value = e.Int
	case ast.KindBool:
		out.Value = e.Bool
	case ast.KindList:
		out.Open = strings.Trim(e.Open.String(), "`")
		out.Items = make([]SExprJSON, 0, len(e.List))
		for _, child := range e.List {
			out.Items = append(out.Items, buildSExprJSON(child))
		}
	}
	return out
}

// FormatSExprPretty печатает программу в каноническом виде, по выражению на строку.
func FormatSExprPretty(w io.Writer, prog []ast.SExpr) error {
	if len(prog) == 0 {
		return nil
	}
	_, err := io.WriteString(w, ast.Format(prog)+"\n")
	return err
}

// FormatSExprTree печатает дерево с кинами и спанами.
func FormatSExprTree(w io.Writer, prog []ast.SExpr) error {
	return ast.WriteTree(w, prog)
}

// FormatSExprJSON выводит программу в JSON.
func FormatSExprJSON(w io.Writer, path string, prog []ast.SExpr) error {
	out := ProgramJSON{
		File:  path,
		Exprs: make([]SExprJSON, 0, len(prog)),
		Stats: ast.Measure(prog),
	}
	for _, e := range prog {
		out.Exprs = append(out.Exprs, buildSExprJSON(e))
	}
	return writeJSON(w, out)
}
