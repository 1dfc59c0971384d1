package ast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luna/internal/ast"
	"luna/internal/source"
	"luna/internal/token"
)

func sp(start, end uint32) source.Span {
	return source.Span{Start: start, End: end}
}

// (1 [a "x\"y"] {#t})
func sample() ast.SExpr {
	return ast.NewList(token.LParen, []ast.SExpr{
		ast.NewInt(1, sp(1, 2)),
		ast.NewList(token.LBracket, []ast.SExpr{
			ast.NewSymbol("a", sp(4, 5)),
			ast.NewString(`x"y`, sp(6, 12)),
		}, sp(3, 13)),
		ast.NewList(token.LBrace, []ast.SExpr{
			ast.NewBool(true, sp(15, 17)),
		}, sp(14, 18)),
	}, sp(0, 19))
}

func TestStringCanonical(t *testing.T) {
	assert.Equal(t, `(1 [a "x\"y"] {#t})`, sample().String())
	assert.Equal(t, "()", ast.NewList(token.LParen, nil, sp(0, 2)).String())
	assert.Equal(t, "-11", ast.NewInt(-11, sp(0, 3)).String())
	assert.Equal(t, "#f", ast.NewBool(false, sp(0, 2)).String())
}

func TestQuoteString(t *testing.T) {
	assert.Equal(t, `"a\nb\t\\\r"`, ast.QuoteString("a\nb\t\\\r"))
	assert.Equal(t, `"λ"`, ast.QuoteString("λ"))
}

func TestFormat(t *testing.T) {
	prog := []ast.SExpr{ast.NewSymbol("a", sp(0, 1)), sample()}
	assert.Equal(t, "a\n(1 [a \"x\\\"y\"] {#t})", ast.Format(prog))
	assert.Empty(t, ast.Format(nil))
}

func TestNewListNormalizesNil(t *testing.T) {
	l := ast.NewList(token.LBrace, nil, sp(0, 2))
	require.NotNil(t, l.List)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, ast.NewInt(3, sp(0, 1)).Len())
}

func TestEqualIgnoresSpans(t *testing.T) {
	a := sample()
	b := sample()
	b.Span = sp(100, 200)
	b.List[0].Span = sp(7, 8)
	assert.True(t, ast.Equal(a, b))

	c := sample()
	c.List[1].Open = token.LParen
	assert.False(t, ast.Equal(a, c), "bracket family matters")

	d := sample()
	d.List[2].List[0].Bool = false
	assert.False(t, ast.Equal(a, d))

	assert.False(t, ast.Equal(ast.NewSymbol("1", sp(0, 1)), ast.NewInt(1, sp(0, 1))))
	assert.True(t, ast.EqualAll([]ast.SExpr{a}, []ast.SExpr{b}))
	assert.False(t, ast.EqualAll([]ast.SExpr{a}, nil))
}

func TestWalkAndMeasure(t *testing.T) {
	var kinds []ast.Kind
	ast.Walk(sample(), func(e ast.SExpr, depth int) bool {
		kinds = append(kinds, e.Kind)
		return e.Open != token.LBracket
	})
	assert.Equal(t, []ast.Kind{ast.KindList, ast.KindInt, ast.KindList, ast.KindList, ast.KindBool}, kinds)

	st := ast.Measure([]ast.SExpr{sample(), ast.NewSymbol("z", sp(20, 21))})
	assert.Equal(t, ast.Stats{Nodes: 8, Atoms: 5, Lists: 3, MaxDepth: 3}, st)
}

func TestWriteTree(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, ast.WriteTree(&sb, []ast.SExpr{sample()}))
	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "List ( len=3 0:0-19", lines[0])
	assert.Equal(t, "  Int 1 0:1-2", lines[1])
	assert.Equal(t, "    String \"x\\\"y\" 0:6-12", lines[4])
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Symbol", ast.KindSymbol.String())
	assert.Equal(t, "Unknown", ast.Kind(200).String())
	assert.True(t, ast.KindBool.IsAtom())
	assert.False(t, ast.KindList.IsAtom())
}
