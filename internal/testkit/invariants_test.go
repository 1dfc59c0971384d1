package testkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luna/internal/ast"
	"luna/internal/parser"
	"luna/internal/source"
	"luna/internal/testkit"
	"luna/internal/token"
)

func TestCheckSpanInvariants_Parsed(t *testing.T) {
	inputs := []string{
		"",
		"(1 (2 3) 4)",
		"; comment\n[a {b \"c\"}] #t\n",
		"#!/usr/bin/env luna\n(display \"hi\")",
	}
	for _, in := range inputs {
		f := source.NewVirtualFile("t.scm", in)
		prog, err := parser.ParseFile(f, parser.Options{})
		require.NoError(t, err, in)
		assert.NoError(t, testkit.CheckSpanInvariants(prog, f), in)
	}
}

func TestCheckSpanInvariants_Violations(t *testing.T) {
	f := source.NewVirtualFile("t.scm", "(a b)")

	empty := []ast.SExpr{ast.NewSymbol("a", source.Span{Start: 1, End: 1})}
	assert.Error(t, testkit.CheckSpanInvariants(empty, f))

	outside := []ast.SExpr{ast.NewSymbol("a", source.Span{Start: 3, End: 9})}
	assert.Error(t, testkit.CheckSpanInvariants(outside, f))

	unordered := []ast.SExpr{ast.NewList(token.LParen, []ast.SExpr{
		ast.NewSymbol("b", source.Span{Start: 3, End: 4}),
		ast.NewSymbol("a", source.Span{Start: 1, End: 2}),
	}, source.Span{Start: 0, End: 5})}
	assert.Error(t, testkit.CheckSpanInvariants(unordered, f))

	assert.Error(t, testkit.CheckSpanInvariants(nil, nil))
}
