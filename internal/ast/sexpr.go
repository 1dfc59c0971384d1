// Package ast defines the syntax tree produced by the parser.
//
// SExpr is a closed tagged variant: Kind selects which of the payload fields
// is meaningful. Trees own their children and are never mutated after
// parsing.
package ast

import (
	"luna/internal/source"
	"luna/internal/token"
)

type Kind uint8

const (
	KindInvalid Kind = iota
	KindSymbol
	KindString
	KindInt
	KindBool
	KindList
)

var kindNames = [...]string{
	KindInvalid: "Invalid",
	KindSymbol:  "Symbol",
	KindString:  "String",
	KindInt:     "Int",
	KindBool:    "Bool",
	KindList:    "List",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsAtom reports whether k is a leaf kind.
func (k Kind) IsAtom() bool {
	return k == KindSymbol || k == KindString || k == KindInt || k == KindBool
}

type SExpr struct {
	Kind Kind
	Span source.Span

	// Text is the symbol name (KindSymbol) or the decoded value (KindString).
	Text string
	Int  int64
	Bool bool

	// Open is the opening delimiter of a list: LParen, LBracket or LBrace.
	Open token.Kind
	List []SExpr
}

func NewSymbol(name string, sp source.Span) SExpr {
	return SExpr{Kind: KindSymbol, Span: sp, Text: name}
}

func NewString(value string, sp source.Span) SExpr {
	return SExpr{Kind: KindString, Span: sp, Text: value}
}

func NewInt(v int64, sp source.Span) SExpr {
	return SExpr{Kind: KindInt, Span: sp, Int: v}
}

func NewBool(v bool, sp source.Span) SExpr {
	return SExpr{Kind: KindBool, Span: sp, Bool: v}
}

// NewList builds a list node. A nil items slice is normalized to an empty one
// so that empty lists compare and serialize uniformly.
func NewList(open token.Kind, items []SExpr, sp source.Span) SExpr {
	if items == nil {
		items = []SExpr{}
	}
	return SExpr{Kind: KindList, Span: sp, Open: open, List: items}
}

// Len returns the number of children of a list, 0 for atoms.
func (e SExpr) Len() int {
	if e.Kind != KindList {
		return 0
	}
	return len(e.List)
}

// Equal reports structural equality, ignoring spans. Lists of different
// bracket families are not equal.
func Equal(a, b SExpr) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindSymbol, KindString:
		return a.Text == b.Text
	case KindInt:
		return a.Int == b.Int
	case KindBool:
		return a.Bool == b.Bool
	case KindList:
		if a.Open != b.Open || len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !Equal(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	}
	return true
}

// EqualAll compares two programs element-wise with Equal.
func EqualAll(a, b []SExpr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
