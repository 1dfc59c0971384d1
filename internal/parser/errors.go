package parser

import (
	"fmt"

	"luna/internal/diag"
	"luna/internal/source"
	"luna/internal/token"
)

// ErrorKind classifies syntax errors.
type ErrorKind uint8

const (
	// InvalidToken: input matched none of the token patterns, or an integer
	// literal does not fit in int64.
	InvalidToken ErrorKind = iota
	// UnexpectedToken: a token that cannot start a datum, e.g. `)` at top level.
	UnexpectedToken
	// UnexpectedBracket: a closer of the wrong family inside an open list.
	UnexpectedBracket
	// UnmatchedBracket: input ended while a list was still open.
	UnmatchedBracket
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidToken:
		return "InvalidToken"
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnexpectedBracket:
		return "UnexpectedBracket"
	case UnmatchedBracket:
		return "UnmatchedBracket"
	}
	return "Unknown"
}

// Code maps the kind to its stable diagnostic code.
func (k ErrorKind) Code() diag.Code {
	switch k {
	case InvalidToken:
		return diag.LexInvalidToken
	case UnexpectedToken:
		return diag.SynUnexpectedToken
	case UnexpectedBracket:
		return diag.SynUnexpectedBracket
	case UnmatchedBracket:
		return diag.SynUnmatchedBracket
	}
	return diag.UnknownCode
}

// Error is the single error a parse can produce.
//
// Span is a byte range into the exact input that was parsed. Expected is set
// for UnexpectedBracket and UnmatchedBracket; Found for UnexpectedToken and
// UnexpectedBracket.
type Error struct {
	Span     source.Span
	Kind     ErrorKind
	Expected token.Kind
	Found    token.Kind
	// Opener is the span of the opening bracket for bracket errors.
	Opener source.Span
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidToken:
		return "encountered invalid token"
	case UnexpectedToken:
		return fmt.Sprintf("unexpected %s", e.Found)
	case UnexpectedBracket:
		return fmt.Sprintf("expected %s to close preceding %s, found %s instead",
			e.Expected, openerOf(e.Expected), e.Found)
	case UnmatchedBracket:
		return fmt.Sprintf("expected %s to close preceding %s", e.Expected, openerOf(e.Expected))
	}
	return "syntax error"
}

// Diagnostic converts the error into a diag.Diagnostic. Bracket errors carry
// a note pointing at the opening bracket.
func (e *Error) Diagnostic() diag.Diagnostic {
	d := diag.NewError(e.Kind.Code(), e.Span, e.Error())
	switch e.Kind {
	case UnexpectedBracket, UnmatchedBracket:
		d = d.WithNote(e.Opener, fmt.Sprintf("%s opened here", openerOf(e.Expected)))
	}
	return d
}

func openerOf(closer token.Kind) token.Kind {
	if k, ok := closer.Opener(); ok {
		return k
	}
	return token.Invalid
}
