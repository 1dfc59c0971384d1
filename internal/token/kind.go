package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid marks text that matches no token pattern.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left square bracket token.
	LBracket // [
	// RBracket represents the right square bracket token.
	RBracket // ]
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }

	// Symbol represents a symbol such as foo, set!, eq? or +.
	Symbol
	// StringLit represents a double-quoted string literal.
	StringLit
	// IntLit represents an optionally signed decimal integer literal.
	IntLit
	// BoolLit represents a boolean literal.
	BoolLit
)

var kindNames = [...]string{
	Invalid:   "invalid token",
	EOF:       "end of input",
	LParen:    "`(`",
	RParen:    "`)`",
	LBracket:  "`[`",
	RBracket:  "`]`",
	LBrace:    "`{`",
	RBrace:    "`}`",
	Symbol:    "symbol",
	StringLit: "string literal",
	IntLit:    "integer literal",
	BoolLit:   "Boolean literal",
}

var kindIDs = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	LParen:    "LParen",
	RParen:    "RParen",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	Symbol:    "Symbol",
	StringLit: "StringLit",
	IntLit:    "IntLit",
	BoolLit:   "BoolLit",
}

// String returns the human-readable form used in error messages.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown token"
}

// ID returns the identifier-like name of the kind (used by token dumps).
func (k Kind) ID() string {
	if int(k) < len(kindIDs) {
		return kindIDs[k]
	}
	return "Unknown"
}

// IsOpener reports whether k opens a list.
func (k Kind) IsOpener() bool {
	return k == LParen || k == LBracket || k == LBrace
}

// IsCloser reports whether k closes a list.
func (k Kind) IsCloser() bool {
	return k == RParen || k == RBracket || k == RBrace
}

// IsAtom reports whether k produces an atom node.
func (k Kind) IsAtom() bool {
	switch k {
	case Symbol, StringLit, IntLit, BoolLit:
		return true
	default:
		return false
	}
}

// Closer returns the closing delimiter that matches the opener k.
// ok is false when k is not an opening delimiter.
func (k Kind) Closer() (closer Kind, ok bool) {
	switch k {
	case LParen:
		return RParen, true
	case LBracket:
		return RBracket, true
	case LBrace:
		return RBrace, true
	default:
		return Invalid, false
	}
}

// Opener returns the opening delimiter that matches the closer k.
// ok is false when k is not a closing delimiter.
func (k Kind) Opener() (opener Kind, ok bool) {
	switch k {
	case RParen:
		return LParen, true
	case RBracket:
		return LBracket, true
	case RBrace:
		return LBrace, true
	default:
		return Invalid, false
	}
}
