// Package token defines lexical token kinds and trivia for Luna source code.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End), and Start < End for every
//     token except EOF.
//   - Whitespace and ';' line comments never appear in the token stream; they
//     are attached to the next token as Leading trivia.
//   - Integer literals win over symbols only when the whole run of symbol
//     characters is an optionally signed decimal number.
package token
