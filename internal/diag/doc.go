// Package diag defines the diagnostic model shared by the lexer, parser and
// driver.
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form
//     such as LEX1001 or SYN2002.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the source.Span pointing to the issue.
//   - Notes – optional secondary spans, e.g. the opening bracket of an
//     unclosed list.
//
// Package diag does not format anything; rendering lives in internal/diagfmt.
// Producers emit through a Reporter (BagReporter aggregates into a Bag) or
// build values directly with New / NewError.
package diag
