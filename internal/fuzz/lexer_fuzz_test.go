package fuzztests

import (
	"testing"

	"luna/internal/lexer"
	"luna/internal/source"
	"luna/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.scm", input)
		file := fs.Get(fileID)

		for _, syntax := range []lexer.BoolSyntax{lexer.BoolHash, lexer.BoolBare} {
			lx := lexer.New(file, lexer.Options{Booleans: syntax, SkipShebang: true})
			var prevEnd uint32
			for {
				tok := lx.Next()
				if tok.Kind == token.EOF {
					if !tok.Span.Empty() {
						t.Fatalf("EOF span %v is not empty", tok.Span)
					}
					break
				}
				if tok.Span.Empty() {
					t.Fatalf("empty span for %s at %v", tok.Kind, tok.Span)
				}
				if tok.Span.Start < prevEnd || int(tok.Span.End) > len(file.Content) {
					t.Fatalf("token %s span %v out of order (prev end %d, len %d)",
						tok.Kind, tok.Span, prevEnd, len(file.Content))
				}
				if tok.Text != file.Text(tok.Span) {
					t.Fatalf("token text %q does not match span text %q", tok.Text, file.Text(tok.Span))
				}
				prevEnd = tok.Span.End
			}
			if next := lx.Next(); next.Kind != token.EOF {
				t.Fatalf("lexer resumed after EOF with %s", next.Kind)
			}
		}
	})
}
