package driver

import (
	"fmt"

	"luna/internal/diag"
	"luna/internal/lexer"
	"luna/internal/source"
	"luna/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token // включая завершающий EOF
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it completely. Every Invalid token becomes a
// LEX1001 diagnostic; lexing itself never fails.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	fs := opts.newFileSet("")
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return tokenizeFile(fs, fs.Get(fileID), opts), nil
}

// TokenizeText lexes in-memory text registered under name.
func TokenizeText(name, text string, opts Options) *TokenizeResult {
	fs := opts.newFileSet("")
	fileID := fs.AddVirtual(name, []byte(text))
	return tokenizeFile(fs, fs.Get(fileID), opts)
}

func tokenizeFile(fs *source.FileSet, file *source.File, opts Options) *TokenizeResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, opts.lexerOptions())

	tokens := make([]token.Token, 0, 64)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.Invalid {
			diag.ReportError(reporter, diag.LexInvalidToken, tok.Span, "encountered invalid token").Emit()
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	opts.logger().Debug("tokenized", "file", file.Path, "tokens", len(tokens), "invalid", bag.Len())

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
