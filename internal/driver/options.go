package driver

import (
	"log/slog"

	"luna/internal/lexer"
	"luna/internal/parser"
	"luna/internal/source"
)

// Options shared by all driver entry points.
type Options struct {
	Booleans       lexer.BoolSyntax
	Normalize      source.Normalization
	MaxDiagnostics int // 0 = без лимита
	Logger         *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) parserOptions() parser.Options {
	return parser.Options{Booleans: o.Booleans}
}

func (o Options) lexerOptions() lexer.Options {
	return lexer.Options{Booleans: o.Booleans, SkipShebang: true}
}

func (o Options) newFileSet(baseDir string) *source.FileSet {
	fs := source.NewFileSetWithBase(baseDir)
	fs.SetNormalization(o.Normalize)
	return fs
}
