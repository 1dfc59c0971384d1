package driver

import (
	"errors"
	"fmt"

	"luna/internal/ast"
	"luna/internal/diag"
	"luna/internal/observ"
	"luna/internal/parser"
	"luna/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program []ast.SExpr
	Err     *parser.Error // nil при успехе
	Bag     *diag.Bag
	Timing  observ.Report
}

// Parse loads and parses a single file. The returned error is reserved for
// I/O problems; syntax errors are reported through ParseResult.Err and Bag.
func Parse(path string, opts Options) (*ParseResult, error) {
	timer := observ.NewTimer()
	fs := opts.newFileSet("")

	idx := timer.Begin("load")
	fileID, err := fs.Load(path)
	timer.End(idx, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return parseFile(fs, fs.Get(fileID), opts, timer), nil
}

// ParseText parses in-memory text registered under name.
func ParseText(name, text string, opts Options) *ParseResult {
	fs := opts.newFileSet("")
	fileID := fs.AddVirtual(name, []byte(text))
	return parseFile(fs, fs.Get(fileID), opts, observ.NewTimer())
}

func parseFile(fs *source.FileSet, file *source.File, opts Options, timer *observ.Timer) *ParseResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	res := &ParseResult{FileSet: fs, File: file, Bag: bag}

	idx := timer.Begin("parse")
	prog, err := parser.ParseFile(file, opts.parserOptions())
	if err != nil {
		var perr *parser.Error
		if !errors.As(err, &perr) {
			// parser.ParseFile возвращает только *parser.Error
			panic(fmt.Errorf("unexpected parse error type %T: %w", err, err))
		}
		res.Err = perr
		diag.Emit(diag.BagReporter{Bag: bag}, perr.Diagnostic())
		timer.End(idx, perr.Kind.String())
	} else {
		res.Program = prog
		timer.End(idx, fmt.Sprintf("%d top-level forms", len(prog)))
	}
	res.Timing = timer.Report()

	opts.logger().Debug("parsed", "file", file.Path, "forms", len(res.Program), "ok", res.Err == nil)
	return res
}
