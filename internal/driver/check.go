package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"luna/internal/ast"
	"luna/internal/diag"
	"luna/internal/observ"
	"luna/internal/parser"
	"luna/internal/source"
)

// SourceExts lists the file extensions picked up by ListSourceFiles.
var SourceExts = []string{".scm", ".luna"}

type CheckOptions struct {
	Options
	Jobs  int        // 0 = GOMAXPROCS
	Cache *DiskCache // nil = без кэша
	Sink  EventSink
}

// CheckFileResult is the outcome of checking one file.
type CheckFileResult struct {
	Path    string
	FileID  source.FileID
	Stats   ast.Stats
	Err     *parser.Error
	LoadErr error
	Cached  bool
	Bag     *diag.Bag
}

// OK reports whether the file loaded and parsed cleanly.
func (r *CheckFileResult) OK() bool {
	return r.LoadErr == nil && r.Err == nil
}

type CheckResult struct {
	FileSet *source.FileSet
	Files   []CheckFileResult
	Bag     *diag.Bag // все диагностики, отсортированные
	Timing  observ.Report
}

// Failed returns the number of files that did not load or parse.
func (r *CheckResult) Failed() int {
	n := 0
	for i := range r.Files {
		if !r.Files[i].OK() {
			n++
		}
	}
	return n
}

// CacheHits returns the number of files served from the disk cache.
func (r *CheckResult) CacheHits() int {
	n := 0
	for i := range r.Files {
		if r.Files[i].Cached {
			n++
		}
	}
	return n
}

// ListSourceFiles returns root itself when it is a file, otherwise every
// source file below root in lexical order.
func ListSourceFiles(root string) ([]string, error) {
	st, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return []string{root}, nil
	}
	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if slices.Contains(SourceExts, filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// Check parses every source file under root in parallel. Files are loaded
// sequentially first since FileSet is not safe for concurrent writes.
func Check(ctx context.Context, root string, opts CheckOptions) (*CheckResult, error) {
	files, err := ListSourceFiles(root)
	if err != nil {
		return nil, err
	}
	log := opts.logger()
	timer := observ.NewTimer()

	baseDir := root
	if st, statErr := os.Stat(root); statErr == nil && !st.IsDir() {
		baseDir = filepath.Dir(root)
	}
	fileSet := opts.newFileSet(baseDir)
	results := make([]CheckFileResult, len(files))

	for _, path := range files {
		emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	doneLoad := timer.Track("load")
	for i, path := range files {
		results[i] = CheckFileResult{Path: path, Bag: diag.NewBag(opts.MaxDiagnostics)}
		fileID, loadErr := fileSet.Load(path)
		if loadErr != nil {
			// пустой виртуальный файл, чтобы у диагностики был путь
			fileID = fileSet.Add(path, nil, source.FileVirtual)
			results[i].LoadErr = loadErr
			diag.ReportError(diag.BagReporter{Bag: results[i].Bag}, diag.IOLoadFileError,
				source.Span{File: fileID}, fmt.Sprintf("failed to load file: %v", loadErr)).Emit()
			emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr})
			log.WarnContext(ctx, "load failed", "file", path, "err", loadErr)
		}
		results[i].FileID = fileID
	}
	doneLoad(fmt.Sprintf("%d files", len(files)))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))

	doneParse := timer.Track("check")
	for i := range results {
		res := &results[i]
		if res.LoadErr != nil {
			continue
		}
		file := fileSet.Get(res.FileID)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			checkOne(res, file, opts)
			return nil
		})
	}
	waitErr := g.Wait()
	doneParse(fmt.Sprintf("jobs=%d", jobs))
	if waitErr != nil {
		return nil, waitErr
	}

	bag := diag.NewBag(opts.MaxDiagnostics)
	for i := range results {
		bag.Merge(results[i].Bag)
	}
	bag.Sort()

	out := &CheckResult{
		FileSet: fileSet,
		Files:   results,
		Bag:     bag,
		Timing:  timer.Report(),
	}
	log.InfoContext(ctx, "check finished", "files", len(files), "failed", out.Failed(), "cached", out.CacheHits())
	return out, nil
}

func checkOne(res *CheckFileResult, file *source.File, opts CheckOptions) {
	log := opts.logger()
	key := cacheKey(file.Hash, opts.Booleans)

	if opts.Cache != nil {
		emit(opts.Sink, Event{File: res.Path, Stage: StageCache, Status: StatusWorking})
		var cached CachedParse
		hit, err := opts.Cache.Get(key, &cached)
		if err != nil {
			log.Debug("cache read failed", "file", res.Path, "err", err)
		}
		if hit {
			res.Cached = true
			res.Stats, res.Err = fromCachedParse(&cached, file.ID)
			finishOne(res, opts)
			return
		}
	}

	emit(opts.Sink, Event{File: res.Path, Stage: StageParse, Status: StatusWorking})
	prog, err := parser.ParseFile(file, opts.parserOptions())
	if err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) {
			res.Err = perr
		}
	} else {
		res.Stats = ast.Measure(prog)
	}

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, toCachedParse(res.Stats, res.Err)); err != nil {
			log.Debug("cache write failed", "file", res.Path, "err", err)
		}
	}
	finishOne(res, opts)
}

func finishOne(res *CheckFileResult, opts CheckOptions) {
	stage := StageParse
	if res.Cached {
		stage = StageCache
	}
	if res.Err != nil {
		diag.Emit(diag.BagReporter{Bag: res.Bag}, res.Err.Diagnostic())
		emit(opts.Sink, Event{File: res.Path, Stage: stage, Status: StatusError, Err: res.Err})
		return
	}
	emit(opts.Sink, Event{File: res.Path, Stage: stage, Status: StatusDone})
}
