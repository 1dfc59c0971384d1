package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"luna/internal/ast"
	"luna/internal/parser"
	"luna/internal/source"
	"luna/internal/token"
)

// Current schema version - increment when CachedParse format changes
const cacheSchemaVersion uint16 = 1

// DiskCache хранит результаты проверки файлов по хешу содержимого.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedParse is the on-disk outcome of parsing one file: either the
// program statistics or the syntax error with its byte offsets.
type CachedParse struct {
	Schema uint16

	OK    bool
	Stats ast.Stats

	ErrKind     uint8
	ErrStart    uint32
	ErrEnd      uint32
	Expected    uint8
	Found       uint8
	OpenerStart uint32
	OpenerEnd   uint32
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens (creating if needed) a cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "parse", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *CachedParse) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	// после успешного Rename временного файла уже нет
	defer func() { _ = os.Remove(f.Name()) }()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. Entries written
// with a different schema are reported as misses.
func (c *DiskCache) Get(key Digest, out *CachedParse) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return out.Schema == cacheSchemaVersion, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

func toCachedParse(stats ast.Stats, perr *parser.Error) *CachedParse {
	out := &CachedParse{Schema: cacheSchemaVersion, OK: perr == nil, Stats: stats}
	if perr != nil {
		out.ErrKind = uint8(perr.Kind)
		out.ErrStart, out.ErrEnd = perr.Span.Start, perr.Span.End
		out.Expected, out.Found = uint8(perr.Expected), uint8(perr.Found)
		out.OpenerStart, out.OpenerEnd = perr.Opener.Start, perr.Opener.End
	}
	return out
}

// fromCachedParse восстанавливает ошибку со спанами в текущем файле.
func fromCachedParse(c *CachedParse, file source.FileID) (ast.Stats, *parser.Error) {
	if c.OK {
		return c.Stats, nil
	}
	return ast.Stats{}, &parser.Error{
		Span:     source.Span{File: file, Start: c.ErrStart, End: c.ErrEnd},
		Kind:     parser.ErrorKind(c.ErrKind),
		Expected: token.Kind(c.Expected),
		Found:    token.Kind(c.Found),
		Opener:   source.Span{File: file, Start: c.OpenerStart, End: c.OpenerEnd},
	}
}
