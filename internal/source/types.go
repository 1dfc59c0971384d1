package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (REPL line, test, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// Normalization selects the Unicode normalization applied by FileSet.Load.
type Normalization uint8

const (
	// NormalizeNone keeps file bytes as they are (after BOM/CRLF handling).
	NormalizeNone Normalization = iota
	// NormalizeNFC rewrites file content to Unicode NFC.
	NormalizeNFC
)

// File captures metadata and content for a single source file.
// Content is kept as a string so tokens can borrow their lexemes from it.
type File struct {
	ID      FileID
	Path    string
	Content string
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}
