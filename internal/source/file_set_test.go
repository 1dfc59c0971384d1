package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("prog.scm", []byte("(display 1)"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	id2 := fs.Add("prog.scm", []byte("(display 2)"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	// индекс указывает на последнюю версию, старая остаётся доступной
	latestID, exists := fs.GetLatest("prog.scm")
	if !exists || latestID != id2 {
		t.Errorf("Expected latest ID %d, got %d (exists=%v)", id2, latestID, exists)
	}
	if got := fs.Get(id1).Content; got != "(display 1)" {
		t.Errorf("Expected first content '(display 1)', got %q", got)
	}
	if got := fs.Get(id2).Content; got != "(display 2)" {
		t.Errorf("Expected second content '(display 2)', got %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Expected 2 files, got %d", fs.Len())
	}
}

func TestGetUnknownID(t *testing.T) {
	fs := NewFileSet()
	if f := fs.Get(3); f != nil {
		t.Fatalf("Expected nil for unknown id, got %+v", f)
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("<repl>", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestCRLFNormalization(t *testing.T) {
	normalized, changed := normalizeCRLF([]byte("a\r\nb\r\n"))
	if !changed {
		t.Error("Expected CRLF normalization to be detected")
	}
	if string(normalized) != "a\nb\n" {
		t.Errorf("Expected normalized content %q, got %q", "a\nb\n", string(normalized))
	}

	// одиночный \r не трогаем
	same, changed := normalizeCRLF([]byte("a\rb"))
	if changed || string(same) != "a\rb" {
		t.Errorf("Expected lone CR to be kept, got %q (changed=%v)", string(same), changed)
	}
}

func TestBOMRemoval(t *testing.T) {
	withoutBOM, hadBOM := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x', '\n'})
	if !hadBOM {
		t.Error("Expected BOM to be detected")
	}
	if string(withoutBOM) != "x\n" {
		t.Errorf("Expected content without BOM %q, got %q", "x\n", string(withoutBOM))
	}
}

func TestResolveUTF8(t *testing.T) {
	fs := NewFileSet()

	// λ занимает 2 байта
	id := fs.AddVirtual("test.scm", []byte("λ\n(x)"))

	start, end := fs.Resolve(Span{File: id, Start: 0, End: 2})
	if start != (LineCol{Line: 1, Col: 1}) || end != (LineCol{Line: 1, Col: 3}) {
		t.Errorf("Unexpected positions %+v %+v", start, end)
	}

	start, end = fs.Resolve(Span{File: id, Start: 3, End: 6})
	if start != (LineCol{Line: 2, Col: 1}) || end != (LineCol{Line: 2, Col: 4}) {
		t.Errorf("Unexpected positions on second line %+v %+v", start, end)
	}

	// сам перевод строки принадлежит первой строке
	start, _ = fs.Resolve(Span{File: id, Start: 2, End: 3})
	if start != (LineCol{Line: 1, Col: 3}) {
		t.Errorf("Expected newline to resolve on line 1, got %+v", start)
	}
}

func TestGetLine(t *testing.T) {
	f := NewVirtualFile("t.scm", "(a\n b)\n\n(c)")
	cases := map[uint32]string{
		0: "",
		1: "(a",
		2: " b)",
		3: "",
		4: "(c)",
		5: "",
	}
	for line, want := range cases {
		if got := f.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}

func TestEdgeCases(t *testing.T) {
	fs := NewFileSet()

	file1 := fs.Get(fs.AddVirtual("empty.scm", []byte{}))
	if len(file1.LineIdx) != 0 {
		t.Errorf("Expected empty LineIdx for empty file, got length %d", len(file1.LineIdx))
	}

	file2 := fs.Get(fs.AddVirtual("only_newline.scm", []byte("\n")))
	if len(file2.LineIdx) != 1 || file2.LineIdx[0] != 0 {
		t.Errorf("Expected LineIdx [0] for file with only newline, got %v", file2.LineIdx)
	}
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.scm")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	fs := NewFileSet()
	id, err := fs.Load(writeTemp(t, "a\nb\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	file := fs.Get(id)
	if file.Content != "a\nb\n" {
		t.Errorf("Expected file content 'a\\nb\\n', got %q", file.Content)
	}
	if file.LineIdx[0] != 1 || file.LineIdx[1] != 3 {
		t.Errorf("Unexpected LineIdx %v", file.LineIdx)
	}
}

func TestLoadMissing(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.scm")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestLoadBOMAndCRLF(t *testing.T) {
	fs := NewFileSet()
	id, err := fs.Load(writeTemp(t, "\xEF\xBB\xBF(a)\r\n(b)\r\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	file := fs.Get(id)
	if file.Content != "(a)\n(b)\n" {
		t.Errorf("Unexpected content %q", file.Content)
	}
	if file.Flags&FileHadBOM == 0 || file.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("Expected BOM and CRLF flags, got %b", file.Flags)
	}
}

func TestLoadNFC(t *testing.T) {
	// "e" + U+0301 COMBINING ACUTE ACCENT -> U+00E9
	decomposed := "(cafe\u0301)"

	fs := NewFileSet()
	fs.SetNormalization(NormalizeNFC)
	id, err := fs.Load(writeTemp(t, decomposed))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	file := fs.Get(id)
	if file.Content != "(caf\u00e9)" {
		t.Errorf("Expected NFC content, got %q", file.Content)
	}
	if file.Flags&FileNormalizedNFC == 0 {
		t.Error("Expected FileNormalizedNFC flag to be set")
	}

	// без нормализации байты сохраняются
	raw := NewFileSet()
	id, err = raw.Load(writeTemp(t, decomposed))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := raw.Get(id).Content; got != decomposed {
		t.Errorf("Expected untouched content, got %q", got)
	}
}
