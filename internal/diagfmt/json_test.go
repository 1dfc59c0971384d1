package diagfmt

import (
	"bytes"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luna/internal/ast"
	"luna/internal/diag"
	"luna/internal/lexer"
	"luna/internal/parser"
	"luna/internal/source"
	"luna/internal/token"
)

func TestJSONDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("j.scm", []byte("(a\n b]"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynUnexpectedBracket, source.Span{File: fileID, Start: 0, End: 6}, "mismatch").
		WithNote(source.Span{File: fileID, Start: 0, End: 1}, "opened here"))
	bag.Add(diag.NewError(diag.LexInvalidToken, source.Span{File: fileID, Start: 1, End: 2}, "second"))

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true, Max: 1, PathMode: PathModeBasename}))

	var out DiagnosticsOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Equal(t, 1, out.Count)
	d := out.Diagnostics[0]
	assert.Equal(t, "ERROR", d.Severity)
	assert.Equal(t, "SYN2002", d.Code)
	assert.Equal(t, LocationJSON{File: "j.scm", StartByte: 0, EndByte: 6, StartLine: 1, StartCol: 1, EndLine: 2, EndCol: 4}, d.Location)
	require.Len(t, d.Notes, 1)
	assert.Equal(t, "opened here", d.Notes[0].Message)
}

func TestJSONDiagnosticsOmitsPositionsAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("j.scm", []byte(")"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: fileID, Start: 0, End: 1}, "x").
		WithNote(source.Span{File: fileID}, "n"))

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, bag, fs, JSONOpts{PathMode: PathModeBasename}))
	assert.NotContains(t, buf.String(), "start_line")
	assert.NotContains(t, buf.String(), "notes")
	assert.Contains(t, buf.String(), `"count": 1`)
}

func TestFormatTokensJSON(t *testing.T) {
	f := source.NewVirtualFile("t.scm", "; c\n(a 1)")
	lx := lexer.New(f, lexer.Options{})
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	var buf bytes.Buffer
	require.NoError(t, FormatTokensJSON(&buf, toks))
	var out []TokenOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 5)
	assert.Equal(t, TokenOutput{Kind: "LParen", Text: "(", Span: SpanJSON{Start: 4, End: 5}, Leading: []string{"LineComment"}}, out[0])
	assert.Equal(t, "IntLit", out[2].Kind)
	assert.Equal(t, "EOF", out[4].Kind)
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.scm", []byte("(a)"))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	toks := []token.Token{lx.Next(), lx.Next(), lx.Next(), lx.Next()}

	var buf bytes.Buffer
	require.NoError(t, FormatTokensPretty(&buf, toks, fs))
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Equal(t, `  1: LParen     "(" at 1:1-1:2`, string(lines[0]))
	assert.Equal(t, `  4: EOF        at 1:4-1:4`, string(lines[3]))
}

func TestFormatSExprJSON(t *testing.T) {
	prog, err := parser.Parse(`(a "" 0 #f [])`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FormatSExprJSON(&buf, "<input>", prog))

	var out struct {
		File  string `json:"file"`
		Exprs []struct {
			Kind  string `json:"kind"`
			Open  string `json:"open"`
			Items []struct {
				Kind  string `json:"kind"`
				Value any    `json:"value"`
				Items []any  `json:"items"`
			} `json:"items"`
		} `json:"exprs"`
		Stats ast.Stats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Exprs, 1)
	list := out.Exprs[0]
	assert.Equal(t, "List", list.Kind)
	assert.Equal(t, "(", list.Open)
	require.Len(t, list.Items, 5)
	assert.Equal(t, "a", list.Items[0].Value)
	assert.Equal(t, "", list.Items[1].Value)
	assert.Equal(t, float64(0), list.Items[2].Value)
	assert.Equal(t, false, list.Items[3].Value)
	assert.NotNil(t, list.Items[4].Items, "empty list keeps its items array")
	assert.Equal(t, ast.Stats{Nodes: 6, Atoms: 4, Lists: 2, MaxDepth: 2}, out.Stats)
}

func TestFormatSExprPretty(t *testing.T) {
	prog, err := parser.Parse("(a  \"x\\ny\")\n[1]")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, FormatSExprPretty(&buf, prog))
	assert.Equal(t, "(a \"x\\ny\")\n[1]\n", buf.String())

	buf.Reset()
	require.NoError(t, FormatSExprPretty(&buf, nil))
	assert.Empty(t, buf.String())
}
