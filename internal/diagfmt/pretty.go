package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"luna/internal/diag"
	"luna/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	path, gutter    *color.Color
	caret, note     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.path, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, pal)
	}
}

// PrettyDiagnostic renders a single diagnostic.
func PrettyDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	prettyOne(w, d, fs, opts, newPalette(opts.Color))
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s: %s: %s\n",
		pal.path.Sprintf("%s:%d:%d", formatPath(f, fs, opts.PathMode), start.Line, start.Col),
		pal.severity(d.Severity).Sprintf("%s %s", d.Severity, d.Code.ID()),
		d.Message,
	)
	if f != nil {
		writeSnippet(w, f, fs, d.Primary, opts.Context, pal)
	}

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nf := fs.Get(n.Span.File)
		pos, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  %s %s: %s\n",
			pal.note.Sprint("note:"),
			pal.path.Sprintf("%s:%d:%d", formatPath(nf, fs, opts.PathMode), pos.Line, pos.Col),
			n.Msg,
		)
		if nf != nil {
			writeSnippet(w, nf, fs, n.Span, 0, pal)
		}
	}
}

// writeSnippet печатает строку(и) с номером и подчёркивание под span.
// Для многострочного span подчёркивается хвост первой строки.
func writeSnippet(w io.Writer, f *source.File, fs *source.FileSet, sp source.Span, context int, pal palette) {
	start, end := fs.Resolve(sp)
	first := start.Line
	if context > 0 {
		first = uint32(max(1, int(start.Line)-context))
	}
	width := len(fmt.Sprint(start.Line))

	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", width, ln), f.GetLine(ln))
	}

	line := f.GetLine(start.Line)
	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	underlined := line[col:]
	if end.Line == start.Line {
		n := int(end.Col - start.Col)
		if n < len(underlined) {
			underlined = underlined[:n]
		}
	}

	fmt.Fprintf(w, "%s %s%s\n",
		pal.gutter.Sprintf("%*s |", width, ""),
		caretPadding(line[:col]),
		pal.caret.Sprint(caretLine(runewidth.StringWidth(underlined))),
	)
}

// caretPadding повторяет ширину префикса: табы сохраняются, широкие руны дают два пробела.
func caretPadding(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}

func caretLine(width int) string {
	if width <= 1 {
		return "^"
	}
	return "^" + strings.Repeat("~", width-1)
}
