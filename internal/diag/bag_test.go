package diag_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luna/internal/diag"
	"luna/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := diag.NewBag(2)
	assert.True(t, b.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{}, "a")))
	assert.True(t, b.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{}, "b")))
	assert.False(t, b.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{}, "c")))
	assert.Equal(t, 2, b.Len())
	assert.True(t, b.HasErrors())

	unlimited := diag.NewBag(0)
	for range 100 {
		require.True(t, unlimited.Add(diag.New(diag.SevInfo, diag.LexInfo, source.Span{}, "x")))
	}
	assert.False(t, unlimited.HasErrors())
}

func TestBagSort(t *testing.T) {
	b := diag.NewBag(0)
	b.Add(diag.NewError(diag.SynUnmatchedBracket, source.Span{File: 1, Start: 0, End: 4}, "c"))
	b.Add(diag.NewError(diag.LexInvalidToken, source.Span{File: 0, Start: 5, End: 6}, "b"))
	b.Add(diag.New(diag.SevWarning, diag.LexInvalidToken, source.Span{File: 0, Start: 0, End: 1}, "w"))
	b.Add(diag.NewError(diag.LexInvalidToken, source.Span{File: 0, Start: 0, End: 1}, "a"))
	b.Sort()

	var msgs []string
	for _, d := range b.Items() {
		msgs = append(msgs, d.Message)
	}
	assert.Equal(t, []string{"a", "w", "b", "c"}, msgs)
}

func TestBagConcurrentAdd(t *testing.T) {
	b := diag.NewBag(0)
	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for range 50 {
				b.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{}, "x"))
			}
		})
	}
	wg.Wait()
	assert.Equal(t, 400, b.Len())
}

func TestBagMergeRespectsLimit(t *testing.T) {
	src := diag.NewBag(0)
	for range 5 {
		src.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{}, "x"))
	}
	dst := diag.NewBag(3)
	dst.Merge(src)
	assert.Equal(t, 3, dst.Len())
}

func TestReportBuilder(t *testing.T) {
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}
	b := diag.ReportError(rep, diag.SynUnmatchedBracket, source.Span{Start: 0, End: 3}, "unclosed").
		WithNote(source.Span{Start: 0, End: 1}, "opened here")
	b.Emit()
	b.Emit()

	require.Equal(t, 1, bag.Len())
	d := bag.Items()[0]
	assert.Equal(t, diag.SevError, d.Severity)
	assert.Equal(t, "unclosed", d.Message)
	require.Len(t, d.Notes, 1)
	assert.Equal(t, "opened here", d.Notes[0].Msg)

	diag.Emit(diag.NopReporter{}, d)
	diag.Emit(nil, d)
}

func TestCodeID(t *testing.T) {
	assert.Equal(t, "LEX1001", diag.LexInvalidToken.ID())
	assert.Equal(t, "SYN2003", diag.SynUnmatchedBracket.ID())
	assert.Equal(t, "IO4001", diag.IOLoadFileError.ID())
	assert.Equal(t, "E0000", diag.UnknownCode.ID())
	assert.Equal(t, "[SYN2002]: Mismatched closing bracket", diag.SynUnexpectedBracket.String())
	assert.Equal(t, "Unknown error", diag.Code(9999).Title())
}
