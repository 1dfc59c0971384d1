package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luna/internal/driver"
)

func newTestModel(files ...string) *progressModel {
	return NewProgressModel("check", files, nil).(*progressModel)
}

func TestApplyEventStatuses(t *testing.T) {
	m := newTestModel("a.scm", "b.scm", "c.scm")

	m.Update(eventMsg{File: "a.scm", Stage: driver.StageParse, Status: driver.StatusWorking})
	assert.Equal(t, "parsing", m.items[0].status)
	assert.False(t, m.items[0].final)

	m.Update(eventMsg{File: "a.scm", Stage: driver.StageParse, Status: driver.StatusDone})
	m.Update(eventMsg{File: "b.scm", Stage: driver.StageCache, Status: driver.StatusDone})
	m.Update(eventMsg{File: "c.scm", Stage: driver.StageParse, Status: driver.StatusError})
	// поздние события после финала игнорируются
	m.Update(eventMsg{File: "c.scm", Stage: driver.StageParse, Status: driver.StatusWorking})
	m.Update(eventMsg{File: "unknown.scm", Status: driver.StatusDone})

	assert.Equal(t, "done", m.items[0].status)
	assert.Equal(t, "cached", m.items[1].status)
	assert.Equal(t, "error", m.items[2].status)
	ok, failed := m.counts()
	assert.Equal(t, 2, ok)
	assert.Equal(t, 1, failed)
}

func TestViewShowsCounts(t *testing.T) {
	m := newTestModel("a.scm", "b.scm")
	m.Update(eventMsg{File: "a.scm", Stage: driver.StageParse, Status: driver.StatusError})
	_, cmd := m.Update(doneMsg{})
	require.NotNil(t, cmd)

	view := m.View()
	assert.Contains(t, view, "done: check [1/2]")
	assert.Contains(t, view, "a.scm")
	assert.Contains(t, view, "1 failed")
}

func TestViewCollapsesLongLists(t *testing.T) {
	files := make([]string, 0, 20)
	for i := range 20 {
		files = append(files, fmt.Sprintf("f%02d.scm", i))
	}
	m := newTestModel(files...)
	m.Update(eventMsg{File: "f19.scm", Stage: driver.StageParse, Status: driver.StatusError})

	visible := m.visibleItems()
	require.Len(t, visible, maxVisible)
	assert.Equal(t, "f19.scm", visible[0].path)
	assert.Contains(t, m.View(), fmt.Sprintf("%d more", 20-maxVisible))
}

func TestEmptyView(t *testing.T) {
	assert.Empty(t, newTestModel().View())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate(strings.Repeat("abcdefghij", 2), 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "abc", truncate("abcdef", 3))
	// хвост "..." входит в ширину
	for _, w := range []int{4, 10, 25} {
		got := truncate(strings.Repeat("x", 40), w)
		assert.Equal(t, w, runewidth.StringWidth(got), w)
	}
	assert.Equal(t, "日本...", truncate("日本語のパス", 7))
}

func TestProgressFromStage(t *testing.T) {
	assert.Less(t, progressFromStage(driver.StageLoad), progressFromStage(driver.StageParse))
	assert.Zero(t, progressFromStage(driver.Stage("other")))
}
