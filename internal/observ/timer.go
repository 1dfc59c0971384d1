package observ

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Phase records the duration and metadata of a single phase.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer tracks the execution time of multiple phases. Begin and End may be
// called from several goroutines.
type Timer struct {
	mu     sync.Mutex
	phases []Phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 8)} }

// Begin starts a new phase and returns its index.
func (t *Timer) Begin(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End finishes a phase by its index.
func (t *Timer) End(idx int, note string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Note = note
}

// Track begins a phase and returns the function that ends it.
//
//	done := timer.Track("load")
//	defer done("")
func (t *Timer) Track(name string) func(note string) {
	idx := t.Begin(name)
	return func(note string) { t.End(idx, note) }
}

// Summary returns a human-readable string summarizing all tracked phases.
func (t *Timer) Summary() string {
	var sb strings.Builder
	_ = t.Report().WriteSummary(&sb)
	return sb.String()
}

// PhaseReport представляет сжатую информацию о фазе таймера для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Count      int     `json:"count,omitempty"`
	Note       string  `json:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report формирует срез фаз и общую длительность в миллисекундах.
func (t *Timer) Report() Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{
		Phases: make([]PhaseReport, len(t.phases)),
	}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Note:       phase.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

// Aggregate сворачивает фазы с одинаковым именем в одну, сохраняя порядок
// первого появления. Count показывает число свёрнутых фаз, Note теряется.
func (r Report) Aggregate() Report {
	if len(r.Phases) == 0 {
		return r
	}
	out := Report{TotalMS: r.TotalMS, Phases: make([]PhaseReport, 0, len(r.Phases))}
	index := make(map[string]int, len(r.Phases))
	for _, p := range r.Phases {
		if i, ok := index[p.Name]; ok {
			out.Phases[i].DurationMS += p.DurationMS
			out.Phases[i].Count++
			out.Phases[i].Note = ""
			continue
		}
		index[p.Name] = len(out.Phases)
		p.Count = 1
		out.Phases = append(out.Phases, p)
	}
	return out
}

// WriteSummary prints the report as an aligned table.
func (r Report) WriteSummary(w io.Writer) error {
	if _, err := io.WriteString(w, "timings:\n"); err != nil {
		return err
	}
	for _, p := range r.Phases {
		line := fmt.Sprintf("  %-20s %7.2f ms", p.Name, p.DurationMS)
		if p.Count > 1 {
			line += fmt.Sprintf("  x%d", p.Count)
		}
		if p.Note != "" {
			line += "  // " + p.Note
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  %-20s %7.2f ms\n", "total", r.TotalMS)
	return err
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
