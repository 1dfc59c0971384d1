package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) inside one source file.
type Span struct {
	File  FileID
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
// Spans from different files are not merged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Contains reports whether other lies entirely inside s.
func (s Span) Contains(other Span) bool {
	return s.File == other.File && other.Start >= s.Start && other.End <= s.End
}

// Before reports whether s ends at or before the start of other.
func (s Span) Before(other Span) bool {
	return s.End <= other.Start
}

// Slice returns the text covered by the span, or "" if the span is out of range.
func (s Span) Slice(text string) string {
	if s.Start > s.End || int(s.End) > len(text) {
		return ""
	}
	return text[s.Start:s.End]
}
