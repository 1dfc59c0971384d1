package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{"disjoint", Span{Start: 0, End: 2}, Span{Start: 5, End: 7}, Span{Start: 0, End: 7}},
		{"nested", Span{Start: 0, End: 10}, Span{Start: 3, End: 4}, Span{Start: 0, End: 10}},
		{"reversed", Span{Start: 5, End: 7}, Span{Start: 1, End: 2}, Span{Start: 1, End: 7}},
		{"other file ignored", Span{File: 1, Start: 5, End: 7}, Span{File: 2, Start: 0, End: 9}, Span{File: 1, Start: 5, End: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpan_ContainsAndBefore(t *testing.T) {
	outer := Span{Start: 2, End: 10}
	if !outer.Contains(Span{Start: 2, End: 10}) {
		t.Error("span should contain itself")
	}
	if !outer.Contains(Span{Start: 4, End: 5}) {
		t.Error("span should contain inner span")
	}
	if outer.Contains(Span{Start: 1, End: 5}) {
		t.Error("span should not contain span starting before it")
	}
	if outer.Contains(Span{File: 1, Start: 4, End: 5}) {
		t.Error("span should not contain span from another file")
	}
	if !(Span{Start: 0, End: 2}).Before(Span{Start: 2, End: 3}) {
		t.Error("adjacent spans should be ordered")
	}
	if (Span{Start: 0, End: 3}).Before(Span{Start: 2, End: 3}) {
		t.Error("overlapping spans should not be ordered")
	}
}

func TestSpan_Slice(t *testing.T) {
	text := "(1 2]"
	tests := []struct {
		span Span
		want string
	}{
		{Span{Start: 0, End: 5}, "(1 2]"},
		{Span{Start: 4, End: 5}, "]"},
		{Span{Start: 2, End: 2}, ""},
		{Span{Start: 3, End: 9}, ""},
		{Span{Start: 4, End: 3}, ""},
	}
	for _, tt := range tests {
		if got := tt.span.Slice(text); got != tt.want {
			t.Errorf("Slice(%v) = %q, want %q", tt.span, got, tt.want)
		}
	}
}

func TestSpan_EmptyLenString(t *testing.T) {
	sp := Span{File: 3, Start: 4, End: 9}
	if sp.Empty() || sp.Len() != 5 {
		t.Errorf("unexpected Empty/Len for %v", sp)
	}
	if got := sp.String(); got != "3:4-9" {
		t.Errorf("String() = %q", got)
	}
	if !(Span{Start: 7, End: 7}).Empty() {
		t.Error("zero-length span should be empty")
	}
}
