package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"luna/internal/ast"
	"luna/internal/source"
)

// CheckSpanInvariants runs span invariants on a parsed program:
// 1) every node span is non-empty, points at sf and lies within its content
// 2) list children are contained in their parent and appear in source order
// 3) top-level expressions are ordered and non-overlapping
// 4) atom spans slice to text that is not whitespace-only
func CheckSpanInvariants(prog []ast.SExpr, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	return checkSequence(prog, source.Span{File: sf.ID, Start: 0, End: lenContent}, sf)
}

func checkSequence(items []ast.SExpr, parent source.Span, sf *source.File) error {
	var prev source.Span
	for i := range items {
		sp := items[i].Span
		if sp.End <= sp.Start {
			return fmt.Errorf("empty %s span: %v", items[i].Kind, sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("span file mismatch: got=%d want=%d", sp.File, sf.ID)
		}
		if sp.Start < parent.Start || sp.End > parent.End {
			return fmt.Errorf("span %v is outside parent %v", sp, parent)
		}
		if i > 0 && !prev.Before(sp) {
			return fmt.Errorf("span %v overlaps or precedes %v", sp, prev)
		}
		prev = sp

		if items[i].Kind == ast.KindList {
			// без скобок
			inner := source.Span{File: sp.File, Start: sp.Start + 1, End: sp.End - 1}
			if err := checkSequence(items[i].List, inner, sf); err != nil {
				return err
			}
			continue
		}
		if sf.Text(sp) == "" {
			return fmt.Errorf("atom span %v slices to empty text", sp)
		}
	}
	return nil
}
