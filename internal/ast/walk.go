package ast

// Walk visits e and its descendants in pre-order. Returning false from fn
// skips the children of the current node.
func Walk(e SExpr, fn func(e SExpr, depth int) bool) {
	walk(e, 0, fn)
}

func walk(e SExpr, depth int, fn func(SExpr, int) bool) {
	if !fn(e, depth) {
		return
	}
	if e.Kind == KindList {
		for _, child := range e.List {
			walk(child, depth+1, fn)
		}
	}
}

// Stats summarizes a parsed program.
type Stats struct {
	Nodes    int `json:"nodes"`
	Atoms    int `json:"atoms"`
	Lists    int `json:"lists"`
	MaxDepth int `json:"max_depth"`
}

// Measure collects Stats over all top-level expressions.
func Measure(exprs []SExpr) Stats {
	var st Stats
	for _, e := range exprs {
		Walk(e, func(n SExpr, depth int) bool {
			st.Nodes++
			if n.Kind == KindList {
				st.Lists++
			} else {
				st.Atoms++
			}
			st.MaxDepth = max(st.MaxDepth, depth+1)
			return true
		})
	}
	return st
}
