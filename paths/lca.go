package paths

import "github.com/velvetlab/debruijn/core"

// CommonAncestor returns the most specific vertex from which both a and b
// are reachable, and whether one exists. A vertex counts as its own
// ancestor, so CommonAncestor(g, x, y) may return x when x reaches y.
//
// "Most specific" means no strict descendant of the result is itself a
// common ancestor. When several vertices qualify the first in graph
// insertion order wins, keeping the choice reproducible. On a cycle every
// common ancestor has a qualifying descendant; no vertex is most specific
// then and the lookup reports failure.
func CommonAncestor(g *core.Graph, a, b string) (string, bool) {
	var candidates []string
	for _, v := range g.Vertices() {
		if HasPath(g, v, a) && HasPath(g, v, b) {
			candidates = append(candidates, v)
		}
	}
	for _, c := range candidates {
		lowest := true
		for _, d := range candidates {
			if d != c && HasPath(g, c, d) {
				lowest = false
				break
			}
		}
		if lowest {
			return c, true
		}
	}
	return "", false
}
