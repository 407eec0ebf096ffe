package simplify

import (
	"math/rand"

	"github.com/velvetlab/debruijn/core"
	"github.com/velvetlab/debruijn/paths"
)

// Bubbles collapses every bubble in the graph. Each iteration scans a
// fresh vertex snapshot for the first bubble, resolves it, and restarts;
// the loop ends when a full scan finds none. The explicit loop replaces
// rescan-by-recursion so stack depth stays bounded on large read sets.
func Bubbles(g *core.Graph, rng *rand.Rand) {
	for {
		ancestor, descendant, found := findBubble(g)
		if !found {
			return
		}
		SolveBubble(g, rng, ancestor, descendant)
	}
}

// findBubble locates the first bubble in scan order: the first vertex
// with more than one predecessor whose earliest predecessor pair shares a
// common ancestor. Only immediate predecessors are paired; that limited
// scope is part of the contract (see package doc).
//
// A pair is accepted only when at least two simple paths run from the
// ancestor to the vertex. On a cycle a vertex can have two predecessors
// yet a single route from their common ancestor; resolving that would
// discard nothing and the restart loop would rescan it forever.
func findBubble(g *core.Graph) (ancestor, descendant string, found bool) {
	for _, v := range g.Vertices() {
		preds := g.Predecessors(v)
		if len(preds) < 2 {
			continue
		}
		for i := 0; i < len(preds); i++ {
			for j := i + 1; j < len(preds); j++ {
				anc, ok := paths.CommonAncestor(g, preds[i], preds[j])
				if ok && len(paths.AllSimple(g, anc, v)) >= 2 {
					return anc, v, true
				}
			}
		}
	}
	return "", "", false
}

// SolveBubble resolves the bubble spanned by ancestor and descendant:
// all simple paths between them compete, one survives, the interior of
// the rest is removed. Both endpoints are shared context and stay.
func SolveBubble(g *core.Graph, rng *rand.Rand, ancestor, descendant string) {
	candidates := paths.AllSimple(g, ancestor, descendant)
	if len(candidates) == 0 {
		return
	}
	lengths := make([]int, len(candidates))
	weights := make([]float64, len(candidates))
	for i, p := range candidates {
		lengths[i] = len(p)
		weights[i] = AverageWeight(g, p)
	}
	SelectBestPath(g, rng, candidates, lengths, weights, false, false)
}
