package simplify

import (
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/velvetlab/debruijn/core"
)

// AverageWeight computes the arithmetic mean of the edge weights along
// path. Edges already removed from the graph contribute nothing; a path
// with no surviving edges has weight 0.
func AverageWeight(g *core.Graph, path []string) float64 {
	if len(path) < 2 {
		return 0
	}
	ws := make([]float64, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		if w, ok := g.EdgeWeight(path[i], path[i+1]); ok {
			ws = append(ws, float64(w))
		}
	}
	if len(ws) == 0 {
		return 0
	}
	return stat.Mean(ws, nil)
}

// SelectBestPath keeps exactly one of the candidate paths and removes the
// rest from the graph. lengths and weights are the per-candidate node
// counts and average edge weights, indexed like candidates.
//
// Selection policy, applied in order:
//  1. if the average weights spread (sample standard deviation > 0),
//     the heaviest path wins;
//  2. else if the lengths spread, the longest path wins;
//  3. else one candidate is drawn uniformly from rng.
//
// Ties inside a rule go to the earliest candidate. Discarded paths are
// removed via RemovePaths with the given endpoint-deletion flags.
func SelectBestPath(g *core.Graph, rng *rand.Rand, candidates [][]string,
	lengths []int, weights []float64, deleteEntry, deleteSink bool) {
	if len(candidates) == 0 {
		return
	}

	var best int
	switch {
	case len(weights) > 1 && stat.StdDev(weights, nil) > 0:
		best = maxIndex(weights)
	case len(lengths) > 1 && stat.StdDev(asFloats(lengths), nil) > 0:
		best = maxIndex(asFloats(lengths))
	default:
		best = rng.Intn(len(candidates))
	}

	discarded := make([][]string, 0, len(candidates)-1)
	for i, p := range candidates {
		if i != best {
			discarded = append(discarded, p)
		}
	}
	RemovePaths(g, discarded, deleteEntry, deleteSink)
}

// RemovePaths deletes the given paths from the graph. For each path:
// with deleteEntry the first node goes (taking its incident edges along),
// with deleteSink the last node goes, and every other consecutive pair
// loses its connecting edge. Paths may overlap; deleting an element twice
// is a no-op. Vertices left with no edges at all are pruned afterwards.
func RemovePaths(g *core.Graph, paths [][]string, deleteEntry, deleteSink bool) {
	for _, p := range paths {
		for i := 0; i+1 < len(p); i++ {
			switch {
			case deleteEntry && i == 0:
				g.RemoveVertex(p[0])
			case deleteSink && i == len(p)-2:
				g.RemoveVertex(p[len(p)-1])
			default:
				g.RemoveEdge(p[i], p[i+1])
			}
		}
	}
	g.RemoveIsolated()
}

// maxIndex returns the index of the first maximum in xs.
func maxIndex(xs []float64) int {
	best := 0
	for i, x := range xs {
		if x > xs[best] {
			best = i
		}
	}
	return best
}

func asFloats(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}
