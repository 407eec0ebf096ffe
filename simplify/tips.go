package simplify

import (
	"math/rand"

	"github.com/velvetlab/debruijn/core"
	"github.com/velvetlab/debruijn/paths"
)

// EntryTips removes competing entry routes. It scans for the first vertex
// reached from more than one starting node through paths of at least two
// nodes, keeps the best such path and deletes the others including their
// first node. Removal can create or destroy sources, so the starting set
// is recomputed and the scan restarted until it comes up clean.
func EntryTips(g *core.Graph, rng *rand.Rand, starts []string) {
	for {
		resolved := false
		for _, v := range g.Vertices() {
			if g.InDegree(v) < 2 {
				continue
			}
			candidates, lengths, weights := collect(g, starts, v, false)
			if len(candidates) < 2 {
				continue
			}
			SelectBestPath(g, rng, candidates, lengths, weights, true, false)
			starts = g.Sources()
			resolved = true
			break
		}
		if !resolved {
			return
		}
	}
}

// OutTips is the mirror of EntryTips at the sink side: the first vertex
// with competing paths to more than one sink node loses all but the best,
// including the losing paths' final node. The sink set is refreshed after
// each resolution.
func OutTips(g *core.Graph, rng *rand.Rand, sinks []string) {
	for {
		resolved := false
		for _, v := range g.Vertices() {
			if g.OutDegree(v) < 2 {
				continue
			}
			candidates, lengths, weights := collect(g, sinks, v, true)
			if len(candidates) < 2 {
				continue
			}
			SelectBestPath(g, rng, candidates, lengths, weights, false, true)
			sinks = g.Sinks()
			resolved = true
			break
		}
		if !resolved {
			return
		}
	}
}

// collect gathers the candidate tip paths between v and each endpoint:
// endpoint→v when outward is false, v→endpoint when true. Single-node
// paths are no tips and are skipped.
func collect(g *core.Graph, endpoints []string, v string, outward bool) ([][]string, []int, []float64) {
	var (
		candidates [][]string
		lengths    []int
		weights    []float64
	)
	for _, end := range endpoints {
		from, to := end, v
		if outward {
			from, to = v, end
		}
		if !paths.HasPath(g, from, to) {
			continue
		}
		for _, p := range paths.AllSimple(g, from, to) {
			if len(p) < 2 {
				continue
			}
			candidates = append(candidates, p)
			lengths = append(lengths, len(p))
			weights = append(weights, AverageWeight(g, p))
		}
	}
	return candidates, lengths, weights
}
