package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velvetlab/debruijn/simplify"
)

// weightedBubble builds three competing routes from 2 to 5 with the given
// per-route weights, plus entries 1→2, 3→2 and exits 5→6, 5→7.
func weightedBubble(direct, middle, long int64) []wedge {
	return []wedge{
		{"1", "2", 10}, {"3", "2", 10},
		{"2", "4", direct}, {"4", "5", direct},
		{"2", "10", middle}, {"10", "5", middle},
		{"2", "8", long}, {"8", "9", long}, {"9", "5", long},
		{"5", "6", 10}, {"5", "7", 10},
	}
}

func TestSolveBubble_HeaviestRouteSurvives(t *testing.T) {
	g := build(weightedBubble(15, 10, 3))
	simplify.SolveBubble(g, newRand(), "2", "5")

	assert.False(t, g.HasEdge("2", "8"))
	assert.False(t, g.HasEdge("8", "9"))
	assert.False(t, g.HasEdge("9", "5"))
	assert.False(t, g.HasEdge("2", "10"))
	assert.False(t, g.HasEdge("10", "5"))
	assert.True(t, g.HasEdge("2", "4"))
	assert.True(t, g.HasEdge("4", "5"))
	assert.False(t, g.HasVertex("8"))
	assert.False(t, g.HasVertex("9"))
	assert.False(t, g.HasVertex("10"))
	assert.True(t, g.HasVertex("2"))
	assert.True(t, g.HasVertex("5"))
}

func TestSolveBubble_LongestRouteSurvivesOnEqualWeight(t *testing.T) {
	g := build(weightedBubble(10, 10, 10))
	simplify.SolveBubble(g, newRand(), "2", "5")

	assert.False(t, g.HasEdge("2", "4"))
	assert.False(t, g.HasEdge("4", "5"))
	assert.False(t, g.HasEdge("2", "10"))
	assert.False(t, g.HasEdge("10", "5"))
	assert.True(t, g.HasEdge("2", "8"))
	assert.True(t, g.HasEdge("8", "9"))
	assert.True(t, g.HasEdge("9", "5"))
}

func TestBubbles(t *testing.T) {
	edges := weightedBubble(15, 10, 3)[1:] // drop the 1→2 entry
	g := build(edges)
	simplify.Bubbles(g, newRand())

	assert.False(t, g.HasEdge("2", "8"))
	assert.False(t, g.HasEdge("8", "9"))
	assert.False(t, g.HasEdge("9", "5"))
	assert.False(t, g.HasEdge("2", "10"))
	assert.False(t, g.HasEdge("10", "5"))
	assert.True(t, g.HasEdge("2", "4"))
	assert.True(t, g.HasEdge("4", "5"))
}

func TestBubbles_Idempotent(t *testing.T) {
	g := build(weightedBubble(15, 10, 3))
	rng := newRand()
	simplify.Bubbles(g, rng)

	vertices := g.Vertices()
	edges := g.Edges()
	simplify.Bubbles(g, rng)

	assert.Equal(t, vertices, g.Vertices(), "second run must not mutate")
	assert.Equal(t, edges, g.Edges())
}

func TestBubbles_TerminatesOnCycle(t *testing.T) {
	// The graph of read TCATGAT at k=3 cycles through AT→TG→GA→AT, so AT
	// has two predecessors but only one simple route from their common
	// ancestor CA. There is nothing to discard; the scan must move on.
	g := build([]wedge{
		{"TC", "CA", 1}, {"CA", "AT", 1},
		{"AT", "TG", 1}, {"TG", "GA", 1}, {"GA", "AT", 1},
	})
	vertices := g.Vertices()
	edges := g.Edges()

	simplify.Bubbles(g, newRand())

	assert.Equal(t, vertices, g.Vertices())
	assert.Equal(t, edges, g.Edges())
}

func TestBubbles_CleanGraphUntouched(t *testing.T) {
	g := build(forkEdges())
	simplify.Bubbles(g, newRand())

	assert.Equal(t, 6, g.EdgeCount(), "a bubble-free graph is a fixpoint")
}
