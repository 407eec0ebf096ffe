package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velvetlab/debruijn/simplify"
)

func TestEntryTips_HeavierEntryWins(t *testing.T) {
	g := build([]wedge{
		{"1", "2", 10}, {"3", "2", 2}, {"2", "4", 15}, {"4", "5", 15},
	})
	simplify.EntryTips(g, newRand(), g.Sources())

	assert.False(t, g.HasEdge("3", "2"))
	assert.True(t, g.HasEdge("1", "2"))
	assert.False(t, g.HasVertex("3"))
}

func TestEntryTips_LongerEntryWinsOnEqualWeight(t *testing.T) {
	g := build([]wedge{
		{"1", "2", 2}, {"6", "3", 2}, {"3", "2", 2}, {"2", "4", 15}, {"4", "5", 15},
	})
	simplify.EntryTips(g, newRand(), g.Sources())

	assert.False(t, g.HasEdge("1", "2"))
	assert.True(t, g.HasEdge("6", "3"))
	assert.True(t, g.HasEdge("3", "2"))
}

func TestEntryTips_Idempotent(t *testing.T) {
	g := build([]wedge{
		{"1", "2", 10}, {"3", "2", 2}, {"2", "4", 15}, {"4", "5", 15},
	})
	rng := newRand()
	simplify.EntryTips(g, rng, g.Sources())

	vertices := g.Vertices()
	edges := g.Edges()
	simplify.EntryTips(g, rng, g.Sources())

	assert.Equal(t, vertices, g.Vertices(), "second run must not mutate")
	assert.Equal(t, edges, g.Edges())
}

func TestOutTips_HeavierExitWins(t *testing.T) {
	g := build([]wedge{
		{"1", "2", 15}, {"2", "3", 15}, {"3", "4", 15}, {"4", "5", 15}, {"4", "6", 2},
	})
	simplify.OutTips(g, newRand(), g.Sinks())

	assert.False(t, g.HasEdge("4", "6"))
	assert.True(t, g.HasEdge("4", "5"))
	assert.False(t, g.HasVertex("6"))
}

func TestOutTips_LongerExitWinsOnEqualWeight(t *testing.T) {
	g := build([]wedge{
		{"1", "2", 15}, {"2", "3", 15}, {"3", "4", 15},
		{"4", "5", 2}, {"4", "6", 2}, {"6", "7", 2},
	})
	simplify.OutTips(g, newRand(), g.Sinks())

	assert.False(t, g.HasEdge("4", "5"))
	assert.True(t, g.HasEdge("6", "7"))
	assert.False(t, g.HasVertex("5"))
}

func TestOutTips_Idempotent(t *testing.T) {
	g := build([]wedge{
		{"1", "2", 15}, {"2", "3", 15}, {"3", "4", 15}, {"4", "5", 15}, {"4", "6", 2},
	})
	rng := newRand()
	simplify.OutTips(g, rng, g.Sinks())

	vertices := g.Vertices()
	edges := g.Edges()
	simplify.OutTips(g, rng, g.Sinks())

	assert.Equal(t, vertices, g.Vertices(), "second run must not mutate")
	assert.Equal(t, edges, g.Edges())
}

func TestTips_LinearGraphUntouched(t *testing.T) {
	g := build([]wedge{{"1", "2", 1}, {"2", "3", 1}, {"3", "4", 1}})
	rng := newRand()
	simplify.EntryTips(g, rng, g.Sources())
	simplify.OutTips(g, rng, g.Sinks())

	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []string{"1", "2", "3", "4"}, g.Vertices())
}
