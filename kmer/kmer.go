// Package kmer decomposes sequencing reads into fixed-length substrings
// (k-mers), accumulates their occurrence counts, and builds the initial
// de Bruijn graph from them.
//
// Counting preserves first-occurrence order. Graph construction follows
// that order, which fixes the insertion order of vertices and edges and,
// through it, every downstream tie-break (see package core).
package kmer

import (
	"errors"
	"fmt"
	"io"

	"github.com/velvetlab/debruijn/core"
)

// ErrInvalidK is returned when the requested k-mer length is not positive.
var ErrInvalidK = errors.New("kmer: k-mer length must be positive")

// Source yields successive read sequences. Next returns io.EOF after the
// last read. fastq.File satisfies this interface.
type Source interface {
	Next() (string, error)
}

// Cut returns every contiguous substring of length k in read, in order of
// appearance. Reads shorter than k produce no k-mers.
func Cut(read string, k int) []string {
	if k < 1 || len(read) < k {
		return nil
	}
	out := make([]string, 0, len(read)-k+1)
	for i := 0; i+k <= len(read); i++ {
		out = append(out, read[i:i+k])
	}
	return out
}

// Counts accumulates k-mer occurrence counts,
// iterable in first-occurrence order.
type Counts struct {
	order  []string
	counts map[string]int64
}

// NewCounts creates an empty Counts accumulator.
func NewCounts() *Counts {
	return &Counts{counts: make(map[string]int64)}
}

// Add records one occurrence of the given k-mer.
func (c *Counts) Add(kmer string) {
	if _, ok := c.counts[kmer]; !ok {
		c.order = append(c.order, kmer)
	}
	c.counts[kmer]++
}

// Count returns the total occurrences of the given k-mer, 0 if unseen.
func (c *Counts) Count(kmer string) int64 {
	return c.counts[kmer]
}

// Kmers returns the distinct k-mers in first-occurrence order.
func (c *Counts) Kmers() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of distinct k-mers.
func (c *Counts) Len() int { return len(c.order) }

// Count consumes all reads from src and tallies every k-mer of length k.
// Reads too short for k contribute nothing; an empty source yields an
// empty Counts, which is a valid terminal state, not an error.
func Count(src Source, k int) (*Counts, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	c := NewCounts()
	for {
		read, err := src.Next()
		if errors.Is(err, io.EOF) {
			return c, nil
		}
		if err != nil {
			return nil, fmt.Errorf("kmer: count: %w", err)
		}
		for _, km := range Cut(read, k) {
			c.Add(km)
		}
	}
}

// BuildGraph converts k-mer counts into the initial de Bruijn graph: for
// each distinct k-mer, in first-occurrence order, an edge runs from its
// (k−1)-length prefix to its (k−1)-length suffix with the occurrence count
// as weight. Distinct k-mers always map to distinct (prefix, suffix)
// pairs, so the edge count equals the distinct k-mer count.
func BuildGraph(c *Counts) *core.Graph {
	g := core.NewGraph()
	for _, km := range c.Kmers() {
		g.AddEdge(km[:len(km)-1], km[1:], c.Count(km))
	}
	return g
}
