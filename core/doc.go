// Package core provides the mutable directed weighted graph underlying
// de Bruijn assembly.
//
// Unlike a generic adjacency map, every collection the graph exposes —
// Vertices, Edges, Successors, Predecessors — iterates in first-insertion
// order. Simplification heuristics break ties by scan order, so iteration
// order is part of the observable contract: the same inserts always produce
// the same scans, and therefore the same assembly.
//
// Removal operations never fail: removing an absent vertex or edge is a
// no-op. Discarded alternate paths frequently share sub-segments, so the
// same element may be deleted more than once during simplification.
//
// The graph carries no internal locking. It is built once, then mutated and
// finally read by a single-threaded pipeline that owns it exclusively.
package core
