// Package paths provides the traversal queries the simplification
// heuristics are built on: simple-path enumeration, reachability, and
// lowest common ancestor lookup over a core.Graph.
//
// All results are deterministic. Enumeration follows depth-first order
// over successor insertion order, so the same graph always yields the
// same path list in the same order — a prerequisite for reproducible
// tie-breaking downstream.
//
// Queries on vertices absent from the graph return empty results rather
// than errors, matching the defensive removal semantics of package core:
// simplification repeatedly deletes vertices between scans, and a stale
// endpoint simply contributes no paths.
package paths
