// Package simplify collapses the error-induced structures of a de Bruijn
// graph: bubbles (divergent-then-convergent alternate routes) and tips
// (spurious dangling branches at sources and sinks).
//
// Both reductions share one selection policy, SelectBestPath: prefer the
// highest average edge weight, then the greatest length, then a draw from
// an explicit seeded random source. The random source is the only
// nondeterminism in the whole pipeline; with a fixed seed and fixed
// insertion order the output is reproducible run to run.
//
// Bubbles, EntryTips and OutTips are fixpoint loops: each resolves the
// first finding of a full scan, then rescans the mutated graph from
// scratch until a scan comes up clean. Resolving one finding can create
// or destroy others, so partial rescans would change the result. The
// restart makes the worst case quadratic in graph size; that cost is
// accepted because contig correctness is defined relative to this exact
// scan order.
//
// Bubble detection deliberately checks only pairs of immediate
// predecessors of a vertex for a common ancestor. It is not a general
// topological bubble detector and must not be extended into one: the
// assembled contigs are defined by this limited heuristic.
package simplify
