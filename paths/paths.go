package paths

import "github.com/velvetlab/debruijn/core"

// walker holds the state of one simple-path enumeration.
type walker struct {
	graph  *core.Graph
	target string
	onPath map[string]bool
	path   []string
	found  [][]string
}

// AllSimple enumerates every simple path from from to to, in depth-first
// order over successor insertion order. It returns nil when either
// endpoint is absent or from equals to.
func AllSimple(g *core.Graph, from, to string) [][]string {
	if !g.HasVertex(from) || !g.HasVertex(to) || from == to {
		return nil
	}
	w := &walker{
		graph:  g,
		target: to,
		onPath: map[string]bool{from: true},
		path:   []string{from},
	}
	w.walk(from)
	return w.found
}

// walk extends the current path from id, recording every completion at
// the target and backtracking past vertices already on the path.
func (w *walker) walk(id string) {
	for _, next := range w.graph.Successors(id) {
		if next == w.target {
			p := make([]string, len(w.path)+1)
			copy(p, w.path)
			p[len(w.path)] = w.target
			w.found = append(w.found, p)
			continue
		}
		if w.onPath[next] {
			continue
		}
		w.onPath[next] = true
		w.path = append(w.path, next)
		w.walk(next)
		w.path = w.path[:len(w.path)-1]
		delete(w.onPath, next)
	}
}

// HasPath reports whether to is reachable from from. A vertex is
// reachable from itself. Absent endpoints are unreachable.
func HasPath(g *core.Graph, from, to string) bool {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return false
	}
	if from == to {
		return true
	}
	seen := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range g.Successors(id) {
			if next == to {
				return true
			}
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}
