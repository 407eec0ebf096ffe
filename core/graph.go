package core

// Edge represents a directed connection between two vertices.
//
// In a de Bruijn graph the endpoints overlap in all but one character and
// Weight is the occurrence count of the k-mer the edge was built from.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the occurrence count carried by this edge.
	Weight int64
}

// adjacency holds the per-vertex neighbor lists.
// out and in preserve insertion order; weight indexes out-edges by target.
type adjacency struct {
	out    []string
	in     []string
	weight map[string]int64
}

// Graph is an insertion-ordered directed weighted graph.
//
// Vertices are identified by their value: two inserts of the same ID refer
// to the same vertex. At most one edge exists per (from, to) pair.
type Graph struct {
	edgeCount int

	ids   []string              // vertex IDs in first-insertion order
	nodes map[string]*adjacency // vertex ID → neighbor lists
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*adjacency)}
}

// AddVertex inserts the vertex if absent. Re-inserting an existing vertex
// is a no-op and does not disturb iteration order.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &adjacency{weight: make(map[string]int64)}
	g.ids = append(g.ids, id)
}

// AddEdge creates a directed edge from→to with the given weight,
// auto-adding missing endpoints. If the edge already exists only its
// weight is updated; the original insertion position is kept.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) {
	g.AddVertex(from)
	g.AddVertex(to)

	u := g.nodes[from]
	if _, ok := u.weight[to]; ok {
		u.weight[to] = weight
		return
	}
	u.weight[to] = weight
	u.out = append(u.out, to)
	g.nodes[to].in = append(g.nodes[to].in, from)
	g.edgeCount++
}

// RemoveEdge deletes the edge from→to. Absent endpoints or a missing edge
// make this a no-op.
// Complexity: O(deg).
func (g *Graph) RemoveEdge(from, to string) {
	u, ok := g.nodes[from]
	if !ok {
		return
	}
	if _, ok = u.weight[to]; !ok {
		return
	}
	delete(u.weight, to)
	u.out = cut(u.out, to)
	g.nodes[to].in = cut(g.nodes[to].in, from)
	g.edgeCount--
}

// RemoveVertex deletes the vertex and every incident edge.
// A missing vertex is a no-op.
// Complexity: O(V + deg).
func (g *Graph) RemoveVertex(id string) {
	a, ok := g.nodes[id]
	if !ok {
		return
	}
	for _, from := range a.in {
		if from == id {
			continue // self-loop handled with out-edges below
		}
		src := g.nodes[from]
		delete(src.weight, id)
		src.out = cut(src.out, id)
		g.edgeCount--
	}
	for _, to := range a.out {
		g.edgeCount--
		if to == id {
			continue
		}
		g.nodes[to].in = cut(g.nodes[to].in, id)
	}
	delete(g.nodes, id)
	g.ids = cut(g.ids, id)
}

// RemoveIsolated deletes every vertex with neither incoming nor outgoing
// edges. Called after path removal so that orphaned interior vertices do
// not linger in the graph.
func (g *Graph) RemoveIsolated() {
	var isolated []string
	for _, id := range g.ids {
		a := g.nodes[id]
		if len(a.in) == 0 && len(a.out) == 0 {
			isolated = append(isolated, id)
		}
	}
	for _, id := range isolated {
		g.RemoveVertex(id)
	}
}

// HasVertex reports whether the vertex exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	if u, ok := g.nodes[from]; ok {
		_, ok = u.weight[to]
		return ok
	}
	return false
}

// EdgeWeight returns the weight of the edge from→to,
// and whether the edge exists.
func (g *Graph) EdgeWeight(from, to string) (int64, bool) {
	if u, ok := g.nodes[from]; ok {
		w, ok := u.weight[to]
		return w, ok
	}
	return 0, false
}

// Vertices returns all vertex IDs in first-insertion order.
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)
	return out
}

// Edges returns all edges, grouped by source vertex in vertex-insertion
// order, and within a source in edge-insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for _, id := range g.ids {
		a := g.nodes[id]
		for _, to := range a.out {
			out = append(out, Edge{From: id, To: to, Weight: a.weight[to]})
		}
	}
	return out
}

// Successors returns the out-neighbors of id in edge-insertion order,
// or nil if the vertex is absent.
func (g *Graph) Successors(id string) []string {
	a, ok := g.nodes[id]
	if !ok {
		return nil
	}
	out := make([]string, len(a.out))
	copy(out, a.out)
	return out
}

// Predecessors returns the in-neighbors of id in edge-insertion order,
// or nil if the vertex is absent.
func (g *Graph) Predecessors(id string) []string {
	a, ok := g.nodes[id]
	if !ok {
		return nil
	}
	in := make([]string, len(a.in))
	copy(in, a.in)
	return in
}

// InDegree returns the number of incoming edges, 0 for absent vertices.
func (g *Graph) InDegree(id string) int {
	if a, ok := g.nodes[id]; ok {
		return len(a.in)
	}
	return 0
}

// OutDegree returns the number of outgoing edges, 0 for absent vertices.
func (g *Graph) OutDegree(id string) int {
	if a, ok := g.nodes[id]; ok {
		return len(a.out)
	}
	return 0
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.ids) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Sources returns the vertices with zero in-degree, in insertion order.
func (g *Graph) Sources() []string {
	var out []string
	for _, id := range g.ids {
		if len(g.nodes[id].in) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Sinks returns the vertices with zero out-degree, in insertion order.
func (g *Graph) Sinks() []string {
	var out []string
	for _, id := range g.ids {
		if len(g.nodes[id].out) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// cut removes the first occurrence of val from s, preserving order.
func cut(s []string, val string) []string {
	for i, x := range s {
		if x == val {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
