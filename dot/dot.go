// Package dot renders a core.Graph in Graphviz DOT format, with edge
// weights as labels. The output feeds the standard graphviz tools for
// inspection of intermediate or final assembly graphs.
package dot

import (
	"fmt"
	"os"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/velvetlab/debruijn/core"
)

const graphName = "debruijn"

// Marshal renders g as a directed DOT graph. Vertices and edges appear in
// graph insertion order, so the output is stable for a given assembly.
func Marshal(g *core.Graph) ([]byte, error) {
	viz := gographviz.NewGraph()
	if err := viz.SetName(graphName); err != nil {
		return nil, fmt.Errorf("dot: marshal: %w", err)
	}
	if err := viz.SetDir(true); err != nil {
		return nil, fmt.Errorf("dot: marshal: %w", err)
	}
	for _, v := range g.Vertices() {
		if err := viz.AddNode(graphName, strconv.Quote(v), nil); err != nil {
			return nil, fmt.Errorf("dot: marshal node %s: %w", v, err)
		}
	}
	for _, e := range g.Edges() {
		attrs := map[string]string{"label": strconv.FormatInt(e.Weight, 10)}
		if err := viz.AddEdge(strconv.Quote(e.From), strconv.Quote(e.To), true, attrs); err != nil {
			return nil, fmt.Errorf("dot: marshal edge %s->%s: %w", e.From, e.To, err)
		}
	}
	return []byte(viz.String()), nil
}

// Save writes the DOT rendering of g to a file at path.
func Save(g *core.Graph, path string) error {
	b, err := Marshal(g)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("dot: save %s: %w", path, err)
	}
	return nil
}
