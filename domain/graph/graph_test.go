package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildGraph(nodes []string, edges []Edge) *DirectedGraph {
	g := NewDirectedGraph()
	for _, id := range nodes {
		g.AddVertex(id)
	}
	for _, e := range edges {
		g.AddEdge(e.Source, e.Target)
	}
	return g
}

func TestIsAcyclic(t *testing.T) {
	tests := []struct {
		name    string
		nodes   []string
		edges   []Edge
		acyclic bool
	}{
		{
			name:    "empty graph",
			acyclic: true,
		},
		{
			name:    "nodes without edges",
			nodes:   []string{"a", "b", "c"},
			acyclic: true,
		},
		{
			name:    "simple chain",
			nodes:   []string{"a", "b", "c"},
			edges:   []Edge{{"a", "b"}, {"b", "c"}},
			acyclic: true,
		},
		{
			name:    "three node cycle",
			nodes:   []string{"a", "b", "c"},
			edges:   []Edge{{"a", "b"}, {"b", "c"}, {"c", "a"}},
			acyclic: false,
		},
		{
			name:    "self loop",
			nodes:   []string{"a"},
			edges:   []Edge{{"a", "a"}},
			acyclic: false,
		},
		{
			name:    "two node cycle",
			nodes:   []string{"a", "b"},
			edges:   []Edge{{"a", "b"}, {"b", "a"}},
			acyclic: false,
		},
		{
			name:    "parallel edges are not a cycle",
			nodes:   []string{"a", "b"},
			edges:   []Edge{{"a", "b"}, {"a", "b"}},
			acyclic: true,
		},
		{
			name:    "diamond",
			nodes:   []string{"a", "b", "c", "d"},
			edges:   []Edge{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}},
			acyclic: true,
		},
		{
			name:  "cycle in second component",
			nodes: []string{"a", "b", "x", "y"},
			edges: []Edge{
				{"a", "b"},
				{"x", "y"},
				{"y", "x"},
			},
			acyclic: false,
		},
		{
			name:    "edge to undeclared vertex",
			nodes:   []string{"a"},
			edges:   []Edge{{"a", "x"}},
			acyclic: true,
		},
		{
			name:    "cycle through undeclared vertices only",
			edges:   []Edge{{"p", "q"}, {"q", "p"}},
			acyclic: false,
		},
		{
			name:  "long chain back to start",
			nodes: []string{"a", "b", "c", "d", "e"},
			edges: []Edge{
				{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "e"}, {"e", "a"},
			},
			acyclic: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(tt.nodes, tt.edges)
			assert.Equal(t, tt.acyclic, g.IsAcyclic())
		})
	}
}

func TestIsAcyclicEdgeOrderIndependent(t *testing.T) {
	edges := []Edge{{"a", "b"}, {"b", "c"}, {"c", "a"}}

	// Every rotation of the edge list must produce the same verdict.
	for shift := range edges {
		rotated := append(append([]Edge{}, edges[shift:]...), edges[:shift]...)
		g := buildGraph([]string{"a", "b", "c"}, rotated)
		assert.False(t, g.IsAcyclic(), "rotation %d", shift)
	}
}

func TestVertexCount(t *testing.T) {
	g := NewDirectedGraph()
	g.AddVertex("a")
	g.AddVertex("a") // duplicate declarations collapse
	g.AddVertex("b")
	g.AddEdge("b", "c") // implicit vertex

	assert.Equal(t, 3, g.VertexCount())
}

func TestEdgeCountIncludesDuplicates(t *testing.T) {
	g := NewDirectedGraph()
	g.AddEdge("a", "b")
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []string{"b", "b"}, g.Neighbors("a"))
}
