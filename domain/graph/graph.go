// Package graph provides the directed graph model used for pipeline
// analysis. Graphs are built fresh per request and discarded once the
// analysis result has been produced; nothing in this package is safe for
// concurrent mutation and nothing needs to be.
package graph

// Edge is a directed arc from Source to Target.
type Edge struct {
	Source string
	Target string
}

// DirectedGraph is an adjacency-list directed graph keyed by opaque string
// vertex identifiers. Vertices are created implicitly by AddEdge, so edges
// may reference identifiers that were never declared via AddVertex.
type DirectedGraph struct {
	adjacency map[string][]string
	edgeCount int
}

// NewDirectedGraph creates an empty directed graph.
func NewDirectedGraph() *DirectedGraph {
	return &DirectedGraph{
		adjacency: make(map[string][]string),
	}
}

// AddVertex declares a vertex. Declaring the same identifier more than once
// collapses to a single vertex.
func (g *DirectedGraph) AddVertex(id string) {
	if _, exists := g.adjacency[id]; !exists {
		g.adjacency[id] = nil
	}
}

// AddEdge adds a directed edge from source to target. Both endpoints become
// vertices if they are not already present. Parallel edges are kept; they
// count toward EdgeCount but cannot introduce a cycle on their own.
func (g *DirectedGraph) AddEdge(source, target string) {
	g.AddVertex(source)
	g.AddVertex(target)
	g.adjacency[source] = append(g.adjacency[source], target)
	g.edgeCount++
}

// VertexCount returns the number of distinct vertices, declared or implicit.
func (g *DirectedGraph) VertexCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of edges added, duplicates included.
func (g *DirectedGraph) EdgeCount() int {
	return g.edgeCount
}

// Neighbors returns the outgoing targets of a vertex, in insertion order.
func (g *DirectedGraph) Neighbors(id string) []string {
	return g.adjacency[id]
}

// Vertex traversal state for cycle detection.
type color uint8

const (
	white color = iota // unvisited
	gray               // on the current traversal stack
	black              // fully explored
)

// IsAcyclic reports whether the graph contains no directed cycle. It runs a
// depth-first traversal from every unvisited vertex, so disconnected
// components are covered; a cycle exists iff the traversal follows an edge
// into a vertex that is still on the traversal stack. A self-loop is the
// degenerate case of that rule. Runs in O(V+E) time with O(V) state.
func (g *DirectedGraph) IsAcyclic() bool {
	colors := make(map[string]color, len(g.adjacency))

	var visit func(id string) bool
	visit = func(id string) bool {
		colors[id] = gray
		for _, next := range g.adjacency[id] {
			switch colors[next] {
			case gray:
				return false
			case white:
				if !visit(next) {
					return false
				}
			}
		}
		colors[id] = black
		return true
	}

	for id := range g.adjacency {
		if colors[id] == white && !visit(id) {
			return false
		}
	}
	return true
}
