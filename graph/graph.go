// Package graph provides a small directed graph with dense node indices,
// meant to be built once and then walked by a search.
package graph

// Edge is an outgoing edge of a node.
type Edge[E any] struct {
	To    int
	Value E
}

// Graph is a directed graph whose nodes are identified by a comparable value
// and addressed by the index they were added at.
type Graph[N comparable, E any] struct {
	nodes []N
	index map[N]int
	edges [][]Edge[E]
}

// New creates an empty graph with room for capacity nodes.
func New[N comparable, E any](capacity int) *Graph[N, E] {
	return &Graph[N, E]{
		nodes: make([]N, 0, capacity),
		index: make(map[N]int, capacity),
		edges: make([][]Edge[E], 0, capacity),
	}
}

// Ensure returns the index of node, adding it first if it is new.
func (g *Graph[N, E]) Ensure(node N) int {
	if i, ok := g.index[node]; ok {
		return i
	}
	g.nodes = append(g.nodes, node)
	g.edges = append(g.edges, nil)
	g.index[node] = len(g.nodes) - 1
	return len(g.nodes) - 1
}

// Index returns the index of node.
func (g *Graph[N, E]) Index(node N) (int, bool) {
	i, ok := g.index[node]
	return i, ok
}

// Node returns the node at index i.
func (g *Graph[N, E]) Node(i int) N { return g.nodes[i] }

// Nodes returns every node in index order. The slice must not be modified.
func (g *Graph[N, E]) Nodes() []N { return g.nodes }

// Connect adds an edge from src to dst.
func (g *Graph[N, E]) Connect(src, dst int, value E) {
	g.edges[src] = append(g.edges[src], Edge[E]{To: dst, Value: value})
}

// ConnectMutual adds an edge in both directions with the same value.
func (g *Graph[N, E]) ConnectMutual(a, b int, value E) {
	g.Connect(a, b, value)
	g.Connect(b, a, value)
}

// Edges returns the outgoing edges of src in insertion order.
func (g *Graph[N, E]) Edges(src int) []Edge[E] { return g.edges[src] }

// Edge returns the value of the first edge from src to dst.
func (g *Graph[N, E]) Edge(src, dst int) (E, bool) {
	for _, e := range g.edges[src] {
		if e.To == dst {
			return e.Value, true
		}
	}
	var zero E
	return zero, false
}

// Len returns the number of nodes.
func (g *Graph[N, E]) Len() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph[N, E]) EdgeCount() int {
	n := 0
	for _, es := range g.edges {
		n += len(es)
	}
	return n
}
