package graph

import (
	"maps"
	"slices"
)

// Edge is an unordered pair of vertex ids as read from an edge-list line.
type Edge struct {
	U int
	V int
}

// Canonical returns the edge with its smaller endpoint first.
func (e Edge) Canonical() Edge {
	if e.V < e.U {
		return Edge{U: e.V, V: e.U}
	}
	return e
}

// IsLoop reports whether both endpoints are the same vertex.
func (e Edge) IsLoop() bool { return e.U == e.V }

// Graph is an undirected graph stored as vertex id -> neighbor set.
//
// The zero value is not usable - use [Load] or [New].
type Graph struct {
	adj      map[int]map[int]struct{}
	edges    int
	declared int
}

// LoadOption configures [Load].
type LoadOption func(*Graph)

// WithDeclaredVertices records the vertex count declared on the first line
// of the input file. The count is informational and does not restrict
// which ids may appear in edges.
func WithDeclaredVertices(n int) LoadOption {
	return func(g *Graph) { g.declared = n }
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{adj: make(map[int]map[int]struct{})}
}

// Load builds a graph from a raw edge list.
// Duplicate edges collapse and self-loops are kept.
func Load(edges []Edge, opts ...LoadOption) *Graph {
	g := New()
	for _, opt := range opts {
		opt(g)
	}
	for _, e := range edges {
		g.addEdge(e.U, e.V)
	}
	return g
}

func (g *Graph) addEdge(u, v int) {
	if _, ok := g.adj[u][v]; ok {
		return
	}
	g.link(u, v)
	if u != v {
		g.link(v, u)
	}
	g.edges++
}

func (g *Graph) link(u, v int) {
	nbrs, ok := g.adj[u]
	if !ok {
		nbrs = make(map[int]struct{})
		g.adj[u] = nbrs
	}
	nbrs[v] = struct{}{}
}

// HasVertex reports whether v appears in at least one edge.
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.adj[v]
	return ok
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.adj[u][v]
	return ok
}

// Neighbors returns the neighbor ids of v in ascending order.
// It returns an empty slice when v has no recorded edges.
func (g *Graph) Neighbors(v int) []int {
	nbrs := g.adj[v]
	if len(nbrs) == 0 {
		return []int{}
	}
	return slices.Sorted(maps.Keys(nbrs))
}

// Degree returns the number of neighbors of v, counting a self-loop twice.
func (g *Graph) Degree(v int) int {
	nbrs := g.adj[v]
	d := len(nbrs)
	if _, loop := nbrs[v]; loop {
		d++
	}
	return d
}

// Vertices returns every vertex id in ascending order.
func (g *Graph) Vertices() []int {
	return slices.Sorted(maps.Keys(g.adj))
}

// Edges returns every distinct edge once, smaller endpoint first,
// sorted by (U, V).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for _, u := range g.Vertices() {
		for _, v := range g.Neighbors(u) {
			if u <= v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	return out
}

// VertexCount returns the number of distinct vertices.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of distinct edges, self-loops included.
func (g *Graph) EdgeCount() int { return g.edges }

// DeclaredVertices returns the vertex count declared by the input file,
// or 0 if none was recorded.
func (g *Graph) DeclaredVertices() int { return g.declared }

// IsEmpty reports whether the graph has no vertices.
func (g *Graph) IsEmpty() bool { return len(g.adj) == 0 }
