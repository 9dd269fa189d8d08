package analysis

import (
	"github.com/matzehuels/grafo/pkg/errors"
	"github.com/matzehuels/grafo/pkg/graph"
)

func requireVertices(g *graph.Graph) error {
	if g.IsEmpty() {
		return errors.New(errors.ErrCodeEmptyGraph, "graph has no vertices")
	}
	return nil
}

// Degrees returns the degree of every vertex with the minimum and maximum.
// Self-loops count twice.
func Degrees(g *graph.Graph) (*DegreeReport, error) {
	if err := requireVertices(g); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	rep := &DegreeReport{
		VertexCount: g.VertexCount(),
		EdgeCount:   g.EdgeCount(),
		Degrees:     make(map[int]int, len(vertices)),
	}
	for i, v := range vertices {
		d := g.Degree(v)
		rep.Degrees[v] = d
		if i == 0 || d < rep.MinDegree {
			rep.MinDegree = d
		}
		if i == 0 || d > rep.MaxDegree {
			rep.MaxDegree = d
		}
	}
	return rep, nil
}

// AdjacencyList maps each vertex to its neighbors in ascending order.
func AdjacencyList(g *graph.Graph) (*AdjacencyReport, error) {
	if err := requireVertices(g); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	adj := make(map[int][]int, len(vertices))
	for _, v := range vertices {
		adj[v] = g.Neighbors(v)
	}
	return &AdjacencyReport{Adjacency: adj}, nil
}

// SparseAdjacency maps each vertex to the 1-indexed positions of its
// neighbors within the ascending vertex order. For vertices {10, 20, 30}
// an edge 10-30 yields row 10 -> [3] and row 30 -> [1].
func SparseAdjacency(g *graph.Graph) (*SparseReport, error) {
	if err := requireVertices(g); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	pos := make(map[int]int, len(vertices))
	for i, v := range vertices {
		pos[v] = i + 1
	}

	rows := make(map[int][]int, len(vertices))
	for _, v := range vertices {
		nbrs := g.Neighbors(v)
		cols := make([]int, len(nbrs))
		for i, u := range nbrs {
			cols[i] = pos[u]
		}
		rows[v] = cols
	}
	return &SparseReport{Rows: rows}, nil
}
