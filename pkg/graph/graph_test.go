package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/grafo/pkg/graph"
)

func triangleWithLoop() *graph.Graph {
	return graph.Load([]graph.Edge{{1, 2}, {2, 3}, {3, 1}, {4, 4}}, graph.WithDeclaredVertices(4))
}

func TestLoad_Basic(t *testing.T) {
	g := triangleWithLoop()

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 4, g.DeclaredVertices())
	assert.Equal(t, []int{1, 2, 3, 4}, g.Vertices())
	assert.False(t, g.IsEmpty())
}

func TestLoad_Empty(t *testing.T) {
	g := graph.Load(nil, graph.WithDeclaredVertices(3))

	assert.True(t, g.IsEmpty())
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Vertices())
	assert.Equal(t, 3, g.DeclaredVertices())
}

func TestNeighbors(t *testing.T) {
	g := graph.Load([]graph.Edge{{5, 1}, {5, 3}, {5, 2}})

	assert.Equal(t, []int{1, 2, 3}, g.Neighbors(5))
	assert.Equal(t, []int{5}, g.Neighbors(1))

	missing := g.Neighbors(42)
	require.NotNil(t, missing)
	assert.Empty(t, missing)
}

func TestParallelEdgesCollapse(t *testing.T) {
	g := graph.Load([]graph.Edge{{1, 2}, {2, 1}, {1, 2}})

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.Degree(1))
	assert.Equal(t, 1, g.Degree(2))
	assert.Equal(t, []graph.Edge{{U: 1, V: 2}}, g.Edges())
}

func TestSelfLoopConvention(t *testing.T) {
	g := graph.Load([]graph.Edge{{4, 4}, {4, 4}, {4, 5}})

	assert.Equal(t, 2, g.EdgeCount(), "loop counts once, duplicates collapse")
	assert.Equal(t, []int{4, 5}, g.Neighbors(4), "loop listed once")
	assert.Equal(t, 3, g.Degree(4), "loop contributes two")
	assert.Equal(t, 1, g.Degree(5))
	assert.True(t, g.HasEdge(4, 4))
}

func TestSymmetry(t *testing.T) {
	g := graph.Load([]graph.Edge{{1, 2}, {2, 3}, {3, 4}, {4, 1}, {1, 3}, {7, 7}, {8, 9}})

	for _, u := range g.Vertices() {
		for _, v := range g.Neighbors(u) {
			assert.Truef(t, g.HasEdge(v, u), "edge %d-%d not symmetric", u, v)
			assert.Containsf(t, g.Neighbors(v), u, "%d missing from neighbors of %d", u, v)
		}
	}
}

func TestHandshake(t *testing.T) {
	tests := []struct {
		name  string
		edges []graph.Edge
	}{
		{"path", []graph.Edge{{1, 2}, {2, 3}, {3, 4}, {4, 5}}},
		{"triangle with loop", []graph.Edge{{1, 2}, {2, 3}, {3, 1}, {4, 4}}},
		{"only loops", []graph.Edge{{1, 1}, {2, 2}}},
		{"duplicates", []graph.Edge{{1, 2}, {2, 1}, {2, 3}, {3, 3}, {3, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := graph.Load(tt.edges)
			sum := 0
			for _, v := range g.Vertices() {
				sum += g.Degree(v)
			}
			assert.Equal(t, 2*g.EdgeCount(), sum)
		})
	}
}

func TestEdges_Canonical(t *testing.T) {
	g := graph.Load([]graph.Edge{{3, 1}, {2, 1}, {3, 3}})

	assert.Equal(t, []graph.Edge{{1, 2}, {1, 3}, {3, 3}}, g.Edges())
	assert.Len(t, g.Edges(), g.EdgeCount())
}

func TestEdge_Helpers(t *testing.T) {
	assert.Equal(t, graph.Edge{U: 1, V: 9}, graph.Edge{U: 9, V: 1}.Canonical())
	assert.Equal(t, graph.Edge{U: 1, V: 9}, graph.Edge{U: 1, V: 9}.Canonical())
	assert.True(t, graph.Edge{U: 2, V: 2}.IsLoop())
	assert.False(t, graph.Edge{U: 2, V: 3}.IsLoop())
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := graph.Load([]graph.Edge{{1, 2}, {1, 3}})

	nbrs := g.Neighbors(1)
	nbrs[0] = 99

	assert.Equal(t, []int{2, 3}, g.Neighbors(1))
}
