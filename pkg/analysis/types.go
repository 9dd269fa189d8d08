package analysis

import "slices"

// Mode selects the frontier discipline of a traversal.
type Mode string

// Traversal modes.
const (
	ModeBFS Mode = "bfs"
	ModeDFS Mode = "dfs"
)

// Modes lists the supported traversal modes.
var Modes = []Mode{ModeBFS, ModeDFS}

// Traversal is the spanning tree produced by [BFS] or [DFS].
//
// Only visited vertices appear in Parent and Level. The start vertex has a
// Level entry but no Parent entry.
type Traversal struct {
	Mode     Mode
	Start    int
	Parent   map[int]int
	Level    map[int]int
	Order    []int // visit order
	Diameter int
}

// Visited reports whether v was reached from the start vertex.
func (t *Traversal) Visited(v int) bool {
	_, ok := t.Level[v]
	return ok
}

// ParentOf returns the tree parent of v. ok is false for the start vertex
// and for unreached vertices.
func (t *Traversal) ParentOf(v int) (p int, ok bool) {
	p, ok = t.Parent[v]
	return p, ok
}

// LevelOf returns the tree depth of v. ok is false for unreached vertices.
func (t *Traversal) LevelOf(v int) (l int, ok bool) {
	l, ok = t.Level[v]
	return l, ok
}

// Partition is an ordered list of disjoint vertex sets whose union is the
// vertex set of the graph. Each component is sorted ascending.
type Partition struct {
	Components [][]int
}

// Count returns the number of components.
func (p *Partition) Count() int { return len(p.Components) }

// Sizes returns the size of each component, in component order.
func (p *Partition) Sizes() []int {
	sizes := make([]int, len(p.Components))
	for i, c := range p.Components {
		sizes[i] = len(c)
	}
	return sizes
}

// MinSize returns the size of the smallest component.
func (p *Partition) MinSize() int {
	if len(p.Components) == 0 {
		return 0
	}
	return slices.Min(p.Sizes())
}

// MaxSize returns the size of the largest component.
func (p *Partition) MaxSize() int {
	if len(p.Components) == 0 {
		return 0
	}
	return slices.Max(p.Sizes())
}

// ComponentOf returns the index of the component holding v, or -1.
func (p *Partition) ComponentOf(v int) int {
	for i, c := range p.Components {
		if _, found := slices.BinarySearch(c, v); found {
			return i
		}
	}
	return -1
}

// =============================================================================
// Report value objects
// =============================================================================

// DegreeReport summarizes vertex degrees.
type DegreeReport struct {
	VertexCount int         `json:"vertex_count" yaml:"vertex_count"`
	EdgeCount   int         `json:"edge_count" yaml:"edge_count"`
	MinDegree   int         `json:"min_degree" yaml:"min_degree"`
	MaxDegree   int         `json:"max_degree" yaml:"max_degree"`
	Degrees     map[int]int `json:"degrees" yaml:"degrees"`
}

// AdjacencyReport maps each vertex to its sorted neighbor ids.
type AdjacencyReport struct {
	Adjacency map[int][]int `json:"adjacency" yaml:"adjacency"`
}

// SparseReport maps each vertex to the sorted 1-indexed positions of its
// neighbors in the ascending vertex order.
type SparseReport struct {
	Rows map[int][]int `json:"rows" yaml:"rows"`
}

// TraversalEntry is one line of a traversal report. Parent and Level are
// nil when the vertex is the root (Parent only) or was not reached.
type TraversalEntry struct {
	Vertex int  `json:"vertex" yaml:"vertex"`
	Parent *int `json:"parent" yaml:"parent"`
	Level  *int `json:"level" yaml:"level"`
}

// TraversalReport lists every vertex of the graph with its tree parent and
// level from a single traversal.
type TraversalReport struct {
	Mode     Mode             `json:"mode" yaml:"mode"`
	Start    int              `json:"start" yaml:"start"`
	Diameter int              `json:"diameter" yaml:"diameter"`
	Entries  []TraversalEntry `json:"entries" yaml:"entries"`
}

// ComponentReport summarizes a [Partition].
type ComponentReport struct {
	Count      int     `json:"count" yaml:"count"`
	MinSize    int     `json:"min_size" yaml:"min_size"`
	MaxSize    int     `json:"max_size" yaml:"max_size"`
	Components [][]int `json:"components" yaml:"components"`
}
