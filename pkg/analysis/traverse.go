package analysis

import (
	"slices"
	"strings"

	"github.com/matzehuels/grafo/pkg/errors"
	"github.com/matzehuels/grafo/pkg/graph"
)

// Option configures a traversal.
type Option func(*options)

type options struct {
	strict bool
}

// WithStrict makes a traversal fail with UNKNOWN_START_VERTEX when the
// start vertex does not appear in the graph.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithStrictStart is WithStrict driven by a flag value.
func WithStrictStart(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// ParseMode converts a user-supplied name ("bfs", "DFS") to a [Mode].
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeBFS, ModeDFS:
		return m, nil
	}
	return "", errors.New(errors.ErrCodeInvalidMode, "unknown traversal mode %q (want bfs or dfs)", s)
}

// frame is a pending frontier entry. Root frames carry no parent.
type frame struct {
	vertex int
	parent int
	level  int
	root   bool
}

// walker holds the mutable state of one traversal.
type walker struct {
	g        *graph.Graph
	mode     Mode
	frontier []frame
	res      *Traversal
}

// BFS traverses g breadth-first from start.
// The reported diameter is the level of the last vertex visited.
func BFS(g *graph.Graph, start int, opts ...Option) (*Traversal, error) {
	return Traverse(g, ModeBFS, start, opts...)
}

// DFS traverses g depth-first from start.
// The reported diameter is the largest level of any visited vertex.
func DFS(g *graph.Graph, start int, opts ...Option) (*Traversal, error) {
	return Traverse(g, ModeDFS, start, opts...)
}

// Traverse runs a traversal of the given mode from start.
//
// Neighbors are pushed onto the frontier in ascending id order. A vertex
// is visited at most once; frontier entries for already-visited vertices
// are discarded when popped.
func Traverse(g *graph.Graph, mode Mode, start int, opts ...Option) (*Traversal, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if mode != ModeBFS && mode != ModeDFS {
		return nil, errors.New(errors.ErrCodeInvalidMode, "unknown traversal mode %q", mode)
	}
	if o.strict && !g.HasVertex(start) {
		return nil, errors.New(errors.ErrCodeUnknownStartVertex, "start vertex %d does not appear in the graph", start)
	}

	n := g.VertexCount()
	w := &walker{
		g:        g,
		mode:     mode,
		frontier: make([]frame, 0, n+1),
		res: &Traversal{
			Mode:   mode,
			Start:  start,
			Parent: make(map[int]int, n),
			Level:  make(map[int]int, n+1),
			Order:  make([]int, 0, n+1),
		},
	}
	w.push(frame{vertex: start, root: true})
	w.loop()
	return w.res, nil
}

func (w *walker) push(f frame) {
	w.frontier = append(w.frontier, f)
}

// pop takes from the front for BFS and from the back for DFS.
func (w *walker) pop() frame {
	if w.mode == ModeBFS {
		f := w.frontier[0]
		w.frontier = w.frontier[1:]
		return f
	}
	last := len(w.frontier) - 1
	f := w.frontier[last]
	w.frontier = w.frontier[:last]
	return f
}

func (w *walker) loop() {
	for len(w.frontier) > 0 {
		f := w.pop()
		if w.res.Visited(f.vertex) {
			continue
		}
		w.visit(f)
		for _, nbr := range w.g.Neighbors(f.vertex) {
			if !w.res.Visited(nbr) {
				w.push(frame{vertex: nbr, parent: f.vertex, level: f.level + 1})
			}
		}
	}
}

func (w *walker) visit(f frame) {
	r := w.res
	r.Level[f.vertex] = f.level
	if !f.root {
		r.Parent[f.vertex] = f.parent
	}
	r.Order = append(r.Order, f.vertex)

	switch w.mode {
	case ModeBFS:
		r.Diameter = f.level
	case ModeDFS:
		r.Diameter = max(r.Diameter, f.level)
	}
}

// TraversalReportOf builds the report for t covering every vertex of g in
// ascending order. Unreached vertices get nil parent and level. A start
// vertex absent from g is listed as an isolated root.
func TraversalReportOf(g *graph.Graph, t *Traversal) *TraversalReport {
	vertices := g.Vertices()
	if !g.HasVertex(t.Start) && t.Visited(t.Start) {
		i, _ := slices.BinarySearch(vertices, t.Start)
		vertices = slices.Insert(vertices, i, t.Start)
	}
	rep := &TraversalReport{
		Mode:     t.Mode,
		Start:    t.Start,
		Diameter: t.Diameter,
		Entries:  make([]TraversalEntry, len(vertices)),
	}
	for i, v := range vertices {
		e := TraversalEntry{Vertex: v}
		if p, ok := t.ParentOf(v); ok {
			e.Parent = &p
		}
		if l, ok := t.LevelOf(v); ok {
			e.Level = &l
		}
		rep.Entries[i] = e
	}
	return rep
}

// TraversalReportFor runs a traversal and builds its report in one step.
func TraversalReportFor(g *graph.Graph, mode Mode, start int, opts ...Option) (*TraversalReport, error) {
	t, err := Traverse(g, mode, start, opts...)
	if err != nil {
		return nil, err
	}
	return TraversalReportOf(g, t), nil
}
