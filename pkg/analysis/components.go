package analysis

import (
	"slices"

	"github.com/matzehuels/grafo/pkg/errors"
	"github.com/matzehuels/grafo/pkg/graph"
)

// Components partitions the vertices of g into connected components.
//
// Vertices are scanned in ascending order; each vertex not yet assigned
// seeds a breadth-first sweep that collects its whole component. The
// output order follows the seeds. Returns EMPTY_GRAPH if g has no
// vertices.
func Components(g *graph.Graph) (*Partition, error) {
	if g.IsEmpty() {
		return nil, errors.New(errors.ErrCodeEmptyGraph, "graph has no vertices")
	}

	vertices := g.Vertices()
	assigned := make(map[int]bool, len(vertices))
	p := &Partition{}

	for _, seed := range vertices {
		if assigned[seed] {
			continue
		}
		t, err := BFS(g, seed)
		if err != nil {
			return nil, err
		}
		comp := slices.Clone(t.Order)
		slices.Sort(comp)
		for _, v := range comp {
			assigned[v] = true
		}
		p.Components = append(p.Components, comp)
	}
	return p, nil
}

// ComponentReportOf summarizes p for the report layer.
func ComponentReportOf(p *Partition) *ComponentReport {
	comps := make([][]int, len(p.Components))
	for i, c := range p.Components {
		comps[i] = slices.Clone(c)
	}
	return &ComponentReport{
		Count:      p.Count(),
		MinSize:    p.MinSize(),
		MaxSize:    p.MaxSize(),
		Components: comps,
	}
}

// ComponentReportFor computes the partition of g and its report.
func ComponentReportFor(g *graph.Graph) (*ComponentReport, error) {
	p, err := Components(g)
	if err != nil {
		return nil, err
	}
	return ComponentReportOf(p), nil
}
