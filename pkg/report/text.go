package report

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/grafo/pkg/analysis"
	"github.com/matzehuels/grafo/pkg/errors"
)

func writeText(w io.Writer, data any) error {
	bw := bufio.NewWriter(w)
	switch d := data.(type) {
	case *analysis.DegreeReport:
		writeDegrees(bw, d)
	case *analysis.SparseReport:
		writeSparse(bw, d)
	case *analysis.AdjacencyReport:
		writeAdjacency(bw, d)
	case *analysis.TraversalReport:
		writeTraversal(bw, d)
	case *analysis.ComponentReport:
		writeComponents(bw, d)
	default:
		return errors.New(errors.ErrCodeInternal, "no text layout for %T", data)
	}
	return bw.Flush()
}

func writeDegrees(w *bufio.Writer, r *analysis.DegreeReport) {
	fmt.Fprintf(w, "# n = %d\n", r.VertexCount)
	fmt.Fprintf(w, "# m = %d\n", r.EdgeCount)
	fmt.Fprintf(w, "# min_grau = %d; max_grau = %d\n\n", r.MinDegree, r.MaxDegree)
	for _, v := range slices.Sorted(maps.Keys(r.Degrees)) {
		fmt.Fprintf(w, "%d %d\n", v, r.Degrees[v])
	}
}

func writeSparse(w *bufio.Writer, r *analysis.SparseReport) {
	for _, v := range slices.Sorted(maps.Keys(r.Rows)) {
		fmt.Fprintf(w, "%d: [%s]\n", v, joinInts(r.Rows[v]))
	}
}

func writeAdjacency(w *bufio.Writer, r *analysis.AdjacencyReport) {
	for _, v := range slices.Sorted(maps.Keys(r.Adjacency)) {
		fmt.Fprintf(w, "%d: %s\n", v, joinInts(r.Adjacency[v]))
	}
}

func writeTraversal(w *bufio.Writer, r *analysis.TraversalReport) {
	fmt.Fprintf(w, "# diâmetro = %d\n\n", r.Diameter)
	for _, e := range r.Entries {
		fmt.Fprintf(w, "%d: pai = %s, nível = %s\n", e.Vertex, optInt(e.Parent), optInt(e.Level))
	}
}

func writeComponents(w *bufio.Writer, r *analysis.ComponentReport) {
	fmt.Fprintf(w, "# num_componentes = %d\n", r.Count)
	fmt.Fprintf(w, "# menor_componente = %d; maior_componente = %d\n\n", r.MinSize, r.MaxSize)
	for i, c := range r.Components {
		fmt.Fprintf(w, "# componente %d: tamanho = %d, vértices = {%s}\n", i+1, len(c), joinInts(c))
	}
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}

// optInt renders a missing value as "None".
func optInt(p *int) string {
	if p == nil {
		return "None"
	}
	return strconv.Itoa(*p)
}
