package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/grafo/pkg/analysis"
	"github.com/matzehuels/grafo/pkg/graph"
)

// Output formats supported by [Render].
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Formats lists the diagram formats.
var Formats = []string{FormatDOT, FormatSVG, FormatPNG}

// palette cycles through soft fill colors for component coloring.
var palette = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3",
	"#fdb462", "#b3de69", "#fccde5", "#d9d9d9", "#bc80bd",
}

// Options configures diagram generation.
type Options struct {
	// Partition colors vertices by component when non-nil.
	Partition *analysis.Partition
	// Tree highlights traversal tree edges and marks the start vertex.
	Tree *analysis.Traversal
	// Detailed adds tree levels to vertex labels.
	Detailed bool
}

// ToDOT converts g to Graphviz DOT source for an undirected diagram.
// Vertices and edges are emitted in ascending order so output is stable.
func ToDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %d [%s];\n", v, strings.Join(vertexAttrs(v, opts), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs := edgeAttrs(e, opts)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %d -- %d;\n", e.U, e.V)
			continue
		}
		fmt.Fprintf(&buf, "  %d -- %d [%s];\n", e.U, e.V, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func vertexAttrs(v int, opts Options) []string {
	label := fmt.Sprintf("%d", v)
	if opts.Detailed && opts.Tree != nil {
		if l, ok := opts.Tree.LevelOf(v); ok {
			label = fmt.Sprintf("%d\\nL%d", v, l)
		}
	}
	attrs := []string{`label="` + label + `"`}

	if opts.Partition != nil {
		if i := opts.Partition.ComponentOf(v); i >= 0 {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", palette[i%len(palette)]))
		}
	}
	if opts.Tree != nil {
		switch {
		case v == opts.Tree.Start:
			attrs = append(attrs, "penwidth=3", "shape=doublecircle")
		case !opts.Tree.Visited(v):
			attrs = append(attrs, "fontcolor=gray50", "color=gray70")
		}
	}
	return attrs
}

func edgeAttrs(e graph.Edge, opts Options) []string {
	if opts.Tree == nil {
		return nil
	}
	if isTreeEdge(opts.Tree, e) {
		return []string{"penwidth=2.5"}
	}
	return []string{"style=dashed", "color=gray70"}
}

func isTreeEdge(t *analysis.Traversal, e graph.Edge) bool {
	if p, ok := t.ParentOf(e.V); ok && p == e.U {
		return true
	}
	if p, ok := t.ParentOf(e.U); ok && p == e.V {
		return true
	}
	return false
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderGraphviz(ctx, dot, graphviz.SVG)
}

// RenderPNG renders DOT source to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderGraphviz(ctx, dot, graphviz.PNG)
}

// Render produces the diagram in the named format. The dot format returns
// the DOT source unchanged.
func Render(ctx context.Context, dot, format string) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return RenderSVG(ctx, dot)
	case FormatPNG:
		return RenderPNG(ctx, dot)
	default:
		return nil, fmt.Errorf("unsupported diagram format %q", format)
	}
}

func renderGraphviz(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
