// Package nodelink renders undirected graphs as node-link diagrams.
//
// # Usage
//
// Convert a graph to DOT, then render it:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Partition: fill each vertex with a color keyed by its component
//   - Tree: draw traversal tree edges bold and other edges dashed; with
//     Detailed set, vertex labels also show the tree level
//
// # Dependencies
//
// Rendering uses [github.com/goccy/go-graphviz], which runs Graphviz
// in-process, so no external binaries are required.
package nodelink
