package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/grafo/pkg/graph"
	grafoio "github.com/matzehuels/grafo/pkg/io"
	"github.com/matzehuels/grafo/pkg/observability"
)

// Load reads the edge-list file at path and installs the graph in the
// runner's session, replacing any previous graph. On error the session
// keeps its current graph.
func (r *Runner) Load(ctx context.Context, path string) (*graph.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	g, err := grafoio.ImportGraph(path)
	elapsed := time.Since(start)
	if err != nil {
		observability.Analysis().OnLoad(ctx, path, 0, 0, elapsed, err)
		return nil, err
	}

	r.Session.Replace(g, path)
	observability.Analysis().OnLoad(ctx, path, g.VertexCount(), g.EdgeCount(), elapsed, nil)

	r.Logger.Info("loaded graph",
		"source", path,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"session", r.Session.ID,
		"duration", elapsed)
	if d := g.DeclaredVertices(); d != g.VertexCount() {
		r.Logger.Debug("declared vertex count differs", "declared", d, "actual", g.VertexCount())
	}
	return g, nil
}
