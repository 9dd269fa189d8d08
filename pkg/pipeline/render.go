package pipeline

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/matzehuels/grafo/pkg/analysis"
	"github.com/matzehuels/grafo/pkg/errors"
	"github.com/matzehuels/grafo/pkg/observability"
	"github.com/matzehuels/grafo/pkg/render/nodelink"
)

// RenderOptions configures a diagram render.
type RenderOptions struct {
	// Format is one of nodelink.Formats. Defaults to svg.
	Format string

	// Components colors vertices by connected component.
	Components bool

	// Tree highlights a BFS or DFS tree when non-empty.
	Tree analysis.Mode

	// Start and StrictStart are used when Tree is set.
	Start       int
	StrictStart bool

	// Detailed shows tree levels on vertex labels.
	Detailed bool
}

// Render draws the session's graph as a node-link diagram.
func (r *Runner) Render(ctx context.Context, opts RenderOptions) ([]byte, error) {
	if opts.Format == "" {
		opts.Format = nodelink.FormatSVG
	}
	if err := errors.ValidateFormat(opts.Format, nodelink.Formats); err != nil {
		return nil, err
	}
	if opts.Tree != "" && !slices.Contains(analysis.Modes, opts.Tree) {
		return nil, errors.New(errors.ErrCodeInvalidMode, "unknown traversal mode %q (want bfs or dfs)", opts.Tree)
	}

	g, err := r.Session.Graph()
	if err != nil {
		return nil, err
	}

	var dotOpts nodelink.Options
	dotOpts.Detailed = opts.Detailed
	if opts.Components && !g.IsEmpty() {
		p, err := analysis.Components(g)
		if err != nil {
			return nil, err
		}
		dotOpts.Partition = p
	}
	if opts.Tree != "" {
		t, err := r.Traversal(ctx, opts.Tree, Options{Start: opts.Start, StrictStart: opts.StrictStart})
		if err != nil {
			return nil, err
		}
		dotOpts.Tree = t
	}

	start := time.Now()
	dot := nodelink.ToDOT(g, dotOpts)
	data, err := nodelink.Render(ctx, dot, opts.Format)
	observability.Analysis().OnRender(ctx, opts.Format, len(data), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", opts.Format, err)
	}

	r.Logger.Info("rendered diagram",
		"format", opts.Format,
		"bytes", len(data),
		"duration", time.Since(start))
	return data, nil
}
