package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/grafo/pkg/analysis"
	"github.com/matzehuels/grafo/pkg/errors"
	"github.com/matzehuels/grafo/pkg/graph"
	"github.com/matzehuels/grafo/pkg/observability"
	"github.com/matzehuels/grafo/pkg/report"
	"github.com/matzehuels/grafo/pkg/session"
)

// Runner executes pipeline stages against one session.
//
// The Runner stores no results of its own: every report is recomputed from
// the session's current graph, which is never modified after load.
type Runner struct {
	Session *session.Session
	Logger  *log.Logger
}

// NewRunner creates a runner. A nil session starts a fresh one; a nil
// logger uses the default logger.
func NewRunner(sess *session.Session, logger *log.Logger) *Runner {
	if sess == nil {
		sess = session.New()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Session: sess, Logger: logger}
}

// Execute loads path and writes every report named in opts.Kinds.
// It stops at the first failing report.
func (r *Runner) Execute(ctx context.Context, path string, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	loadStart := time.Now()
	g, err := r.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.VertexCount = g.VertexCount()
	result.Stats.EdgeCount = g.EdgeCount()

	reportStart := time.Now()
	for _, kind := range opts.Kinds {
		out, err := r.Write(ctx, kind, opts)
		if err != nil {
			return result, fmt.Errorf("%s: %w", kind, err)
		}
		result.Written = append(result.Written, Written{Kind: kind, Path: out})
	}
	result.Stats.ReportTime = time.Since(reportStart)

	r.Logger.Info("wrote reports",
		"count", len(result.Written),
		"duration", result.Stats.ReportTime)

	return result, nil
}

// Compute builds the report of the given kind from the session's graph.
func (r *Runner) Compute(ctx context.Context, kind report.Kind, opts Options) (*report.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateKind(kind); err != nil {
		return nil, err
	}
	g, err := r.Session.Graph()
	if err != nil {
		return nil, err
	}

	data, err := compute(g, kind, opts)
	if err != nil {
		return nil, err
	}

	rep := report.New(kind, data)
	rep.Session = r.Session.ID
	rep.Source = r.Session.Source
	return rep, nil
}

// Write computes the report of the given kind and writes it to the path
// chosen by opts. It returns that path.
func (r *Runner) Write(ctx context.Context, kind report.Kind, opts Options) (string, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return "", err
	}

	start := time.Now()
	out := opts.Path(kind)

	rep, err := r.Compute(ctx, kind, opts)
	if err == nil {
		err = report.WriteFile(out, opts.Format, rep)
	}
	observability.Analysis().OnReport(ctx, string(kind), out, time.Since(start), err)
	if err != nil {
		return "", err
	}

	r.Logger.Debug("wrote report", "kind", kind, "path", out, "duration", time.Since(start))
	return out, nil
}

// Traversal runs a traversal over the session's graph. A zero start
// selects the smallest vertex.
func (r *Runner) Traversal(ctx context.Context, mode analysis.Mode, opts Options) (*analysis.Traversal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g, err := r.Session.Graph()
	if err != nil {
		return nil, err
	}
	start, err := startVertex(g, opts.Start)
	if err != nil {
		return nil, err
	}
	return analysis.Traverse(g, mode, start, analysis.WithStrictStart(opts.StrictStart))
}

func compute(g *graph.Graph, kind report.Kind, opts Options) (any, error) {
	switch kind {
	case report.KindInfo:
		return analysis.Degrees(g)
	case report.KindSparse:
		return analysis.SparseAdjacency(g)
	case report.KindAdjacency:
		return analysis.AdjacencyList(g)
	case report.KindBFS, report.KindDFS:
		mode := analysis.ModeBFS
		if kind == report.KindDFS {
			mode = analysis.ModeDFS
		}
		start, err := startVertex(g, opts.Start)
		if err != nil {
			return nil, err
		}
		return analysis.TraversalReportFor(g, mode, start, analysis.WithStrictStart(opts.StrictStart))
	case report.KindComponents:
		return analysis.ComponentReportFor(g)
	default:
		return nil, errors.New(errors.ErrCodeInternal, "no analysis for report %q", kind)
	}
}

// startVertex resolves the traversal start. Zero means "smallest vertex",
// which requires a non-empty graph.
func startVertex(g *graph.Graph, start int) (int, error) {
	if start != 0 {
		return start, nil
	}
	vs := g.Vertices()
	if len(vs) == 0 {
		return 0, errors.New(errors.ErrCodeEmptyGraph, "graph has no vertices to start a traversal from")
	}
	return vs[0], nil
}
