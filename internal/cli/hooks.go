package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/grafo/pkg/observability"
)

// logHooks reports pipeline events to the CLI logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnLoad(_ context.Context, source string, vertices, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "source", source, "err", err)
		return
	}
	h.logger.Debug("load", "source", source, "vertices", vertices, "edges", edges, "duration", d)
}

func (h *logHooks) OnReport(_ context.Context, kind, path string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("report failed", "kind", kind, "err", err)
		return
	}
	h.logger.Debug("report", "kind", kind, "path", path, "duration", d)
}

func (h *logHooks) OnRender(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("render", "format", format, "bytes", size, "duration", d)
}

// hookSet fans every event out to each of its hooks in order.
type hookSet []observability.AnalysisHooks

func (hs hookSet) OnLoad(ctx context.Context, source string, vertices, edges int, d time.Duration, err error) {
	for _, h := range hs {
		h.OnLoad(ctx, source, vertices, edges, d, err)
	}
}

func (hs hookSet) OnReport(ctx context.Context, kind, path string, d time.Duration, err error) {
	for _, h := range hs {
		h.OnReport(ctx, kind, path, d, err)
	}
}

func (hs hookSet) OnRender(ctx context.Context, format string, size int, d time.Duration, err error) {
	for _, h := range hs {
		h.OnRender(ctx, format, size, d, err)
	}
}
