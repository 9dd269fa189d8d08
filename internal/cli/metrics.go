package cli

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metricsHooks counts pipeline events in a private registry that is written
// out in the node_exporter textfile format when the command finishes.
type metricsHooks struct {
	registry *prometheus.Registry

	loads          *prometheus.CounterVec
	vertices       prometheus.Gauge
	edges          prometheus.Gauge
	reports        *prometheus.CounterVec
	reportDuration *prometheus.HistogramVec
	renders        *prometheus.CounterVec
	renderBytes    prometheus.Histogram
}

func newMetricsHooks() *metricsHooks {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &metricsHooks{
		registry: reg,
		loads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "grafo_graph_loads_total",
			Help: "Graph files read, by result.",
		}, []string{"result"}),
		vertices: f.NewGauge(prometheus.GaugeOpts{
			Name: "grafo_graph_vertices",
			Help: "Vertices in the most recently loaded graph.",
		}),
		edges: f.NewGauge(prometheus.GaugeOpts{
			Name: "grafo_graph_edges",
			Help: "Edges in the most recently loaded graph.",
		}),
		reports: f.NewCounterVec(prometheus.CounterOpts{
			Name: "grafo_reports_total",
			Help: "Reports written, by kind and result.",
		}, []string{"kind", "result"}),
		reportDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "grafo_report_duration_seconds",
			Help:    "Time to compute and write one report.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
		}, []string{"kind"}),
		renders: f.NewCounterVec(prometheus.CounterOpts{
			Name: "grafo_renders_total",
			Help: "Diagrams rendered, by format and result.",
		}, []string{"format", "result"}),
		renderBytes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "grafo_render_bytes",
			Help:    "Size of rendered diagrams.",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		}),
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (m *metricsHooks) OnLoad(_ context.Context, _ string, vertices, edges int, _ time.Duration, err error) {
	m.loads.WithLabelValues(result(err)).Inc()
	if err == nil {
		m.vertices.Set(float64(vertices))
		m.edges.Set(float64(edges))
	}
}

func (m *metricsHooks) OnReport(_ context.Context, kind, _ string, d time.Duration, err error) {
	m.reports.WithLabelValues(kind, result(err)).Inc()
	m.reportDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func (m *metricsHooks) OnRender(_ context.Context, format string, size int, _ time.Duration, err error) {
	m.renders.WithLabelValues(format, result(err)).Inc()
	if err == nil {
		m.renderBytes.Observe(float64(size))
	}
}

// writeFile stores the collected metrics at path.
func (m *metricsHooks) writeFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
