package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsHooks_Counts(t *testing.T) {
	m := newMetricsHooks()
	ctx := context.Background()

	m.OnLoad(ctx, "g.txt", 5, 4, time.Millisecond, nil)
	m.OnLoad(ctx, "bad.txt", 0, 0, time.Millisecond, errors.New("boom"))
	m.OnReport(ctx, "bfs", "bfs_tree.txt", time.Millisecond, nil)
	m.OnReport(ctx, "bfs", "bfs_tree.txt", time.Millisecond, nil)
	m.OnReport(ctx, "dfs", "", 0, errors.New("boom"))
	m.OnRender(ctx, "svg", 2048, time.Millisecond, nil)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"loads ok", testutil.ToFloat64(m.loads.WithLabelValues("ok")), 1},
		{"loads error", testutil.ToFloat64(m.loads.WithLabelValues("error")), 1},
		{"vertices", testutil.ToFloat64(m.vertices), 5},
		{"edges", testutil.ToFloat64(m.edges), 4},
		{"bfs ok", testutil.ToFloat64(m.reports.WithLabelValues("bfs", "ok")), 2},
		{"dfs error", testutil.ToFloat64(m.reports.WithLabelValues("dfs", "error")), 1},
		{"svg ok", testutil.ToFloat64(m.renders.WithLabelValues("svg", "ok")), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestMetricsHooks_Independent(t *testing.T) {
	a, b := newMetricsHooks(), newMetricsHooks()
	a.OnLoad(context.Background(), "g.txt", 1, 0, 0, nil)

	if got := testutil.ToFloat64(b.loads.WithLabelValues("ok")); got != 0 {
		t.Errorf("second registry loads = %v, want 0", got)
	}
}

func TestMetricsFileFlag(t *testing.T) {
	captureStdout(t)
	dir := t.TempDir()
	graphPath := writeGraphFile(t, dir, "3\n1 2\n2 3\n")
	metricsPath := filepath.Join(dir, "grafo.prom")

	if _, err := execute(t, "all", graphPath, "--output-dir", dir, "--metrics-file", metricsPath); err != nil {
		t.Fatalf("all error = %v", err)
	}

	data, err := os.ReadFile(metricsPath)
	if err != nil {
		t.Fatalf("metrics file not written: %v", err)
	}
	for _, want := range []string{
		`grafo_graph_loads_total{result="ok"} 1`,
		`grafo_graph_vertices 3`,
		`grafo_reports_total{kind="components",result="ok"} 1`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("metrics file missing %q:\n%s", want, data)
		}
	}
}

func TestNoMetricsFileByDefault(t *testing.T) {
	captureStdout(t)
	dir := t.TempDir()
	graphPath := writeGraphFile(t, dir, "2\n1 2\n")

	if _, err := execute(t, "info", graphPath, "--output-dir", dir); err != nil {
		t.Fatalf("info error = %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "*.prom"))
	if len(matches) != 0 {
		t.Errorf("unexpected metrics files: %v", matches)
	}
}
