package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopAnalysisHooks{}
	h.OnLoad(ctx, "graph.txt", 10, 12, time.Second, nil)
	h.OnReport(ctx, "bfs", "bfs_tree.txt", time.Second, nil)
	h.OnRender(ctx, "svg", 2048, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Analysis().(NoopAnalysisHooks); !ok {
		t.Error("Analysis() should return NoopAnalysisHooks by default")
	}

	custom := &testAnalysisHooks{}
	SetAnalysisHooks(custom)
	if Analysis() != custom {
		t.Error("SetAnalysisHooks should set custom hooks")
	}

	Analysis().OnReport(context.Background(), "info", "graph_info.txt", 0, nil)
	if custom.reports != 1 {
		t.Errorf("reports = %d, want 1", custom.reports)
	}

	Reset()
	if _, ok := Analysis().(NoopAnalysisHooks); !ok {
		t.Error("Reset() should restore NoopAnalysisHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testAnalysisHooks{}
	SetAnalysisHooks(custom)

	// Setting nil should be ignored
	SetAnalysisHooks(nil)

	if Analysis() != custom {
		t.Error("SetAnalysisHooks(nil) should be ignored")
	}

	Reset()
}

type testAnalysisHooks struct {
	NoopAnalysisHooks
	reports int
}

func (h *testAnalysisHooks) OnReport(context.Context, string, string, time.Duration, error) {
	h.reports++
}
