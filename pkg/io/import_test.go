package io

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/grafo/pkg/errors"
	"github.com/matzehuels/grafo/pkg/graph"
)

func TestReadEdgeList(t *testing.T) {
	input := "4\n1 2\n2 3\n3 1\n4 4\n"

	el, err := ReadEdgeList(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadEdgeList() error = %v", err)
	}
	if el.Declared != 4 {
		t.Errorf("Declared = %d, want 4", el.Declared)
	}
	want := []graph.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 1}, {U: 4, V: 4}}
	if !reflect.DeepEqual(el.Edges, want) {
		t.Errorf("Edges = %v, want %v", el.Edges, want)
	}

	g := el.Graph()
	if g.VertexCount() != 4 || g.EdgeCount() != 4 {
		t.Errorf("graph = %d vertices, %d edges, want 4, 4", g.VertexCount(), g.EdgeCount())
	}
	if g.DeclaredVertices() != 4 {
		t.Errorf("DeclaredVertices() = %d, want 4", g.DeclaredVertices())
	}
}

func TestReadEdgeList_Whitespace(t *testing.T) {
	input := "  3  \r\n1\t2\n   2    3\r\n"

	el, err := ReadEdgeList(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadEdgeList() error = %v", err)
	}
	if len(el.Edges) != 2 {
		t.Errorf("len(Edges) = %d, want 2", len(el.Edges))
	}
}

func TestReadEdgeList_NoEdges(t *testing.T) {
	el, err := ReadEdgeList(strings.NewReader("3\n"))
	if err != nil {
		t.Fatalf("ReadEdgeList() error = %v", err)
	}
	g := el.Graph()
	if len(g.Vertices()) != 0 {
		t.Errorf("Vertices() = %v, want empty", g.Vertices())
	}
	if g.DeclaredVertices() != 3 {
		t.Errorf("DeclaredVertices() = %d, want 3", g.DeclaredVertices())
	}
}

func TestReadEdgeList_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
		wantLine int
	}{
		{"empty file", "", errors.ErrCodeMalformedInput, 1},
		{"blank count", "\n1 2\n", errors.ErrCodeMalformedInput, 1},
		{"count not integer", "abc\n1 2\n", errors.ErrCodeMalformedInput, 1},
		{"count zero", "0\n1 2\n", errors.ErrCodeInvalidVertexCount, 1},
		{"count negative", "-2\n", errors.ErrCodeInvalidVertexCount, 1},
		{"one field", "3\n1 2\n3\n", errors.ErrCodeMalformedInput, 3},
		{"three fields", "3\n1 2 3\n", errors.ErrCodeMalformedInput, 2},
		{"not integer", "3\n1 2\n2 x\n", errors.ErrCodeMalformedInput, 3},
		{"float", "3\n1.5 2\n", errors.ErrCodeMalformedInput, 2},
		{"zero id", "3\n0 1\n", errors.ErrCodeMalformedInput, 2},
		{"blank edge line", "3\n1 2\n\n2 3\n", errors.ErrCodeMalformedInput, 3},
		{"whitespace-only line", "3\n1 2\n  \t\n", errors.ErrCodeMalformedInput, 3},
		{"trailing blank line", "3\n1 2\n\n", errors.ErrCodeMalformedInput, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadEdgeList(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("ReadEdgeList() error = nil, want error")
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %v, want %v", got, tt.wantCode)
			}
			if got := errors.GetLine(err); got != tt.wantLine {
				t.Errorf("line = %v, want %v", got, tt.wantLine)
			}
		})
	}
}

func TestImportGraph(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.txt")
	if err := os.WriteFile(path, []byte("5\n1 2\n2 3\n3 4\n4 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := ImportGraph(path)
	if err != nil {
		t.Fatalf("ImportGraph() error = %v", err)
	}
	if got := g.Vertices(); !reflect.DeepEqual(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("Vertices() = %v, want [1 2 3 4 5]", got)
	}
}

func TestImportGraph_Missing(t *testing.T) {
	_, err := ImportGraph(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportGraph() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestImportGraph_MalformedKeepsLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("2\n1 2\nnope\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportGraph(path)
	if !errors.Is(err, errors.ErrCodeMalformedInput) {
		t.Fatalf("ImportGraph() error = %v, want MALFORMED_INPUT", err)
	}
	if errors.GetLine(err) != 3 {
		t.Errorf("line = %d, want 3", errors.GetLine(err))
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should mention path", err.Error())
	}
}

func TestImportGraph_Examples(t *testing.T) {
	tests := []struct {
		file     string
		vertices int
		edges    int
		declared int
	}{
		{"two_components.txt", 5, 4, 5},
		{"cycle_with_tail.txt", 6, 7, 6},
		{"empty.txt", 0, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			g, err := ImportGraph(filepath.Join("..", "..", "examples", tt.file))
			if err != nil {
				t.Fatalf("ImportGraph() error = %v", err)
			}
			if g.VertexCount() != tt.vertices || g.EdgeCount() != tt.edges {
				t.Errorf("graph = %d vertices, %d edges, want %d, %d",
					g.VertexCount(), g.EdgeCount(), tt.vertices, tt.edges)
			}
			if g.DeclaredVertices() != tt.declared {
				t.Errorf("DeclaredVertices() = %d, want %d", g.DeclaredVertices(), tt.declared)
			}
		})
	}
}
