package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/grafo/pkg/errors"
	"github.com/matzehuels/grafo/pkg/graph"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// EdgeList is the parsed content of an edge-list file.
type EdgeList struct {
	Declared int          // vertex count from the first line
	Edges    []graph.Edge // edges in file order, duplicates kept
}

// Graph builds the adjacency store for the edge list.
func (el *EdgeList) Graph() *graph.Graph {
	return graph.Load(el.Edges, graph.WithDeclaredVertices(el.Declared))
}

// ReadEdgeList parses an edge list from r. ReadEdgeList does not close r.
func ReadEdgeList(r io.Reader) (*EdgeList, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	el := &EdgeList{}
	line := 0
	sawCount := false

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())

		if !sawCount {
			n, err := parseCount(text, line)
			if err != nil {
				return nil, err
			}
			el.Declared = n
			sawCount = true
			continue
		}

		if text == "" {
			return nil, errors.NewAt(errors.ErrCodeMalformedInput, line, "blank line, want an edge \"u v\"")
		}
		e, err := parseEdge(text, line)
		if err != nil {
			return nil, err
		}
		el.Edges = append(el.Edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "read line %d", line+1)
	}
	if !sawCount {
		return nil, errors.NewAt(errors.ErrCodeMalformedInput, 1, "missing vertex count")
	}
	return el, nil
}

func parseCount(text string, line int) (int, error) {
	if text == "" {
		return 0, errors.NewAt(errors.ErrCodeMalformedInput, line, "missing vertex count")
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, errors.NewAt(errors.ErrCodeMalformedInput, line, "vertex count %q is not an integer", text)
	}
	if n < 1 {
		return 0, errors.NewAt(errors.ErrCodeInvalidVertexCount, line, "vertex count must be at least 1, got %d", n)
	}
	return n, nil
}

func parseEdge(text string, line int) (graph.Edge, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return graph.Edge{}, errors.NewAt(errors.ErrCodeMalformedInput, line, "expected two integers, got %q", text)
	}
	u, err := parseVertex(fields[0], line)
	if err != nil {
		return graph.Edge{}, err
	}
	v, err := parseVertex(fields[1], line)
	if err != nil {
		return graph.Edge{}, err
	}
	return graph.Edge{U: u, V: v}, nil
}

func parseVertex(s string, line int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.NewAt(errors.ErrCodeMalformedInput, line, "vertex %q is not an integer", s)
	}
	if v < 1 {
		return 0, errors.NewAt(errors.ErrCodeMalformedInput, line, "vertex ids must be positive, got %d", v)
	}
	return v, nil
}

// ImportEdgeList reads the edge-list file at path.
func ImportEdgeList(path string) (*EdgeList, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	el, err := ReadEdgeList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return el, nil
}

// ReadGraph parses an edge list from r and builds its graph.
func ReadGraph(r io.Reader) (*graph.Graph, error) {
	el, err := ReadEdgeList(r)
	if err != nil {
		return nil, err
	}
	return el.Graph(), nil
}

// ImportGraph reads the edge-list file at path and builds its graph.
func ImportGraph(path string) (*graph.Graph, error) {
	el, err := ImportEdgeList(path)
	if err != nil {
		return nil, err
	}
	return el.Graph(), nil
}
