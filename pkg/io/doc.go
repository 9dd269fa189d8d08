// Package io reads undirected graphs from edge-list files.
//
// # File Format
//
// The first line declares the expected number of vertices. Every further
// line holds one edge as two whitespace-separated integers:
//
//	5
//	1 2
//	2 3
//	3 1
//	4 4
//
// The declared count must be at least 1. It is kept on the loaded graph for
// reference but does not limit which ids may appear; vertices are exactly
// the ids referenced by edges. A file with a count and no edges is valid and
// yields an empty graph.
//
// Vertex ids must be positive. Self-loops and repeated edges are accepted
// (see package graph for how they are stored).
//
// # Errors
//
// Parse failures are *errors.Error values carrying the 1-based line number:
//
//   - INVALID_VERTEX_COUNT: the declared count is below 1
//   - MALFORMED_INPUT: a missing or non-integer count, or an edge line that
//     is not exactly two positive integers
//   - FILE_NOT_FOUND: [ImportEdgeList] could not open the path
//
// # Usage
//
//	g, err := io.ImportGraph("graph.txt")
//	if errors.Is(err, errors.ErrCodeMalformedInput) {
//	    fmt.Println("bad line", errors.GetLine(err))
//	}
package io
