// Package graph provides the in-memory store for undirected graphs loaded
// from edge lists.
//
// A [Graph] keeps one neighbor set per vertex. Vertices are implicit: an id
// exists as soon as an edge references it, and there is no way to add an
// isolated vertex. The store is built once with [Load] and is not mutated
// afterwards; loading a new file produces a new [Graph].
//
// # Edge Semantics
//
// Edges are unordered pairs. Because neighbors live in sets:
//
//   - Parallel edges collapse into a single adjacency relation.
//   - A self-loop (v, v) is stored once in v's own neighbor set.
//
// A self-loop counts as one edge in [Graph.EdgeCount] and contributes two
// to [Graph.Degree], so the handshake identity
//
//	sum(Degree(v) for v in Vertices()) == 2 * EdgeCount()
//
// holds whether or not the graph has loops.
//
// # Ordering
//
// [Graph.Vertices], [Graph.Neighbors] and [Graph.Edges] return ascending
// ids so that every report derived from them is reproducible.
//
// # Concurrency
//
// A loaded Graph is read-only and safe for concurrent readers.
package graph
