// Package analysis computes structural reports over a [graph.Graph].
//
// Every function here is a pure read of the graph: results are computed
// fresh on each call and the graph is never modified, so a failing report
// cannot corrupt the loaded state.
//
// # Traversals
//
// [BFS] and [DFS] build a spanning tree of the component reachable from a
// start vertex, recording a parent and a level for each visited vertex.
// Both also report a "diameter", which is an eccentricity estimate from the
// start vertex rather than the graph-theoretic diameter. The two modes
// define it differently:
//
//   - BFS: the level of the last vertex visited.
//   - DFS: the largest level of any visited vertex.
//
// Downstream reports depend on exactly these definitions.
//
// A start vertex that does not appear in the graph is treated as an
// isolated vertex (only it is visited, diameter 0) unless [WithStrict] is
// given, in which case the traversal fails with UNKNOWN_START_VERTEX.
//
// # Components
//
// [Components] partitions every vertex into connected components. Seeds
// are taken in ascending id order, so component order is stable.
//
// # Views
//
// [Degrees], [AdjacencyList] and [SparseAdjacency] are read-only
// projections of the neighbor sets. The sparse view expresses neighbors as
// 1-indexed positions in the ascending vertex order (the column indices of
// a sparse adjacency matrix), not as raw ids.
//
// Statistics over an empty graph are undefined; such requests fail with
// EMPTY_GRAPH.
package analysis
