// Package report formats analysis results and writes them to files.
//
// A [Report] wraps one analysis value object (degree, adjacency, sparse,
// traversal or component report) with a little provenance: the session that
// produced it, the source file and a timestamp. [Write] encodes it in one of
// three formats:
//
//   - text: the line-oriented layouts of the original menu program
//   - json: an indented envelope with the provenance fields and the data
//   - yaml: the same envelope as YAML
//
// Text output lists vertices in ascending order. Traversal reports include
// every vertex of the graph; vertices the traversal did not reach are
// written with "None" for parent and level.
//
// # Default File Names
//
// Each [Kind] has a default output file name (graph_info.txt,
// bfs_tree.txt, ...). [Filename] swaps the extension for json and yaml.
package report
