// Package render holds the visual output backends for grafo.
//
// Subpackages:
//
//   - nodelink: Graphviz node-link diagrams of the loaded graph, optionally
//     colored by connected component or highlighting a BFS/DFS tree.
//
// Text, JSON and YAML reports live in package report; this package only
// produces pictures.
package render
