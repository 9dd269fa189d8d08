// Package pkg provides the core libraries for grafo, a tool that computes
// structural reports for undirected graphs.
//
// # Overview
//
// The pkg directory is organized by stage:
//
//  1. [io] - Edge-list parsing with line-numbered diagnostics
//  2. [graph] - Adjacency-set graph store
//  3. [analysis] - Degrees, adjacency views, BFS/DFS trees, components
//  4. [report] - Text, JSON and YAML report encoding
//  5. [render] - Graphviz node-link diagrams
//  6. [pipeline] - Orchestration (load → compute → write)
//
// Supporting packages: [config] (TOML settings), [session] (the loaded
// graph), [errors] (coded errors), [observability] (hooks) and
// [buildinfo] (version stamping).
//
// # Architecture
//
//	edge-list file
//	     ↓
//	[io] package (parse declared count and edges)
//	     ↓
//	[graph] package (symmetric adjacency sets)
//	     ↓
//	[analysis] package (report value objects)
//	     ↓
//	[report] / [render] packages
//	     ↓
//	text/JSON/YAML files, DOT/SVG/PNG diagrams
//
// # Quick Start
//
//	g, err := io.ImportGraph("graph.txt")
//	if err != nil {
//	    return err
//	}
//	rep, err := analysis.TraversalReportFor(g, analysis.ModeBFS, 1)
//	if err != nil {
//	    return err
//	}
//	return report.WriteFile("bfs_tree.txt", report.FormatText, report.New(report.KindBFS, rep))
package pkg
