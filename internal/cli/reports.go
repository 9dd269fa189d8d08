package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/grafo/pkg/pipeline"
	"github.com/matzehuels/grafo/pkg/report"
)

// reportCommandSpec describes one single-report subcommand.
type reportCommandSpec struct {
	kind    report.Kind
	use     string
	aliases []string
	short   string
}

// reportCommands lists the single-report subcommands in menu order.
var reportCommands = []reportCommandSpec{
	{report.KindInfo, "info", []string{"degrees"}, "Write vertex/edge counts and the degree of every vertex"},
	{report.KindSparse, "sparse", []string{"matrix"}, "Write the sparse adjacency matrix"},
	{report.KindAdjacency, "adjlist", []string{"adjacency"}, "Write the adjacency list"},
	{report.KindBFS, "bfs", nil, "Write the breadth-first search tree and its diameter"},
	{report.KindDFS, "dfs", nil, "Write the depth-first search tree and its diameter"},
	{report.KindComponents, "components", []string{"cc"}, "Write the connected components"},
}

func isTraversal(kind report.Kind) bool {
	return kind == report.KindBFS || kind == report.KindDFS
}

// reportCommand creates a subcommand that writes a single report.
func (c *CLI) reportCommand(spec reportCommandSpec) *cobra.Command {
	var output string
	var start int

	cmd := &cobra.Command{
		Use:     spec.use + " <file>",
		Aliases: spec.aliases,
		Short:   spec.short,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions()
			opts.Output = output
			opts.Start = start
			return c.runReports(cmd.Context(), args[0], []report.Kind{spec.kind}, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", fmt.Sprintf("output file (default %s)", report.DefaultFilename(spec.kind)))
	if isTraversal(spec.kind) {
		cmd.Flags().IntVarP(&start, "start", "s", 0, "start vertex (default: smallest vertex)")
	}

	return cmd
}

// allCommand creates the command that writes every report for a graph.
func (c *CLI) allCommand() *cobra.Command {
	var start int

	cmd := &cobra.Command{
		Use:   "all <file>",
		Short: "Write every report for a graph file",
		Long: `Write every report for a graph file into the output directory, using the
file names of the original menu program (graph_info.txt, bfs_tree.txt, ...).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions()
			opts.Start = start
			if err := c.runReports(cmd.Context(), args[0], report.Kinds, opts); err != nil {
				return err
			}
			printNextStep("Draw it", fmt.Sprintf("%s render %s", appName, args[0]))
			return nil
		},
	}

	cmd.Flags().IntVarP(&start, "start", "s", 0, "BFS/DFS start vertex (default: smallest vertex)")

	return cmd
}

// runReports loads path and writes the given reports.
func (c *CLI) runReports(ctx context.Context, path string, kinds []report.Kind, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	runner := c.newRunner(logger)

	prog := newProgress(logger)
	opts.Kinds = kinds
	res, err := runner.Execute(ctx, path, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d report(s)", len(res.Written)))

	printSuccess("Analyzed %s", path)
	printStats(res.Stats.VertexCount, res.Stats.EdgeCount)
	for _, w := range res.Written {
		printFile(w.Path)
	}
	return nil
}
