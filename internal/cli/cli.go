// Package cli implements the grafo command-line interface.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/grafo/pkg/buildinfo"
	"github.com/matzehuels/grafo/pkg/config"
	"github.com/matzehuels/grafo/pkg/observability"
	"github.com/matzehuels/grafo/pkg/pipeline"
	"github.com/matzehuels/grafo/pkg/report"
	"github.com/matzehuels/grafo/pkg/session"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for the binary and display.
const appName = "grafo"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger  *log.Logger
	Config  *config.Config
	Session *session.Session

	flags   globalFlags
	metrics *metricsHooks
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	verbose     bool
	configPath  string
	outputDir   string
	format      string
	strict      bool
	metricsFile string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		Config:  config.Default(),
		Session: session.New(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Grafo computes structural reports for undirected graphs",
		Long: `Grafo reads an undirected graph from an edge-list file and writes structural
reports: degree statistics, adjacency list and sparse adjacency matrix,
BFS/DFS spanning trees with their diameter, and connected components.

The input file starts with the vertex count followed by one "u v" edge per line.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.writeMetrics()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/grafo/config.toml)")
	pf.StringVar(&c.flags.outputDir, "output-dir", "", "directory for report files (default .)")
	pf.StringVarP(&c.flags.format, "format", "f", "", "report format: text (default), json, yaml")
	pf.BoolVar(&c.flags.strict, "strict", false, "fail when the start vertex is not in the graph")
	pf.StringVar(&c.flags.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	_ = root.RegisterFlagCompletionFunc("format", fixedCompletion(report.Formats...))

	for _, spec := range reportCommands {
		root.AddCommand(c.reportCommand(spec))
	}
	root.AddCommand(c.allCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.menuCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file, applies flag overrides and installs the
// logger on the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	if c.flags.verbose {
		c.SetLogLevel(LogDebug)
	}

	cfg, err := config.Load(c.flags.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		cfg.OutputDir = c.flags.outputDir
	}
	if flags.Changed("format") {
		cfg.Format = c.flags.format
	}
	if flags.Changed("strict") {
		cfg.StrictStart = c.flags.strict
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = c.flags.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("starting", "app", appName, "version", buildinfo.Short())
	if cfg.Path != "" {
		c.Logger.Debug("loaded config", "path", cfg.Path)
	}

	hooks := hookSet{newLogHooks(c.Logger)}
	if cfg.MetricsFile != "" {
		c.metrics = newMetricsHooks()
		hooks = append(hooks, c.metrics)
	}
	observability.SetAnalysisHooks(hooks)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// writeMetrics stores collected metrics when --metrics-file is set.
func (c *CLI) writeMetrics() error {
	if c.metrics == nil {
		return nil
	}
	if err := c.metrics.writeFile(c.Config.MetricsFile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	c.Logger.Debug("wrote metrics", "path", c.Config.MetricsFile)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner bound to the CLI session.
func (c *CLI) newRunner(logger *log.Logger) *pipeline.Runner {
	return pipeline.NewRunner(c.Session, logger)
}

// pipelineOptions builds report options from the merged configuration.
func (c *CLI) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Format:      c.Config.Format,
		OutputDir:   c.Config.OutputDir,
		Files:       c.Config.FileOverrides(),
		StrictStart: c.Config.StrictStart,
	}
}

// fixedCompletion completes a flag from a fixed list of values.
func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
