// Package pipeline provides the load → analyze → write pipeline for grafo.
//
// Both the one-shot subcommands and the interactive menu go through a
// [Runner], so report selection, file naming and logging behave the same
// regardless of entry point.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: parse an edge-list file and install the graph in the session
//  2. Compute: build a report value object from the current graph
//  3. Write: encode the report as text, JSON or YAML to a file
//
// Diagrams take a separate Render stage producing DOT, SVG or PNG.
//
// # Usage
//
//	runner := pipeline.NewRunner(session.New(), logger)
//	result, err := runner.Execute(ctx, "graph.txt", pipeline.Options{
//	    Kinds:  report.Kinds,
//	    Format: report.FormatText,
//	})
//
// Run individual stages:
//
//	g, err := runner.Load(ctx, "graph.txt")
//	rep, err := runner.Compute(ctx, report.KindBFS, opts)
//	path, err := runner.Write(ctx, report.KindBFS, opts)
package pipeline

import (
	"path/filepath"
	"slices"
	"time"

	"github.com/matzehuels/grafo/pkg/errors"
	"github.com/matzehuels/grafo/pkg/report"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultFormat is the default report encoding.
	DefaultFormat = report.FormatText

	// DefaultOutputDir is the default directory for report files.
	DefaultOutputDir = "."
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures which reports are produced and where they go.
type Options struct {
	// Kinds selects the reports written by Execute.
	Kinds []report.Kind `json:"kinds,omitempty"`

	// Format is one of report.Formats.
	Format string `json:"format,omitempty"`

	// OutputDir is prepended to every report file name.
	OutputDir string `json:"output_dir,omitempty"`

	// Files overrides the default file name per report kind, relative to
	// OutputDir.
	Files map[report.Kind]string `json:"files,omitempty"`

	// Output is an exact destination used when a single report is written.
	// It bypasses OutputDir and Files.
	Output string `json:"output,omitempty"`

	// Start is the traversal start vertex. Zero selects the smallest vertex.
	Start int `json:"start,omitempty"`

	// StrictStart rejects a start vertex absent from the graph.
	StrictStart bool `json:"strict_start,omitempty"`

	validated bool `json:"-"`
}

// Result contains the outputs of an Execute run.
type Result struct {
	// Written lists each report file in the order it was produced.
	Written []Written

	// Stats contains timing and size information.
	Stats Stats
}

// Written is one report that reached disk.
type Written struct {
	Kind report.Kind
	Path string
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VertexCount int
	EdgeCount   int
	LoadTime    time.Duration
	ReportTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateKind checks that kind names a known report.
func ValidateKind(kind report.Kind) error {
	if !slices.Contains(report.Kinds, kind) {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown report %q", kind)
	}
	return nil
}

// ValidateKinds checks that all kinds are known.
func ValidateKinds(kinds []report.Kind) error {
	for _, k := range kinds {
		if err := ValidateKind(k); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if err := errors.ValidateFormat(o.Format, report.Formats); err != nil {
		return err
	}
	if err := ValidateKinds(o.Kinds); err != nil {
		return err
	}
	for kind, name := range o.Files {
		if err := ValidateKind(kind); err != nil {
			return err
		}
		if err := errors.ValidateReportFilename(name); err != nil {
			return err
		}
	}
	o.validated = true
	return nil
}

// Path returns the destination file for kind. An override from Files is
// used as given; default names get the extension of the chosen format.
func (o *Options) Path(kind report.Kind) string {
	if o.Output != "" {
		return o.Output
	}
	name, ok := o.Files[kind]
	if !ok {
		name = report.Filename(report.DefaultFilename(kind), o.format())
	}
	return filepath.Join(o.outputDir(), name)
}

func (o *Options) format() string {
	if o.Format == "" {
		return DefaultFormat
	}
	return o.Format
}

func (o *Options) outputDir() string {
	if o.OutputDir == "" {
		return DefaultOutputDir
	}
	return o.OutputDir
}
