package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/grafo/pkg/analysis"
	"github.com/matzehuels/grafo/pkg/errors"
)

// Kind identifies which analysis a report holds.
type Kind string

// Report kinds, one per menu entry of the original tool.
const (
	KindInfo       Kind = "info"
	KindSparse     Kind = "sparse"
	KindAdjacency  Kind = "adjacency"
	KindBFS        Kind = "bfs"
	KindDFS        Kind = "dfs"
	KindComponents Kind = "components"
)

// Kinds lists every report kind in menu order.
var Kinds = []Kind{KindInfo, KindSparse, KindAdjacency, KindBFS, KindDFS, KindComponents}

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

var defaultFilenames = map[Kind]string{
	KindInfo:       "graph_info.txt",
	KindSparse:     "sparse_adjacency_matrix.txt",
	KindAdjacency:  "adjacency_list.txt",
	KindBFS:        "bfs_tree.txt",
	KindDFS:        "dfs_tree.txt",
	KindComponents: "connected_components.txt",
}

// DefaultFilename returns the file name the original tool used for kind.
func DefaultFilename(kind Kind) string {
	return defaultFilenames[kind]
}

// Filename returns name with its extension adjusted to format.
// Text output keeps name unchanged.
func Filename(name, format string) string {
	switch format {
	case FormatJSON, FormatYAML:
		return strings.TrimSuffix(name, filepath.Ext(name)) + "." + format
	default:
		return name
	}
}

// KindForMode maps a traversal mode to its report kind.
func KindForMode(m analysis.Mode) Kind {
	if m == analysis.ModeDFS {
		return KindDFS
	}
	return KindBFS
}

// Report is one analysis result with provenance.
// Data holds one of the *analysis.XxxReport value objects.
type Report struct {
	Kind        Kind      `json:"report" yaml:"report"`
	Session     string    `json:"session,omitempty" yaml:"session,omitempty"`
	Source      string    `json:"source,omitempty" yaml:"source,omitempty"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Data        any       `json:"data" yaml:"data"`
}

// New wraps data as a report of the given kind stamped with the current time.
func New(kind Kind, data any) *Report {
	return &Report{Kind: kind, GeneratedAt: time.Now().UTC(), Data: data}
}

// Write encodes r to w in the given format.
func Write(w io.Writer, format string, r *Report) error {
	switch format {
	case FormatText, "":
		return writeText(w, r.Data)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.ValidateFormat(format, Formats)
	}
}

// WriteFile writes r to path, creating parent directories as needed.
func WriteFile(path, format string, r *Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, format, r); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
