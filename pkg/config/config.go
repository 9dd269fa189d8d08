// Package config loads grafo's optional TOML configuration file.
//
// The file is looked up at an explicit path, else
// $XDG_CONFIG_HOME/grafo/config.toml, else ~/.config/grafo/config.toml.
// A missing file at the default location is not an error; the zero
// configuration plus [Default] values apply.
//
// Example:
//
//	output_dir   = "reports"
//	format       = "text"
//	strict_start = false
//	metrics_file = "/var/lib/node_exporter/grafo.prom"
//
//	[files]
//	info = "summary.txt"
//	bfs  = "trees/bfs.txt"
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/grafo/pkg/errors"
	"github.com/matzehuels/grafo/pkg/report"
)

const (
	appName  = "grafo"
	fileName = "config.toml"
)

// Config holds settings shared by every command.
type Config struct {
	OutputDir   string            `toml:"output_dir"`
	Format      string            `toml:"format"`
	StrictStart bool              `toml:"strict_start"`
	MetricsFile string            `toml:"metrics_file"`
	Files       map[string]string `toml:"files"`

	// Path is the file the values were read from; empty if none.
	Path string `toml:"-"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		OutputDir: ".",
		Format:    report.FormatText,
		Files:     map[string]string{},
	}
}

// DefaultPath returns the XDG config file location (~/.config/grafo/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the configuration at path. With an empty path the default
// location is tried and silently skipped if absent; an explicit path that
// does not exist fails with FILE_NOT_FOUND.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			if explicit {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
			}
			return Default(), nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if cfg.Files == nil {
		cfg.Files = map[string]string{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the format and every per-report file name.
func (c *Config) Validate() error {
	if err := errors.ValidateFormat(c.Format, report.Formats); err != nil {
		return err
	}
	for _, kind := range sortedKeys(c.Files) {
		if !slices.Contains(report.Kinds, report.Kind(kind)) {
			return errors.New(errors.ErrCodeInvalidConfig, "[files] has unknown report %q", kind)
		}
		if err := errors.ValidateReportFilename(c.Files[kind]); err != nil {
			return err
		}
	}
	return nil
}

// FileOverrides returns the [files] table keyed by report kind.
func (c *Config) FileOverrides() map[report.Kind]string {
	out := make(map[report.Kind]string, len(c.Files))
	for k, v := range c.Files {
		out[report.Kind(k)] = v
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
