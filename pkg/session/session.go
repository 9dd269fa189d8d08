// Package session holds the graph currently loaded by a grafo process.
//
// A Session owns at most one graph at a time. Loading a new file replaces
// the graph wholesale; reports always read the current graph and never
// mutate it. Every session carries a random ID that is stamped on log lines
// and on json/yaml report envelopes so outputs from one run can be
// correlated.
//
// # Usage
//
//	sess := session.New()
//	sess.Replace(g, "graph.txt")
//
//	g, err := sess.Graph()
//	if err != nil {
//	    // errors.ErrCodeNoGraphLoaded
//	}
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/grafo/pkg/errors"
	"github.com/matzehuels/grafo/pkg/graph"
)

// Session stores the loaded graph and where it came from.
type Session struct {
	ID       string    `json:"id"`
	Source   string    `json:"source,omitempty"`
	LoadedAt time.Time `json:"loaded_at,omitempty"`

	graph *graph.Graph
	now   func() time.Time
}

// New creates an empty session with a fresh ID.
func New() *Session {
	return &Session{
		ID:  GenerateID(),
		now: time.Now,
	}
}

// GenerateID returns a short random session identifier.
func GenerateID() string {
	return uuid.NewString()[:8]
}

// Replace installs g as the current graph, discarding any previous one.
func (s *Session) Replace(g *graph.Graph, source string) {
	s.graph = g
	s.Source = source
	s.LoadedAt = s.now()
}

// Graph returns the current graph, or a NO_GRAPH_LOADED error when nothing
// has been loaded yet.
func (s *Session) Graph() (*graph.Graph, error) {
	if s.graph == nil {
		return nil, errors.New(errors.ErrCodeNoGraphLoaded, "no graph loaded; read a graph file first")
	}
	return s.graph, nil
}

// Loaded reports whether a graph has been installed.
func (s *Session) Loaded() bool {
	return s.graph != nil
}
