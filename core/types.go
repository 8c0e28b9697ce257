// Package core defines the Digraph type and provides thread-safe primitives
// for building, querying, and cloning directed multigraphs.
//
// This file declares the Digraph struct, Option, sentinel errors, and the
// NewDigraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core digraph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID was the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when
	// multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Option configures behavior of a Digraph before creation.
type Option func(g *Digraph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() Option {
	return func(g *Digraph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same ordered pair of vertices.
func WithMultiEdges() Option {
	return func(g *Digraph) { g.allowMulti = true }
}

// Digraph is the core in-memory directed multigraph.
//
// Adjacency is stored twice: out[from][to] and in[to][from], each holding the
// multiplicity of the directed edge from→to. Mirroring keeps incoming
// enumeration as cheap as outgoing, which bidirectional traversal engines
// rely on. mu guards all fields.
type Digraph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool // allow self-loops
	allowMulti bool // allow parallel edges

	// Storage
	edgeCount int                       // total edges, counting multiplicity
	vertices  map[string]struct{}       // vertex ID → presence
	out       map[string]map[string]int // from → to → multiplicity
	in        map[string]map[string]int // to → from → multiplicity
}

// NewDigraph creates an empty Digraph with the given options.
// By default, self-loops and parallel edges are rejected.
// Complexity: O(1)
func NewDigraph(opts ...Option) *Digraph {
	g := &Digraph{
		vertices: make(map[string]struct{}),
		out:      make(map[string]map[string]int),
		in:       make(map[string]map[string]int),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted by policy.
// Complexity: O(1)
func (g *Digraph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted by policy.
// Complexity: O(1)
func (g *Digraph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}
