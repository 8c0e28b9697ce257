// Package builder: the Build orchestrator and the Constructor contract.
//
// Design contract (strict):
//   - One orchestrator: Build(gopts, cons...). Creates g, runs cons in order.
//   - Constructors validate parameters early and return sentinel errors; no panics.
//   - Determinism: same options and constructor order ⇒ identical graphs.
package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/unipath/core"
)

// Sentinel errors for fixture construction.
var (
	// ErrTooFewVertices indicates a shape received fewer IDs than it needs.
	ErrTooFewVertices = errors.New("builder: too few vertices for shape")

	// ErrDuplicateVertex indicates a shape received the same ID twice where
	// distinct vertices are required.
	ErrDuplicateVertex = errors.New("builder: duplicate vertex ID in shape")

	// ErrConstructFailed indicates Build received a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// Constructor applies a deterministic mutation to a Digraph. Constructors
// MUST validate early, return sentinel errors, and respect the graph's
// policy flags (loops / multi-edges) without silent degrade.
type Constructor func(g *core.Digraph) error

// Build creates a new core.Digraph with the given core options and applies
// all constructors in order. The first constructor error is wrapped with
// the context "Build: %w" and returned immediately; no partial cleanup is
// attempted.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(len(cons)).
func Build(gopts []core.Option, cons ...Constructor) (*core.Digraph, error) {
	g := core.NewDigraph(gopts...)

	for i, fn := range cons {
		// Reject a nil constructor up front instead of panicking later.
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// requireDistinct validates that ids are pairwise distinct, tagging errors
// with the shape name for context.
func requireDistinct(shape string, ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%s: vertex %q repeated: %w", shape, id, ErrDuplicateVertex)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// addEdge inserts one edge, wrapping core errors with shape context.
func addEdge(shape string, g *core.Digraph, from, to string) error {
	if err := g.AddEdge(from, to); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", shape, from, to, err)
	}

	return nil
}
