// Package builder: shape constructors.
//
// Contract shared by every shape:
//   - Validate parameter domain early (fail fast, no work on invalid input).
//   - Emit edges in stable ascending order for deterministic fixtures.
//   - Return only sentinel or wrapped core errors; never panic at runtime.
package builder

import (
	"fmt"

	"github.com/katalvlaran/unipath/core"
)

// File-local constants (no magic numbers; stable shape tags for context).
const (
	shapeChain  = "Chain"
	shapeRing   = "Ring"
	shapeFork   = "Fork"
	shapeTip    = "Tip"
	shapeBubble = "Bubble"

	minChainNodes = 2
	minRingNodes  = 2
	minForkArms   = 1
	minTipNodes   = 1
)

// Chain returns a Constructor that builds the linear chain
// ids[0]→ids[1]→…→ids[n-1]. Requires n ≥ 2 distinct IDs.
func Chain(ids ...string) Constructor {
	return func(g *core.Digraph) error {
		if len(ids) < minChainNodes {
			return tooFew(shapeChain, len(ids), minChainNodes)
		}
		if err := requireDistinct(shapeChain, ids); err != nil {
			return err
		}
		for i := 1; i < len(ids); i++ {
			if err := addEdge(shapeChain, g, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Ring returns a Constructor that builds the directed cycle
// ids[0]→ids[1]→…→ids[n-1]→ids[0]. Requires n ≥ 2 distinct IDs
// (a one-vertex ring is a self-loop; build it with core.WithLoops and
// AddEdge directly).
func Ring(ids ...string) Constructor {
	return func(g *core.Digraph) error {
		if len(ids) < minRingNodes {
			return tooFew(shapeRing, len(ids), minRingNodes)
		}
		if err := requireDistinct(shapeRing, ids); err != nil {
			return err
		}
		for i := range ids {
			if err := addEdge(shapeRing, g, ids[i], ids[(i+1)%len(ids)]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Fork returns a Constructor that adds one outgoing edge root→b for every
// branch b — the junction shape. Requires ≥ 1 branch; branches must be
// distinct from each other and from root.
func Fork(root string, branches ...string) Constructor {
	return func(g *core.Digraph) error {
		if len(branches) < minForkArms {
			return tooFew(shapeFork, len(branches), minForkArms)
		}
		if err := requireDistinct(shapeFork, append([]string{root}, branches...)); err != nil {
			return err
		}
		for _, b := range branches {
			if err := addEdge(shapeFork, g, root, b); err != nil {
				return err
			}
		}

		return nil
	}
}

// Tip returns a Constructor that hangs the spur chain from→ids[0]→ids[1]→…
// off an anchor vertex — the trimmable-noise shape. Requires ≥ 1 spur ID;
// the anchor may already exist in the graph.
func Tip(from string, ids ...string) Constructor {
	return func(g *core.Digraph) error {
		if len(ids) < minTipNodes {
			return tooFew(shapeTip, len(ids), minTipNodes)
		}
		if err := requireDistinct(shapeTip, append([]string{from}, ids...)); err != nil {
			return err
		}
		prev := from
		for _, id := range ids {
			if err := addEdge(shapeTip, g, prev, id); err != nil {
				return err
			}
			prev = id
		}

		return nil
	}
}

// Bubble returns a Constructor that builds two parallel arms
// from→left…→to and from→right…→to — the classic assembly-bubble shape.
// An empty arm becomes a direct from→to edge, which needs core.WithMultiEdges
// when the other arm is empty too.
func Bubble(from, to string, left, right []string) Constructor {
	return func(g *core.Digraph) error {
		all := append([]string{from, to}, left...)
		all = append(all, right...)
		if err := requireDistinct(shapeBubble, all); err != nil {
			return err
		}
		if err := buildArm(g, from, to, left); err != nil {
			return err
		}

		return buildArm(g, from, to, right)
	}
}

// buildArm emits one bubble arm from→arm…→to in stable order.
func buildArm(g *core.Digraph, from, to string, arm []string) error {
	prev := from
	for _, id := range arm {
		if err := addEdge(shapeBubble, g, prev, id); err != nil {
			return err
		}
		prev = id
	}

	return addEdge(shapeBubble, g, prev, to)
}

// tooFew builds an ErrTooFewVertices with shape context.
func tooFew(shape string, got, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", shape, got, min, ErrTooFewVertices)
}
