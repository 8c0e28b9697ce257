// Package unipath is a local path-extension toolkit for directed graphs —
// decide, from topology around a single vertex, whether a known simple path
// can be extended unambiguously, and walk it until a true stopping point.
//
// 🚀 What is unipath?
//
//	A small, thread-friendly, zero-dependency library built around one
//	question: "can I extend this path by one more vertex, and why not?"
//		• Core primitives: a directed multigraph with separate in/out adjacency
//		• Lookahead: bounded-depth reachability probes that survive cycles
//		• Branch classification: junction vs. dead end, with short-tip trimming
//		• Path walking: iterative extension with cycle detection and length caps
//		• Fixture builders: chains, rings, forks, tips and bubbles for tests
//
// ✨ Why choose unipath?
//
//   - Honest outcomes – eight result codes that always tell you whether the
//     path grew and what finally stopped it
//   - Noise-aware – short spurious branches ("tips", common in assembly-style
//     graphs) are ignored when deciding what counts as a real junction
//   - Representation-free – the engine sees graphs only through a two-method
//     neighbour-enumeration interface
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	core/    — the Digraph primitive: vertices, directed multi-edges, queries
//	extend/  — the engine: LookAhead, TrueBranches, Successor/Predecessor,
//	           ExtendPath and the Path container
//	builder/ — deterministic topology constructors for fixtures and demos
//
// Quick ASCII example:
//
//	    A──▶B──▶C──▶D
//	        │
//	        ▼
//	        t             (t is a one-vertex tip)
//
//	With trim length 1 the walk from A runs straight to D; with trim
//	length 0 it stops at B, a branching point.
//
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/unipath
package unipath
