// Package extend defines the types, options, and error definitions for
// local path extension over a neighbour-enumeration capability.
package extend

import "errors"

// Sentinel errors for path-extension operations. A nil graph, an empty
// path, or a negative knob is a defect in the caller, signalled as an
// error rather than a panic.
var (
	// ErrGraphNil is returned when a nil Graph capability is passed.
	ErrGraphNil = errors.New("extend: graph is nil")

	// ErrEmptyPath is returned when the path to extend holds no vertices.
	ErrEmptyPath = errors.New("extend: path is empty")

	// ErrBadTrimLen is returned when a negative trim length is supplied.
	ErrBadTrimLen = errors.New("extend: trim length must be non-negative")

	// ErrBadMaxLen is returned when a negative length cap is supplied.
	ErrBadMaxLen = errors.New("extend: max length must be non-negative")
)

// Graph is the capability the engine consumes: enumerate, for any vertex,
// its outgoing and its incoming neighbour IDs. Enumeration order is
// implementation-defined but must be stable while an extension call runs.
// The engine never mutates the graph; *core.Digraph satisfies Graph.
type Graph interface {
	// OutNeighbors returns the vertices reachable from id by one outgoing edge.
	OutNeighbors(id string) ([]string, error)

	// InNeighbors returns the vertices with one directed edge into id.
	InNeighbors(id string) ([]string, error)
}

// Direction selects which adjacency an operation follows.
type Direction uint8

const (
	// Forward follows outgoing edges.
	Forward Direction = iota

	// Reverse follows incoming edges.
	Reverse
)

// Opposite returns the mirrored direction.
func (d Direction) Opposite() Direction {
	if d == Forward {
		return Reverse
	}

	return Forward
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Forward {
		return "Forward"
	}

	return "Reverse"
}

// SingleExtensionResult is the outcome of attempting to extend a path by a
// single neighbouring vertex.
type SingleExtensionResult uint8

const (
	// SingleDeadEnd: no surviving branch to step onto.
	SingleDeadEnd SingleExtensionResult = iota

	// SingleBranchingPoint: two or more surviving branches (ambiguous step),
	// in either the travel direction or the opposite-direction merge guard.
	SingleBranchingPoint

	// SingleExtended: exactly one legal next vertex.
	SingleExtended
)

// String implements fmt.Stringer.
func (r SingleExtensionResult) String() string {
	switch r {
	case SingleDeadEnd:
		return "SingleDeadEnd"
	case SingleBranchingPoint:
		return "SingleBranchingPoint"
	case SingleExtended:
		return "SingleExtended"
	default:
		return "SingleExtensionResult(?)"
	}
}

// PathExtensionResult is the outcome of an ExtendPath call. The first four
// codes mean the path is unchanged; the ExtendedTo* codes mean it grew by
// at least one vertex before stopping. Exactly one code is returned per
// call — "grew" and "unchanged" partition the outcome space.
type PathExtensionResult uint8

const (
	// DeadEnd: path could not be extended because of a dead end.
	DeadEnd PathExtensionResult = iota

	// BranchingPoint: path could not be extended because of a branching point.
	BranchingPoint

	// Cycle: the very first step would have closed a cycle.
	Cycle

	// LengthLimit: the path already met the caller's length cap.
	LengthLimit

	// ExtendedToDeadEnd: path was extended up to a dead end.
	ExtendedToDeadEnd

	// ExtendedToBranchingPoint: path was extended up to a branching point.
	ExtendedToBranchingPoint

	// ExtendedToCycle: path was extended until the next step closed a cycle.
	ExtendedToCycle

	// ExtendedToLengthLimit: path was extended up to the caller's length cap.
	ExtendedToLengthLimit
)

// Extended reports whether the path grew by one or more vertices.
func (r PathExtensionResult) Extended() bool {
	switch r {
	case DeadEnd, BranchingPoint, Cycle, LengthLimit:
		return false
	default:
		return true
	}
}

// String implements fmt.Stringer.
func (r PathExtensionResult) String() string {
	switch r {
	case DeadEnd:
		return "DeadEnd"
	case BranchingPoint:
		return "BranchingPoint"
	case Cycle:
		return "Cycle"
	case LengthLimit:
		return "LengthLimit"
	case ExtendedToDeadEnd:
		return "ExtendedToDeadEnd"
	case ExtendedToBranchingPoint:
		return "ExtendedToBranchingPoint"
	case ExtendedToCycle:
		return "ExtendedToCycle"
	case ExtendedToLengthLimit:
		return "ExtendedToLengthLimit"
	default:
		return "PathExtensionResult(?)"
	}
}

// Option configures optional behavior of ExtendPath.
// Use with ExtendPath(g, path, dir, opts...).
type Option func(*Options)

// Options holds configurable parameters for an ExtendPath call.
type Options struct {
	// TrimLen is the tip-trimming threshold: when classifying a vertex with
	// two or more neighbours, branches that die out within TrimLen vertices
	// are ignored. Default 0 (every physical branch counts).
	TrimLen int

	// MaxLen, if > 0, stops extension once the path reaches this many
	// vertices. A value of 0 explicitly disables the cap.
	MaxLen int

	// Visited, if non-nil, is the caller's cycle-memory set: it must already
	// contain every vertex on the path, grows monotonically during the call,
	// and can be retained across calls to forbid re-walking earlier ground.
	// When nil, a fresh set is seeded from the path's current contents.
	Visited map[string]bool
}

// DefaultOptions returns an Options struct with:
//   - no tip trimming (TrimLen = 0)
//   - no length cap (MaxLen = 0)
//   - visited set seeded from the path (Visited = nil)
func DefaultOptions() Options {
	return Options{
		TrimLen: 0,
		MaxLen:  0,
		Visited: nil,
	}
}

// WithTrimLen returns an Option that sets the tip-trimming threshold.
func WithTrimLen(n int) Option {
	return func(o *Options) {
		o.TrimLen = n
	}
}

// WithMaxLen returns an Option that caps the path length at n vertices.
// A cap of 0 disables the limit.
func WithMaxLen(n int) Option {
	return func(o *Options) {
		o.MaxLen = n
	}
}

// WithVisited returns an Option that installs the caller's visited set.
// The set must contain at least every vertex currently on the path.
// Passing nil has no effect (a fresh set is seeded from the path).
func WithVisited(visited map[string]bool) Option {
	return func(o *Options) {
		if visited != nil {
			o.Visited = visited
		}
	}
}
