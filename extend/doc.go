// Package extend implements local path extension on directed graphs:
// given a vertex at the end of a known simple path, decide from nearby
// topology whether the path can be extended unambiguously, and walk it
// until it meets a dead end, a branching point, a cycle, or a length cap.
//
// What:
//
//   - LookAhead: bounded-depth reachability probe — "does a walk of at
//     least depthLimit vertices extend from here in direction dir?"
//   - TrueBranches / Successor / Predecessor: classify a vertex's
//     neighbourhood in one direction, ignoring branches that die out
//     within trimLen vertices (short spurious "tips").
//   - ExtendPathBySingleVertex: append the one legal next vertex to a
//     Path, guarding against merge points in the opposite direction.
//   - ExtendPath: the iterative walker — repeat single steps, detect
//     cycles with a visited set, honor an optional length cap, and report
//     one of eight outcome codes.
//   - Path: the double-ended vertex sequence the walker mutates.
//
// Why:
//   - Graphs built from noisy sequencing data (de Bruijn-style assembly
//     graphs) are riddled with short dead-end branches; deciding what
//     counts as a *true* junction requires looking a few vertices ahead.
//   - Repeatedly extending a seed path in both directions yields the
//     maximal unambiguous (unitig-style) path through such a graph.
//
// Key Types & Constants:
//
//   - Direction: Forward (outgoing edges) or Reverse (incoming edges);
//     every operation is direction-symmetric.
//   - Graph: the two-method neighbour-enumeration capability the engine
//     consumes; core.Digraph satisfies it.
//   - SingleExtensionResult: SingleDeadEnd, SingleBranchingPoint,
//     SingleExtended.
//   - PathExtensionResult: DeadEnd, BranchingPoint, Cycle, LengthLimit and
//     their ExtendedTo* counterparts; Extended() reports whether the path
//     grew.
//   - Option: WithTrimLen, WithMaxLen, WithVisited functional options.
//
// Complexity:
//
//   - LookAhead: worst-case exponential in depthLimit for highly branched
//     neighbourhoods (no memoization across sibling branches); depthLimit
//     is the trimming threshold and expected to be small.
//   - ExtendPath: O(steps · neighbourhood classification cost).
//   - Memory: O(path length) for the visited set; LookAhead's local
//     visited set is discarded per probe.
//
// Errors:
//
//   - ErrGraphNil     graph capability is nil
//   - ErrEmptyPath    path has no vertices
//   - ErrBadTrimLen   negative trim length
//   - ErrBadMaxLen    negative length cap
//   - graph errors    wrapped from neighbour enumeration
//
// Functions:
//
//   - LookAhead(g, vertex, dir, depthLimit) (bool, error)
//   - TrueBranches(g, vertex, dir, trimLen) ([]string, error)
//   - Successor(g, vertex, trimLen) (SingleExtensionResult, string, error)
//   - Predecessor(g, vertex, trimLen) (SingleExtensionResult, string, error)
//   - ExtendPathBySingleVertex(g, path, dir, trimLen) (SingleExtensionResult, error)
//   - ExtendPath(g, path, dir, opts...) (PathExtensionResult, error)
package extend
