// Package core provides the Digraph primitive: a thread-safe, in-memory
// directed multigraph over string vertex IDs with separate outgoing and
// incoming adjacency.
//
// What:
//
//   - Digraph: vertices plus directed edges with multiplicity, guarded by a
//     single RWMutex. Construction-time policy flags control self-loops and
//     parallel edges.
//   - Mutators: AddVertex (idempotent), AddEdge (auto-creates endpoints),
//     RemoveEdge.
//   - Queries: HasVertex, HasEdge, Vertices, OutNeighbors, InNeighbors,
//     OutDegree, InDegree, VertexCount, EdgeCount, Clone.
//
// Why:
//   - Traversal engines that walk edges both ways (see unipath/extend) need
//     incoming adjacency to be as cheap as outgoing; Digraph mirrors every
//     edge into both indexes at insertion time.
//   - Deterministic enumeration: Vertices, OutNeighbors and InNeighbors
//     return IDs sorted lexicographically ascending, so algorithm output is
//     reproducible run to run.
//
// Concurrency:
//
//   - All reads take the read lock; all writes take the write lock.
//   - A Digraph that is no longer being mutated may be shared freely across
//     goroutines for reading.
//
// Complexity:
//
//   - Mutators and membership checks: O(1) amortized.
//   - OutNeighbors / InNeighbors: O(d log d) for d distinct neighbours.
//   - Vertices: O(V log V). Clone: O(V + E).
//
// Errors:
//
//   - ErrEmptyVertexID        vertex ID is the empty string
//   - ErrVertexNotFound       requested vertex does not exist
//   - ErrEdgeNotFound         requested edge does not exist
//   - ErrLoopNotAllowed       self-loop when loops are disabled
//   - ErrMultiEdgeNotAllowed  parallel edge when multi-edges are disabled
package core
