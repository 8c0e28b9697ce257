// Package builder provides deterministic topology constructors for
// assembling core.Digraph fixtures: chains, rings, forks, tips and bubbles —
// the shapes path-extension engines are tested and demonstrated against.
//
// What:
//
//   - Constructor: a deterministic graph mutation applied by Build.
//   - Build(gopts, cons...): creates a Digraph with the given core options
//     and applies all constructors in order, wrapping the first error.
//   - Chain(ids...): linear chain ids[0]→ids[1]→…
//   - Ring(ids...): directed cycle closing back to ids[0].
//   - Fork(root, branches...): one outgoing edge from root per branch.
//   - Tip(from, ids...): a short spur chain hanging off an anchor vertex.
//   - Bubble(from, to, left, right): two parallel arms from→…→to.
//
// Why:
//   - Hand-building the same junction/spur/cycle shapes in every test is
//     noisy and error-prone; constructors compose into one readable call.
//   - Determinism: the same constructors in the same order always produce
//     the identical graph, so expected outputs stay stable.
//
// Errors:
//
//   - ErrTooFewVertices   a shape received fewer IDs than it needs
//   - ErrDuplicateVertex  a shape received the same ID twice
//   - ErrConstructFailed  a nil constructor was passed to Build
//   - core errors         wrapped from AddEdge (policy violations)
package builder
