// File: methods_adjacent.go
// Role: Neighborhood APIs (OutNeighbors, InNeighbors, degrees, Vertices).
// Determinism:
//   - OutNeighbors()/InNeighbors() return unique IDs sorted lex asc.
//   - Vertices() returns IDs sorted lex asc.
// Concurrency:
//   - All operations hold the read lock for a consistent snapshot.

package core

import "sort"

// OutNeighbors returns the unique vertex IDs reachable from id by one
// outgoing edge, sorted lexicographically ascending. Parallel edges are
// collapsed; a self-loop contributes id itself once.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(d log d) for d distinct out-neighbours.
func (g *Digraph) OutNeighbors(id string) ([]string, error) {
	return g.neighborIDs(id, true)
}

// InNeighbors returns the unique vertex IDs with one directed edge into id,
// sorted lexicographically ascending. Mirror of OutNeighbors.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(d log d) for d distinct in-neighbours.
func (g *Digraph) InNeighbors(id string) ([]string, error) {
	return g.neighborIDs(id, false)
}

// neighborIDs collects one adjacency direction for id as a fresh sorted slice.
func (g *Digraph) neighborIDs(id string, outgoing bool) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	bucket := g.in[id]
	if outgoing {
		bucket = g.out[id]
	}

	// Fresh buffer: callers may retain and mutate safely.
	ids := make([]string, 0, len(bucket))
	for nb := range bucket {
		ids = append(ids, nb)
	}
	// Sort to ensure reproducible enumeration
	sort.Strings(ids)

	return ids, nil
}

// OutDegree returns the number of outgoing edges of id, counting multiplicity.
// Errors as OutNeighbors. Complexity: O(d).
func (g *Digraph) OutDegree(id string) (int, error) {
	return g.degree(id, true)
}

// InDegree returns the number of incoming edges of id, counting multiplicity.
// Errors as InNeighbors. Complexity: O(d).
func (g *Digraph) InDegree(id string) (int, error) {
	return g.degree(id, false)
}

// degree sums multiplicities over one adjacency direction of id.
func (g *Digraph) degree(id string, outgoing bool) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	bucket := g.in[id]
	if outgoing {
		bucket = g.out[id]
	}

	total := 0
	for _, mult := range bucket {
		total += mult
	}

	return total, nil
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// The slice is freshly allocated. Complexity: O(V log V).
func (g *Digraph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
