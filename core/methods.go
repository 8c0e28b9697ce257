// Package core: thread-safe Digraph mutators and membership queries.
//
// All operations here are O(1) amortized. Adjacency is a pair of nested
// maps (out[from][to] and in[to][from]) holding edge multiplicities, so
// insertion, deletion, and existence checks are constant-time; the two
// indexes are mutated together under the single write lock and never
// disagree.
package core

// AddVertex inserts a vertex with the given ID into the Digraph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Digraph) AddVertex(id string) error {
	// Validate input: empty IDs are not allowed
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Digraph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// AddEdge inserts a directed edge from→to, creating missing endpoints
// automatically (idempotent vertex insertion).
//
// Policy:
//   - from == to requires WithLoops, else ErrLoopNotAllowed.
//   - an existing from→to edge requires WithMultiEdges to duplicate,
//     else ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Digraph) AddEdge(from, to string) error {
	// 1. Validate endpoint IDs
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	// 2. Enforce loop policy before taking the lock (flags are immutable)
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3. Auto-create endpoints so fixtures can be built edge-first
	g.ensureVertex(from)
	g.ensureVertex(to)

	// 4. Enforce multi-edge policy
	if g.out[from][to] > 0 && !g.allowMulti {
		return ErrMultiEdgeNotAllowed
	}

	// 5. Record the edge in both indexes
	g.out[from][to]++
	g.in[to][from]++
	g.edgeCount++

	return nil
}

// HasEdge reports whether at least one directed edge from→to exists.
// Complexity: O(1).
func (g *Digraph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.out[from][to] > 0
}

// RemoveEdge deletes one directed edge from→to (one unit of multiplicity).
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Digraph) RemoveEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.out[from][to] == 0 {
		return ErrEdgeNotFound
	}

	// Decrement both indexes together; prune empty buckets to keep
	// neighbour enumeration free of zero-multiplicity ghosts.
	g.out[from][to]--
	if g.out[from][to] == 0 {
		delete(g.out[from], to)
	}
	g.in[to][from]--
	if g.in[to][from] == 0 {
		delete(g.in[to], from)
	}
	g.edgeCount--

	return nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Digraph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of directed edges, counting multiplicity.
// Complexity: O(1).
func (g *Digraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Clone returns a deep copy of the Digraph: same flags, same vertices and
// edges, fully independent storage.
// Complexity: O(V + E).
func (g *Digraph) Clone() *Digraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Digraph{
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		edgeCount:  g.edgeCount,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		out:        make(map[string]map[string]int, len(g.out)),
		in:         make(map[string]map[string]int, len(g.in)),
	}
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	c.out = copyAdjacency(g.out)
	c.in = copyAdjacency(g.in)

	return c
}

// ensureVertex registers id and bootstraps its adjacency buckets.
// Must be called only under the write lock.
func (g *Digraph) ensureVertex(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = struct{}{}
	g.out[id] = make(map[string]int)
	g.in[id] = make(map[string]int)
}

// copyAdjacency deep-copies a nested multiplicity map.
func copyAdjacency(src map[string]map[string]int) map[string]map[string]int {
	dst := make(map[string]map[string]int, len(src))
	for from, bucket := range src {
		fresh := make(map[string]int, len(bucket))
		for to, mult := range bucket {
			fresh[to] = mult
		}
		dst[from] = fresh
	}

	return dst
}
