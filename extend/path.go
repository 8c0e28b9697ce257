package extend

import "strings"

// Path is an ordered, mutable, double-ended sequence of vertex IDs
// representing a simple walk. The engine appends to the end matching the
// travel direction and pops that same end when a step closes a cycle;
// everything else is up to the caller, who owns the Path's lifetime.
//
// Path is not safe for concurrent mutation; give each extension its own.
type Path struct {
	verts []string
}

// NewPath returns a Path seeded with the given vertices, front to back.
// The seed slice is copied.
func NewPath(seed ...string) *Path {
	p := &Path{verts: make([]string, len(seed))}
	copy(p.verts, seed)

	return p
}

// Len returns the number of vertices on the path.
func (p *Path) Len() int { return len(p.verts) }

// Front returns the first vertex, or "" when the path is empty.
func (p *Path) Front() string {
	if len(p.verts) == 0 {
		return ""
	}

	return p.verts[0]
}

// Back returns the last vertex, or "" when the path is empty.
func (p *Path) Back() string {
	if len(p.verts) == 0 {
		return ""
	}

	return p.verts[len(p.verts)-1]
}

// PushBack appends id after the last vertex.
func (p *Path) PushBack(id string) {
	p.verts = append(p.verts, id)
}

// PushFront prepends id before the first vertex.
// Costs O(n) — the walker takes at most one such step per extension.
func (p *Path) PushFront(id string) {
	p.verts = append(p.verts, "")
	copy(p.verts[1:], p.verts)
	p.verts[0] = id
}

// PopBack removes and returns the last vertex, or "" when empty.
func (p *Path) PopBack() string {
	if len(p.verts) == 0 {
		return ""
	}
	id := p.verts[len(p.verts)-1]
	p.verts = p.verts[:len(p.verts)-1]

	return id
}

// PopFront removes and returns the first vertex, or "" when empty.
func (p *Path) PopFront() string {
	if len(p.verts) == 0 {
		return ""
	}
	id := p.verts[0]
	p.verts = p.verts[1:]

	return id
}

// Vertices returns a fresh copy of the path's contents, front to back.
func (p *Path) Vertices() []string {
	out := make([]string, len(p.verts))
	copy(out, p.verts)

	return out
}

// Contains reports whether id is on the path. O(n) scan.
func (p *Path) Contains(id string) bool {
	for _, v := range p.verts {
		if v == id {
			return true
		}
	}

	return false
}

// String renders the path as "A→B→C".
func (p *Path) String() string {
	return strings.Join(p.verts, "→")
}
