package extend

// TrueBranches returns the direct neighbours of vertex in direction dir
// that begin branches longer than trimLen vertices — the branches that
// survive tip trimming. Order follows the capability's enumeration order.
//
// Errors: ErrGraphNil, ErrBadTrimLen, or a wrapped graph error.
func TrueBranches(g Graph, vertex string, dir Direction, trimLen int) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if trimLen < 0 {
		return nil, ErrBadTrimLen
	}

	nbs, err := neighbors(g, vertex, dir)
	if err != nil {
		return nil, err
	}

	roots := make([]string, 0, len(nbs))
	for _, nb := range nbs {
		ok, err := LookAhead(g, nb, dir, trimLen)
		if err != nil {
			return nil, err
		}
		if ok {
			roots = append(roots, nb)
		}
	}

	return roots, nil
}

// Successor classifies the outgoing neighbourhood of vertex and, when the
// classification is SingleExtended, returns the unique next vertex.
//
//   - 0 neighbours → SingleDeadEnd.
//   - Exactly 1 physical neighbour → SingleExtended with that neighbour;
//     a lone edge is never treated as a trimmable tip, so no lookahead
//     probe runs even when trimLen > 0.
//   - 2+ neighbours → count branches surviving LookAhead(nb, dir, trimLen):
//     0 → SingleDeadEnd, 1 → SingleExtended with the survivor,
//     2+ → SingleBranchingPoint (short-circuits on the second survivor).
//
// The returned vertex is "" unless the result is SingleExtended.
func Successor(g Graph, vertex string, trimLen int) (SingleExtensionResult, string, error) {
	return classify(g, vertex, Forward, trimLen)
}

// Predecessor is the mirror of Successor over incoming neighbours.
func Predecessor(g Graph, vertex string, trimLen int) (SingleExtensionResult, string, error) {
	return classify(g, vertex, Reverse, trimLen)
}

// classify implements the shared Successor/Predecessor contract for one
// direction. It is a pure query: calling it twice with identical inputs
// yields identical results.
func classify(g Graph, vertex string, dir Direction, trimLen int) (SingleExtensionResult, string, error) {
	if g == nil {
		return SingleDeadEnd, "", ErrGraphNil
	}
	if trimLen < 0 {
		return SingleDeadEnd, "", ErrBadTrimLen
	}

	// 1. Enumerate the neighbourhood once
	nbs, err := neighbors(g, vertex, dir)
	if err != nil {
		return SingleDeadEnd, "", err
	}

	// 2. Zero neighbours: dead end
	if len(nbs) == 0 {
		return SingleDeadEnd, "", nil
	}

	// 3. A single physical neighbour is always the extension
	if len(nbs) == 1 {
		return SingleExtended, nbs[0], nil
	}

	// 4. Two or more: count true branches, stopping at the second
	trueBranches := 0
	survivor := ""
	for _, nb := range nbs {
		ok, err := LookAhead(g, nb, dir, trimLen)
		if err != nil {
			return SingleDeadEnd, "", err
		}
		if !ok {
			continue
		}
		trueBranches++
		if trueBranches >= 2 {
			return SingleBranchingPoint, "", nil
		}
		survivor = nb
	}

	// 5. All branches trimmed away, or exactly one survived
	if trueBranches == 0 {
		return SingleDeadEnd, "", nil
	}

	return SingleExtended, survivor, nil
}
