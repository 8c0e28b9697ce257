package extend

import "fmt"

// LookAhead reports whether at least one walk of depthLimit or more
// vertices extends from vertex in direction dir (the starting vertex
// itself is not counted). Implemented as a bounded depth-first search
// with a per-call visited set, so it terminates on cyclic graphs.
//
// A depthLimit of zero (or less) is trivially satisfiable and returns
// true without consulting the graph.
//
// The visited set is local to this probe and is never shared with the
// walker's cycle-memory set; the two have different lifetimes.
// Worst-case cost is exponential in depthLimit for highly branched
// neighbourhoods; keep depthLimit (the trimming threshold) small.
func LookAhead(g Graph, vertex string, dir Direction, depthLimit int) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if depthLimit <= 0 {
		return true, nil
	}

	visited := make(map[string]bool, depthLimit)

	return lookAhead(g, vertex, dir, 0, depthLimit, visited)
}

// lookAhead is the recursive body of LookAhead: u sits at the given depth,
// and the probe succeeds as soon as any branch reaches depthLimit.
// Vertices already seen within this probe are never re-entered.
func lookAhead(g Graph, u string, dir Direction, depth, depthLimit int, visited map[string]bool) (bool, error) {
	// 1. Mark u seen within this probe
	visited[u] = true

	// 2. Deep enough: success
	if depth == depthLimit {
		return true, nil
	}

	// 3. Descend into unvisited neighbours, first success wins
	nbs, err := neighbors(g, u, dir)
	if err != nil {
		return false, err
	}
	for _, v := range nbs {
		if visited[v] {
			continue
		}
		ok, err := lookAhead(g, v, dir, depth+1, depthLimit, visited)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}

	return false, nil
}

// neighbors enumerates id's neighbourhood in the given direction,
// wrapping capability errors with call context.
func neighbors(g Graph, id string, dir Direction) ([]string, error) {
	var (
		nbs []string
		err error
	)
	if dir == Forward {
		nbs, err = g.OutNeighbors(id)
	} else {
		nbs, err = g.InNeighbors(id)
	}
	if err != nil {
		return nil, fmt.Errorf("extend: %s neighbors(%q): %w", dir, id, err)
	}

	return nbs, nil
}
