// Package extend: the single-step extender and the iterative path walker.
//
// A vertex can only be stepped through in direction dir if it is not a
// confluence of several surviving branches from the opposite direction —
// extending through a merge point would silently drop the other incoming
// path. The walker repeats guarded single steps, detecting cycles with a
// monotonically growing visited set.
package extend

// singleVertexExtension decides the one legal next vertex from v in
// direction dir, or why there is none.
//
// Step 1 classifies the opposite-direction neighbourhood as a merge guard:
// only SingleBranchingPoint blocks the step. Its dead-end/extended outcomes
// are deliberately ignored — a vertex with no incoming edges (a fresh seed)
// is still a valid forward start.
// Step 2 classifies the travel direction and returns that verdict with the
// candidate vertex.
func singleVertexExtension(g Graph, v string, dir Direction, trimLen int) (SingleExtensionResult, string, error) {
	// 1. Merge guard on the opposite direction
	guard, _, err := classify(g, v, dir.Opposite(), trimLen)
	if err != nil {
		return SingleDeadEnd, "", err
	}
	if guard == SingleBranchingPoint {
		return SingleBranchingPoint, "", nil
	}

	// 2. Classify the travel direction
	return classify(g, v, dir, trimLen)
}

// ExtendPathBySingleVertex extends path by one vertex in direction dir if
// the extension is unambiguous: it reads the active endpoint (Back for
// Forward, Front for Reverse), runs the guarded single-step decision, and
// appends the candidate to the matching end on SingleExtended.
//
// The path is mutated only when the result is SingleExtended.
// Errors: ErrGraphNil, ErrEmptyPath, ErrBadTrimLen, or a wrapped graph error.
func ExtendPathBySingleVertex(g Graph, path *Path, dir Direction, trimLen int) (SingleExtensionResult, error) {
	if g == nil {
		return SingleDeadEnd, ErrGraphNil
	}
	if path == nil || path.Len() == 0 {
		return SingleDeadEnd, ErrEmptyPath
	}

	v := path.Back()
	if dir == Reverse {
		v = path.Front()
	}

	result, next, err := singleVertexExtension(g, v, dir, trimLen)
	if err != nil {
		return SingleDeadEnd, err
	}
	if result == SingleExtended {
		if dir == Forward {
			path.PushBack(next)
		} else {
			path.PushFront(next)
		}
	}

	return result, nil
}

// ExtendPath extends path in direction dir until a terminating condition:
// a dead end, a branching point (in either the travel direction or the
// opposite-direction merge guard), a cycle, or the WithMaxLen cap.
//
// Cycle handling: each newly appended endpoint is inserted into the visited
// set; finding it already present means the step closed a cycle, so that
// one vertex is popped back off before returning. The visited set is the
// caller's via WithVisited (it must already cover the path) or is seeded
// fresh from the path's contents; either way it only ever grows.
//
// The result partitions cleanly: ExtendedTo* codes iff the path grew.
// When the path already meets the cap, LengthLimit is returned without
// consulting the graph. The result value is unspecified when err != nil.
func ExtendPath(g Graph, path *Path, dir Direction, opts ...Option) (PathExtensionResult, error) {
	// 1. Validate inputs
	if g == nil {
		return DeadEnd, ErrGraphNil
	}
	if path == nil || path.Len() == 0 {
		return DeadEnd, ErrEmptyPath
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.TrimLen < 0 {
		return DeadEnd, ErrBadTrimLen
	}
	if o.MaxLen < 0 {
		return DeadEnd, ErrBadMaxLen
	}

	// 3. Already at the cap: report without touching the graph
	origLen := path.Len()
	if o.MaxLen > 0 && origLen >= o.MaxLen {
		return LengthLimit, nil
	}

	// 4. Seed cycle memory from the path unless the caller carries its own
	visited := o.Visited
	if visited == nil {
		visited = make(map[string]bool, origLen)
		for _, v := range path.Vertices() {
			visited[v] = true
		}
	}

	// 5. Step until blocked, cycled, or capped
	result := SingleExtended
	detectedCycle := false
	var err error
	for result == SingleExtended && !detectedCycle &&
		(o.MaxLen == 0 || path.Len() < o.MaxLen) {
		result, err = ExtendPathBySingleVertex(g, path, dir, o.TrimLen)
		if err != nil {
			return DeadEnd, err
		}
		if result != SingleExtended {
			continue
		}
		// Insert the fresh endpoint; a hit means this step closed a cycle.
		end := path.Back()
		if dir == Reverse {
			end = path.Front()
		}
		if visited[end] {
			detectedCycle = true
		} else {
			visited[end] = true
		}
	}

	// 6. The endpoint that closed the cycle is a repeat, so undo that one step
	if detectedCycle {
		if dir == Forward {
			path.PopBack()
		} else {
			path.PopFront()
		}
	}

	// 7. Map (grew?, last step, cycle) onto the eight-way taxonomy
	if path.Len() > origLen {
		switch {
		case detectedCycle:
			return ExtendedToCycle, nil
		case result == SingleDeadEnd:
			return ExtendedToDeadEnd, nil
		case result == SingleBranchingPoint:
			return ExtendedToBranchingPoint, nil
		default:
			// Still SingleExtended: the loop stopped only because of the cap.
			return ExtendedToLengthLimit, nil
		}
	}
	switch {
	case detectedCycle:
		return Cycle, nil
	case result == SingleDeadEnd:
		return DeadEnd, nil
	case result == SingleBranchingPoint:
		return BranchingPoint, nil
	default:
		return LengthLimit, nil
	}
}
