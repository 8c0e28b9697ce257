package extend_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unipath/core"
	"github.com/katalvlaran/unipath/extend"
)

// buildChain creates a directed chain v0→v1→…→v(n-1).
func buildChain(t *testing.T, n int) *core.Digraph {
	t.Helper()
	g := core.NewDigraph()
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge("v"+strconv.Itoa(i), "v"+strconv.Itoa(i+1)))
	}

	return g
}

// buildRing creates a directed cycle over the given IDs.
func buildRing(t *testing.T, ids ...string) *core.Digraph {
	t.Helper()
	g := core.NewDigraph()
	for i := range ids {
		require.NoError(t, g.AddEdge(ids[i], ids[(i+1)%len(ids)]))
	}

	return g
}

func TestLookAhead_NilGraph(t *testing.T) {
	_, err := extend.LookAhead(nil, "A", extend.Forward, 1)
	assert.ErrorIs(t, err, extend.ErrGraphNil)
}

func TestLookAhead_ZeroDepthAlwaysTrue(t *testing.T) {
	g := core.NewDigraph()
	require.NoError(t, g.AddVertex("A"))

	ok, err := extend.LookAhead(g, "A", extend.Forward, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	// Zero depth never consults the graph, so even an unknown vertex passes.
	ok, err = extend.LookAhead(g, "ghost", extend.Reverse, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLookAhead_ChainDepthBoundary(t *testing.T) {
	// v0→v1→v2→v3: exactly 3 vertices extend beyond v0.
	g := buildChain(t, 4)

	for depth := 1; depth <= 3; depth++ {
		ok, err := extend.LookAhead(g, "v0", extend.Forward, depth)
		require.NoError(t, err)
		assert.True(t, ok, "depth %d should be reachable", depth)
	}

	ok, err := extend.LookAhead(g, "v0", extend.Forward, 4)
	require.NoError(t, err)
	assert.False(t, ok, "chain is too short for depth 4")
}

func TestLookAhead_ReverseMirrors(t *testing.T) {
	g := buildChain(t, 4)

	ok, err := extend.LookAhead(g, "v3", extend.Reverse, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = extend.LookAhead(g, "v3", extend.Reverse, 4)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = extend.LookAhead(g, "v0", extend.Reverse, 1)
	require.NoError(t, err)
	assert.False(t, ok, "v0 has no incoming edges")
}

func TestLookAhead_TerminatesOnCycle(t *testing.T) {
	g := buildRing(t, "A", "B", "C")

	// Any finite depth is reachable by going around the ring until the
	// local visited set blocks re-entry: 3 fresh vertices exist.
	ok, err := extend.LookAhead(g, "A", extend.Forward, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	// Probing deeper than the ring has fresh vertices must fail, not hang.
	ok, err = extend.LookAhead(g, "A", extend.Forward, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLookAhead_BranchyGraphFindsLongArm(t *testing.T) {
	// A fans out into one short arm and one long arm; the probe must find
	// the long one regardless of enumeration order.
	g := core.NewDigraph()
	require.NoError(t, g.AddEdge("A", "short"))
	require.NoError(t, g.AddEdge("A", "long1"))
	require.NoError(t, g.AddEdge("long1", "long2"))
	require.NoError(t, g.AddEdge("long2", "long3"))

	ok, err := extend.LookAhead(g, "A", extend.Forward, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = extend.LookAhead(g, "A", extend.Forward, 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLookAhead_RepeatedCallsIdentical(t *testing.T) {
	// The probe's visited set is per-call state; a second identical probe
	// must see a pristine graph.
	g := buildChain(t, 3)
	for i := 0; i < 3; i++ {
		ok, err := extend.LookAhead(g, "v0", extend.Forward, 2)
		require.NoError(t, err)
		assert.True(t, ok, "call %d diverged", i)
	}
}

func TestTrueBranches(t *testing.T) {
	// A → B (dead end) and A → C → D → E (long branch).
	g := core.NewDigraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("C", "D"))
	require.NoError(t, g.AddEdge("D", "E"))

	// With no trimming both branches are true.
	roots, err := extend.TrueBranches(g, "A", extend.Forward, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, roots)

	// Trimming at 1 removes the tip B.
	roots, err = extend.TrueBranches(g, "A", extend.Forward, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, roots)

	// Trimming past every branch removes them all.
	roots, err = extend.TrueBranches(g, "A", extend.Forward, 3)
	require.NoError(t, err)
	assert.Empty(t, roots)
}

func TestTrueBranches_Reverse(t *testing.T) {
	// B → X and chain E→D→C→X: incoming branches of X.
	g := core.NewDigraph()
	require.NoError(t, g.AddEdge("B", "X"))
	require.NoError(t, g.AddEdge("E", "D"))
	require.NoError(t, g.AddEdge("D", "C"))
	require.NoError(t, g.AddEdge("C", "X"))

	roots, err := extend.TrueBranches(g, "X", extend.Reverse, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, roots)
}

func TestTrueBranches_Errors(t *testing.T) {
	g := core.NewDigraph()
	require.NoError(t, g.AddVertex("A"))

	_, err := extend.TrueBranches(nil, "A", extend.Forward, 0)
	assert.ErrorIs(t, err, extend.ErrGraphNil)

	_, err = extend.TrueBranches(g, "A", extend.Forward, -1)
	assert.ErrorIs(t, err, extend.ErrBadTrimLen)

	_, err = extend.TrueBranches(g, "ghost", extend.Forward, 0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}
