package extend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unipath/core"
	"github.com/katalvlaran/unipath/extend"
)

func TestSuccessor_NoNeighbors(t *testing.T) {
	g := core.NewDigraph()
	require.NoError(t, g.AddVertex("A"))

	res, next, err := extend.Successor(g, "A", 0)
	require.NoError(t, err)
	assert.Equal(t, extend.SingleDeadEnd, res)
	assert.Equal(t, "", next)
}

func TestSuccessor_SingleNeighbor(t *testing.T) {
	g := core.NewDigraph()
	require.NoError(t, g.AddEdge("A", "B"))

	res, next, err := extend.Successor(g, "A", 0)
	require.NoError(t, err)
	assert.Equal(t, extend.SingleExtended, res)
	assert.Equal(t, "B", next)
}

func TestSuccessor_SingleNeighborSkipsTrimming(t *testing.T) {
	// B is a dead end, yet a lone physical edge is never a trimmable tip.
	g := core.NewDigraph()
	require.NoError(t, g.AddEdge("A", "B"))

	res, next, err := extend.Successor(g, "A", 10)
	require.NoError(t, err)
	assert.Equal(t, extend.SingleExtended, res)
	assert.Equal(t, "B", next)
}

func TestSuccessor_TwoTrueBranches(t *testing.T) {
	g := core.NewDigraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))

	res, next, err := extend.Successor(g, "A", 0)
	require.NoError(t, err)
	assert.Equal(t, extend.SingleBranchingPoint, res)
	assert.Equal(t, "", next, "no payload on a branching point")
}

func TestSuccessor_AllBranchesTrimmed(t *testing.T) {
	// Both B and C dead-end immediately; with trimLen 5 nothing survives.
	g := core.NewDigraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))

	res, _, err := extend.Successor(g, "A", 5)
	require.NoError(t, err)
	assert.Equal(t, extend.SingleDeadEnd, res)
}

func TestSuccessor_OneSurvivorAmongTips(t *testing.T) {
	// Three branches: two one-vertex tips and one long arm. With trimLen 2
	// only the long arm survives, so the step is unambiguous.
	g := core.NewDigraph()
	require.NoError(t, g.AddEdge("A", "tip1"))
	require.NoError(t, g.AddEdge("A", "tip2"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("C", "D"))

	res, next, err := extend.Successor(g, "A", 2)
	require.NoError(t, err)
	assert.Equal(t, extend.SingleExtended, res)
	assert.Equal(t, "B", next)

	// With no trimming the same vertex is an honest junction.
	res, _, err = extend.Successor(g, "A", 0)
	require.NoError(t, err)
	assert.Equal(t, extend.SingleBranchingPoint, res)
}

func TestPredecessor_MirrorsSuccessor(t *testing.T) {
	// tip→X and chain A→B→X: with trimLen 1 only B survives as predecessor.
	g := core.NewDigraph()
	require.NoError(t, g.AddEdge("tip", "X"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "X"))

	res, prev, err := extend.Predecessor(g, "X", 1)
	require.NoError(t, err)
	assert.Equal(t, extend.SingleExtended, res)
	assert.Equal(t, "B", prev)

	res, _, err = extend.Predecessor(g, "X", 0)
	require.NoError(t, err)
	assert.Equal(t, extend.SingleBranchingPoint, res)

	res, _, err = extend.Predecessor(g, "A", 0)
	require.NoError(t, err)
	assert.Equal(t, extend.SingleDeadEnd, res)
}

func TestClassification_Idempotent(t *testing.T) {
	g := core.NewDigraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("C", "D"))

	res1, next1, err1 := extend.Successor(g, "A", 1)
	res2, next2, err2 := extend.Successor(g, "A", 1)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, res1, res2, "classification must not mutate hidden state")
	assert.Equal(t, next1, next2)
}

func TestClassification_Errors(t *testing.T) {
	g := core.NewDigraph()
	require.NoError(t, g.AddVertex("A"))

	_, _, err := extend.Successor(nil, "A", 0)
	assert.ErrorIs(t, err, extend.ErrGraphNil)

	_, _, err = extend.Predecessor(g, "A", -2)
	assert.ErrorIs(t, err, extend.ErrBadTrimLen)

	_, _, err = extend.Successor(g, "ghost", 0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}
