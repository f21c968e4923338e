package core_test

import (
	"testing"

	"github.com/katalvlaran/skyroute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexX = "X"
)

func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexA)) // idempotent
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex(VertexA))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex(VertexX))
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", VertexB, 1, 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge(VertexA, VertexB, -1, 1)
	assert.ErrorIs(t, err, core.ErrNegativeCost)

	_, err = g.AddEdge(VertexA, VertexB, 1, -1)
	assert.ErrorIs(t, err, core.ErrNegativeCost)

	_, err = g.AddEdge(VertexA, VertexA, 1, 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	// Failed inserts must not leave vertices behind.
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())

	looped := core.NewGraph(core.WithLoops())
	_, err = looped.AddEdge(VertexA, VertexA, 0, 0)
	assert.NoError(t, err)
}

func TestAddEdge_CreatesEndpointsAndIDs(t *testing.T) {
	g := core.NewGraph()
	id1, err := g.AddEdge(VertexA, VertexB, 100, 10)
	require.NoError(t, err)
	id2, err := g.AddEdge(VertexB, VertexC, 200, 20)
	require.NoError(t, err)

	assert.Equal(t, "e1", id1)
	assert.Equal(t, "e2", id2)
	assert.Equal(t, []string{VertexA, VertexB, VertexC}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, &core.Edge{ID: "e2", From: VertexB, To: VertexC, Price: 200, Time: 20}, edges[1])
}

func TestNeighbors_DirectedAndOrdered(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(VertexA, VertexC, 5, 50)
	_, _ = g.AddEdge(VertexA, VertexB, 1, 10)
	_, _ = g.AddEdge(VertexA, VertexC, 3, 30) // parallel edge, kept after the first one

	nbs := g.Neighbors(VertexA)
	require.Len(t, nbs, 3)
	assert.Equal(t, []string{"e1", "e2", "e3"}, []string{nbs[0].ID, nbs[1].ID, nbs[2].ID})
	assert.Equal(t, []string{VertexC, VertexB}, g.NeighborIDs(VertexA))

	// A→B does not imply B→A.
	assert.Empty(t, g.Neighbors(VertexB))

	// Unknown vertex behaves like a dead end.
	assert.Empty(t, g.Neighbors(VertexX))
	assert.Empty(t, g.NeighborIDs(VertexX))
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(VertexA, VertexB, 1, 1)

	nbs := g.Neighbors(VertexA)
	nbs[0] = nil
	assert.NotNil(t, g.Neighbors(VertexA)[0])
}

func TestEdges_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge(VertexA, VertexB, int64(i), int64(i))
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.Equal(t, int64(i), e.Price)
	}
	assert.Equal(t, "e10", edges[9].ID)
}

func TestStats(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(VertexA, VertexB, 1, 1)
	_, _ = g.AddEdge(VertexA, VertexB, 2, 2)
	_, _ = g.AddEdge(VertexB, VertexC, 1, 1)

	s := g.Stats()
	assert.Equal(t, &core.GraphStats{
		VertexCount:   3,
		EdgeCount:     3,
		DeadEnds:      1,
		ParallelPairs: 1,
	}, s)
}
