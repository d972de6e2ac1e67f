package graph_test

import (
	"testing"

	"github.com/katalvlaran/mlc/graph"
	"github.com/stretchr/testify/require"
)

func TestAddEdge_FixesSharedLengths(t *testing.T) {
	g := graph.NewGraph()

	require.NoError(t, g.AddEdge(0, 1, []uint64{2, 5}, nil))
	require.Equal(t, 2, g.VisibleLen())
	require.Equal(t, 0, g.HiddenLen())

	require.NoError(t, g.AddEdge(1, 2, []uint64{1, 1}, nil))
	require.Equal(t, 2, g.EdgeCount())
}

func TestAddEdge_InconsistentWeightsRejected(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, []uint64{1, 2}, nil))

	err := g.AddEdge(1, 2, []uint64{1, 2, 3}, nil)
	require.ErrorIs(t, err, graph.ErrInconsistentWeights)
	// Rejected edge must not have mutated the edge count.
	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_LazyNodeCreation(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge(10, 20, []uint64{1}, nil))
	require.True(t, g.HasNode(10), "expected both endpoints to be registered lazily")
	require.True(t, g.HasNode(20), "expected both endpoints to be registered lazily")
	require.Equal(t, 2, g.NodeCount())
}

func TestCategories_DeduplicatedAndSorted(t *testing.T) {
	g := graph.NewGraph()
	g.AddNode(0, "shop")
	g.AddNode(1, "grocery", "shop")
	g.AddNode(2)

	require.Equal(t, []string{"grocery", "shop"}, g.Categories())
}

func TestAddCategory_DuplicateRejected(t *testing.T) {
	g := graph.NewGraph()
	g.AddNode(0, "shop")
	err := g.AddCategory(0, "shop")
	require.ErrorIs(t, err, graph.ErrDuplicateCategory)
}

func TestEdges_ReturnsOutgoingOnly(t *testing.T) {
	g := graph.NewGraph()
	_ = g.AddEdge(0, 1, []uint64{1}, nil)
	_ = g.AddEdge(0, 2, []uint64{2}, nil)
	_ = g.AddEdge(1, 2, []uint64{3}, nil)

	require.Len(t, g.Edges(0), 2)
	require.Empty(t, g.Edges(2))
}
