package graphio_test

import (
	"testing"

	"github.com/katalvlaran/mlc/graph"
	"github.com/katalvlaran/mlc/graphio"
	"github.com/stretchr/testify/require"
	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

func TestToGonum_MirrorsNodesAndWeightSums(t *testing.T) {
	g := graph.NewGraph()
	_ = g.AddEdge(0, 1, []uint64{2, 3}, nil)
	_ = g.AddEdge(1, 2, []uint64{10, 0}, nil)

	gn, err := graphio.ToGonum(g)
	require.NoError(t, err)

	require.NotNil(t, gn.Node(0))
	require.NotNil(t, gn.Node(1))
	require.NotNil(t, gn.Node(2))

	we := gn.WeightedEdge(0, 1)
	require.NotNil(t, we, "expected an edge 0->1")
	require.Equal(t, 5.0, we.Weight(), "edge 0->1 weight should be 2+3")
}

func TestFromGonum_BuildsGraphViaCallback(t *testing.T) {
	gn := simple.NewWeightedDirectedGraph(0, 0)
	gn.SetWeightedEdge(gn.NewWeightedEdge(simple.Node(0), simple.Node(1), 7))

	g, err := graphio.FromGonum(gn, func(e gonumgraph.Edge) ([]uint64, []uint64) {
		we := e.(gonumgraph.WeightedEdge)
		return []uint64{uint64(we.Weight())}, nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())

	edges := g.Edges(0)
	require.Len(t, edges, 1)
	require.Equal(t, []uint64{7}, edges[0].Visible)
}

func TestFromGonum_NilGraph(t *testing.T) {
	_, err := graphio.FromGonum(nil, nil)
	require.ErrorIs(t, err, graphio.ErrNilGonumGraph)
}
