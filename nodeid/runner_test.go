package nodeid_test

import (
	"testing"

	"github.com/katalvlaran/mlc/bag"
	"github.com/katalvlaran/mlc/graph"
	"github.com/katalvlaran/mlc/nodeid"
	"github.com/stretchr/testify/require"
)

func TestRunNamed_TranslatesBoundary(t *testing.T) {
	g := graph.NewGraph()
	_ = g.AddEdge(0, 1, []uint64{1, 1}, nil)
	_ = g.AddEdge(1, 2, []uint64{1, 1}, nil)

	tr := nodeid.New()
	_ = tr.Register("depot", 0)
	_ = tr.Register("shop", 1)
	_ = tr.Register("warehouse", 2)

	r := nodeid.NewRunner(g, tr)
	named, err := r.RunNamed("depot")
	require.NoError(t, err)

	shopBag, ok := named["shop"]
	require.True(t, ok, "expected a bag keyed by name %q, got keys %v", "shop", keys(named))
	require.Equal(t, 1, shopBag.Len())

	_, ok = named["warehouse"]
	require.True(t, ok, "expected a bag keyed by name %q, got keys %v", "warehouse", keys(named))
}

func TestRunNamed_FallsBackToNumericNameWhenUnregistered(t *testing.T) {
	g := graph.NewGraph()
	_ = g.AddEdge(0, 1, []uint64{1}, nil)

	tr := nodeid.New()
	_ = tr.Register("depot", 0)

	r := nodeid.NewRunner(g, tr)
	named, err := r.RunNamed("depot")
	require.NoError(t, err)

	_, ok := named["1"]
	require.True(t, ok, "expected unregistered node 1 to fall back to its numeric name, got keys %v", keys(named))
}

func TestRunNamed_StartNodeNotFound(t *testing.T) {
	g := graph.NewGraph()
	_ = g.AddEdge(0, 1, []uint64{1}, nil)

	tr := nodeid.New()
	r := nodeid.NewRunner(g, tr)

	_, err := r.RunNamed("nowhere")
	require.ErrorIs(t, err, nodeid.ErrStartNodeNotFound)
}

func keys(m map[string]*bag.Bag) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}
