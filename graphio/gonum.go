package graphio

import (
	"math"

	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/mlc/graph"
)

// FromGonum builds a *graph.Graph from any gonum.org/v1/gonum/graph
// WeightedDirected implementation. weights is invoked once per gonum edge
// and must return the (visible, hidden) weight vectors that edge
// contributes; gonum edges only carry a single scalar weight, so the
// callback is the caller's chance to expand that into the multi-criteria
// vectors mlc operates on (e.g. by looking the edge's endpoints up in a
// side table).
func FromGonum(g gonumgraph.WeightedDirected, weights func(gonumgraph.Edge) ([]uint64, []uint64)) (*graph.Graph, error) {
	if g == nil {
		return nil, ErrNilGonumGraph
	}

	out := graph.NewGraph()

	var ids []int64
	nodes := g.Nodes()
	for nodes.Next() {
		ids = append(ids, nodes.Node().ID())
	}
	for _, id := range ids {
		out.AddNode(int(id))
	}

	for _, uid := range ids {
		succ := g.From(uid)
		for succ.Next() {
			vid := succ.Node().ID()
			we := g.WeightedEdge(uid, vid)
			if we == nil {
				continue
			}

			visible, hidden := weights(we)
			if err := out.AddEdge(int(uid), int(vid), visible, hidden); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// ToGonum mirrors g into a *simple.WeightedDirectedGraph, so gonum
// analysis tooling (graph/topo, graph/path, ...) can be run in front of or
// alongside an mlc search. Since gonum edges carry a single scalar weight,
// each edge's weight is the sum of its visible weight vector; this is a
// documented projection, not a general inverse of FromGonum.
func ToGonum(g *graph.Graph) (*simple.WeightedDirectedGraph, error) {
	out := simple.NewWeightedDirectedGraph(0, math.Inf(1))

	for _, id := range g.NodeIDs() {
		out.AddNode(simple.Node(id))
	}

	for _, id := range g.NodeIDs() {
		for _, e := range g.Edges(id) {
			var sum uint64
			for _, v := range e.Visible {
				sum += v
			}
			out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), float64(sum)))
		}
	}

	return out, nil
}
