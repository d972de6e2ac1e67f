// Package graphio is the external-collaborator layer that gets a caller
// from a file on disk (or an existing gonum graph) to a *graph.Graph ready
// to hand to mlc.New. It sits outside the core search engine on purpose,
// but a complete module ships it rather than leaving every caller to
// reimplement the same CSV dialect.
//
// ReadCSV parses a header row `u,v,weights[,hidden_weights]` followed by
// one edge per row, with weight vectors written
// bracket-enclosed and semicolon-separated (e.g. "[3;0;10]"). Node ids may
// be arbitrary strings; ReadCSV always returns a nodeid.Translator mapping
// them to the dense integers graph.Graph uses internally.
//
// FromGonum and ToGonum adapt a *graph.Graph to and from gonum's
// graph.WeightedDirected / *simple.WeightedDirectedGraph, so a caller
// already holding a gonum graph (built by any gonum-compatible tool, or
// produced by gonum/graph/topo analysis) never has to round-trip through
// CSV.
package graphio
