// Package graph defines the weighted, multi-criteria directed graph
// consumed (but not owned) by the mlc engine.
//
// A Graph holds Nodes, each carrying an ordered list of category tags, and
// Edges, each carrying a vector of non-negative "visible" weights that
// participate in dominance and an optional vector of "hidden" weights that
// accumulate but never enter a dominance comparison. All edges in a Graph
// share the same visible length k and hidden length m; AddEdge enforces
// this at construction time.
//
// Graph is read-only for the duration of an mlc.Run: the engine never
// mutates it, and concurrent mutation by the caller while a search is in
// flight is undefined behavior (see the mlc package's thread-safety note).
package graph
