package graph

import "errors"

// Sentinel errors for graph construction and mutation.
var (
	// ErrNoEdges indicates a Graph has zero edges, violating the
	// construction precondition that the mlc engine requires.
	ErrNoEdges = errors.New("graph: graph has no edges")

	// ErrInconsistentWeights indicates an edge's visible or hidden weight
	// vector length differs from the length established by the first
	// edge added to the Graph.
	ErrInconsistentWeights = errors.New("graph: inconsistent edge weight vector length")

	// ErrDuplicateCategory indicates AddCategory was called twice for the
	// same node with the same tag.
	ErrDuplicateCategory = errors.New("graph: category already present on node")
)
