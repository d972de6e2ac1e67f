// Package mlc implements the Multi-Label Correcting search engine: the
// orchestrator that maintains, per node, a bag of mutually non-dominated
// labels and expands labels in lexicographic order from a global priority
// queue.
//
// Configuration follows lvlath's dijkstra package idiom exactly: a
// package-level Options struct, functional Option values, With... helpers
// that panic on malformed caller input, and DefaultOptions() documenting
// every default.
//
// Errors (sentinel):
//
//	ErrNilGraph            - nil *graph.Graph passed to New.
//	ErrUnknownNodeID       - bug signal; expansion hit an unbagged node
//	                         (also returned by BagAt for an unreached node).
//	ErrEmptyStartingQueue  - Run invoked with no seed at all.
//	ErrLabelLengthMismatch - injected label vector length mismatch.
//	ErrStartNodeUnknown    - WithStartNode named a node absent from g.
//
// Thread safety: MLC is not safe for concurrent use. It owns its queue,
// bags, and limits for the lifetime of one Run call; run separate
// searches on separate MLC instances.
package mlc
