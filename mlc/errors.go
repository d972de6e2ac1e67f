package mlc

import "errors"

// Sentinel errors returned by the mlc engine.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to New.
	ErrNilGraph = errors.New("mlc: graph is nil")

	// ErrUnknownNodeID indicates the expansion loop popped a label whose
	// node id has no bag entry (a bug signal rather than a user-input
	// error for a well-formed search), or that BagAt was asked for a node
	// the search never reached.
	ErrUnknownNodeID = errors.New("mlc: unknown node id encountered during expansion")

	// ErrEmptyStartingQueue indicates Run was invoked with no seed: no
	// start node, no start-node-with-time, and no injected bags.
	ErrEmptyStartingQueue = errors.New("mlc: run invoked with no seed; the starting queue is empty")

	// ErrLabelLengthMismatch indicates an injected seed label's Values or
	// HiddenValues length does not match the graph's k (VisibleLen) or m
	// (HiddenLen).
	ErrLabelLengthMismatch = errors.New("mlc: injected label vector length does not match graph")

	// ErrStartNodeUnknown indicates WithStartNode/WithStartNodeAndTime
	// named a node id the graph never registered.
	ErrStartNodeUnknown = errors.New("mlc: start node not found in graph")

	// ErrStartTimeNoVisibleDimension indicates WithStartNodeAndTime was
	// used against a graph whose edges carry no visible weight
	// dimension, so there is no Values[0] slot to hold the start time.
	ErrStartTimeNoVisibleDimension = errors.New("mlc: graph has no visible dimension to hold a start time in")
)
