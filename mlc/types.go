package mlc

import (
	"time"

	"github.com/katalvlaran/mlc/bag"
	"github.com/katalvlaran/mlc/label"
)

// Bags is the per-node result of a search: node id -> its final,
// Pareto-closed label bag. This is the same underlying type bagio.Write/
// bagio.Read operate on, so a caller can serialize an mlc.Bags value
// directly.
type Bags = map[int]*bag.Bag

// Hook is the label rewrite hook: invoked after a label is
// extended across an edge, given the parent label and the freshly
// extended label, and returning the label that is actually considered
// for bag insertion. A hook may replace any field of extended except
// NodeID and Path, which it must preserve — the engine trusts the hook
// completely; a hook that violates this contract produces undefined
// behavior (no typed error exists for it, by design).
type Hook func(parent, extended label.Label) label.Label

// Options configures an MLC search. See the With... functions for the
// meaning of each field and DefaultOptions for the defaults applied when
// no options are given.
type Options struct {
	hasStart        bool
	startNode       int
	startTime       uint64
	hasStartTime    bool
	injectedBags    Bags
	hook            Hook
	recordPath      bool
	limitPruning    bool
	debugFlushPath  string
	debugFlushEvery time.Duration
}

// Option is a functional option mutating Options.
type Option func(*Options)

// DefaultOptions returns the defaults applied before any Option is
// processed: no seed configured, path recording on, limit pruning off, no
// debug flush, and a 10 second debug flush interval (used only once
// WithDebugFlush enables flushing at all).
func DefaultOptions() Options {
	return Options{
		recordPath:      true,
		limitPruning:    false,
		debugFlushEvery: 10 * time.Second,
	}
}

// WithStartNode seeds the search with a single zero-valued label at the
// given node id.
func WithStartNode(id int) Option {
	return func(o *Options) {
		o.hasStart = true
		o.startNode = id
	}
}

// WithStartNodeAndTime seeds the search like WithStartNode, but
// initializes the new label's Values[0] to the given time rather than
// zero. New returns ErrStartTimeNoVisibleDimension if the graph has no
// visible dimension to hold a time in; that check happens in New, since
// Options has no graph reference here.
func WithStartNodeAndTime(id int, startTime uint64) Option {
	return func(o *Options) {
		o.hasStart = true
		o.startNode = id
		o.hasStartTime = true
		o.startTime = startTime
	}
}

// WithInjectedBags seeds state directly from a caller-supplied, already
// dominance-closed map of node id -> Bag. Every label in every bag is
// pushed onto the queue.
func WithInjectedBags(bags Bags) Option {
	return func(o *Options) {
		o.injectedBags = bags
	}
}

// WithLabelRewriteHook installs the label rewrite hook invoked after
// every edge extension.
func WithLabelRewriteHook(h Hook) Option {
	return func(o *Options) {
		o.hook = h
	}
}

// WithPathRecording toggles whether labels carry their path prefix.
// Default is on; turning it off saves memory and label-comparison work at
// the cost of losing path reconstruction.
func WithPathRecording(enabled bool) Option {
	return func(o *Options) {
		o.recordPath = enabled
	}
}

// WithLimitPruning enables the Limits-based admissibility pruner.
// Every category tag appearing on a node in the graph must be
// preregistered by the time Run is called, which New does automatically
// from graph.Graph.Categories().
func WithLimitPruning(enabled bool) Option {
	return func(o *Options) {
		o.limitPruning = enabled
	}
}

// WithDebugFlush enables the periodic debug snapshot: every
// WithDebugFlushInterval (10s by default), the engine synchronously
// writes the current bag state to path via bagio.Write, blocking the
// expansion loop for the duration of the write.
func WithDebugFlush(path string) Option {
	return func(o *Options) {
		o.debugFlushPath = path
	}
}

// WithDebugFlushInterval overrides the default 10 second debug flush
// interval. Panics if interval is not positive, mirroring
// dijkstra.WithMaxDistance's panic-on-invalid-argument convention.
func WithDebugFlushInterval(interval time.Duration) Option {
	return func(o *Options) {
		if interval <= 0 {
			panic("mlc: WithDebugFlushInterval requires a positive duration")
		}
		o.debugFlushEvery = interval
	}
}

// Stats is a diagnostic snapshot of a completed (or in-progress) run,
// mirroring lvlath's core.Graph.Stats() getter convention.
type Stats struct {
	DiscardedByLimits int
	SkippedStale      int
	LabelsExpanded    int
}
