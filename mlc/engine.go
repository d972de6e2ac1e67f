package mlc

import (
	"os"
	"time"

	"github.com/katalvlaran/mlc/bag"
	"github.com/katalvlaran/mlc/bagio"
	"github.com/katalvlaran/mlc/graph"
	"github.com/katalvlaran/mlc/label"
	"github.com/katalvlaran/mlc/limits"
	"github.com/katalvlaran/mlc/queue"
)

// MLC is a single search instance: it owns its queue, bags, and limits
// for the duration of Run and holds no process-wide state. Construct with
// New; run at most once.
type MLC struct {
	g     *graph.Graph
	opts  Options
	bags  Bags
	q     *queue.Queue
	lim   *limits.Limits[string]
	stats Stats

	lastFlush time.Time
}

// New validates the construction contract and returns a ready-to-
// run MLC: g must be non-nil and have at least one edge (AddEdge already
// enforces consistent visible/hidden lengths across all edges, so New
// does not re-check that here). When limit pruning is requested, every
// category tag appearing on a node in g is preregistered into a fresh
// Limits instance.
func New(g *graph.Graph, opts ...Option) (*MLC, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.EdgeCount() == 0 {
		return nil, graph.ErrNoEdges
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasStartTime && g.VisibleLen() == 0 {
		return nil, ErrStartTimeNoVisibleDimension
	}

	m := &MLC{
		g:    g,
		opts: cfg,
		bags: make(Bags),
		q:    queue.New(),
	}

	if cfg.limitPruning {
		m.lim = limits.New[string]()
		for _, c := range g.Categories() {
			m.lim.AddCategory(c)
		}
	}

	return m, nil
}

// Stats returns a diagnostic snapshot of the search: how many popped
// labels were discarded by the limit pruner, how many were skipped as
// stale (lazy-deletion), and how many were actually expanded.
func (m *MLC) Stats() Stats {
	return m.stats
}

// Run executes the expansion loop to completion and returns the final,
// Pareto-closed bag at every reachable node.
func (m *MLC) Run() (Bags, error) {
	if err := m.seed(); err != nil {
		return nil, err
	}
	if m.q.Len() == 0 {
		return nil, ErrEmptyStartingQueue
	}
	if m.opts.limitPruning && !m.lim.IsInitialized() {
		return nil, limits.ErrUninitialized
	}

	for m.q.Len() > 0 {
		current := m.q.Pop()

		if m.opts.limitPruning && m.exceedsLimit(current) {
			m.stats.DiscardedByLimits++
			continue
		}

		currentBag, ok := m.bags[current.NodeID]
		if !ok {
			return nil, ErrUnknownNodeID
		}
		if !currentBag.Contains(current) {
			// A dominator arrived at this node while current waited in
			// the queue: lazy-deletion skip.
			m.stats.SkippedStale++
			continue
		}
		m.stats.LabelsExpanded++

		for _, e := range m.g.Edges(current.NodeID) {
			extended := current.ExtendAlong(e, m.opts.recordPath)
			if m.opts.hook != nil {
				extended = m.opts.hook(current, extended)
			}

			target := m.bagFor(extended.NodeID)
			if target.AddIfNecessary(extended) {
				if m.opts.limitPruning {
					m.updateLimitsFor(extended)
				}
				m.q.Push(extended)
			}
		}

		m.maybeFlush()
	}

	return m.bags, nil
}

// BagAt returns the current (or final, once Run has returned) bag at
// node, or ErrUnknownNodeID if the node was never reached by the search.
// Unlike bagFor, this accessor never creates an entry as a side effect.
func (m *MLC) BagAt(node int) (*bag.Bag, error) {
	b, ok := m.bags[node]
	if !ok {
		return nil, ErrUnknownNodeID
	}

	return b, nil
}

// bagFor returns the node's Bag, creating an empty one on first access.
func (m *MLC) bagFor(node int) *bag.Bag {
	b, ok := m.bags[node]
	if !ok {
		b = bag.New()
		m.bags[node] = b
	}

	return b
}

// exceedsLimit applies the hard-coded projection: values[1] is cost,
// values[0] is time. A label vector shorter than 2 never participates in
// limit pruning (there is no (cost, time) pair to project).
func (m *MLC) exceedsLimit(l label.Label) bool {
	if len(l.Values) < 2 {
		return false
	}

	return m.lim.IsLimitExceeded(l.Values[1], l.Values[0])
}

// updateLimitsFor pushes l's (cost, time) projection into the frontier of
// every category tag on l's node.
func (m *MLC) updateLimitsFor(l label.Label) {
	if len(l.Values) < 2 {
		return
	}
	for _, c := range m.g.NodeCategories(l.NodeID) {
		m.lim.UpdateLimit(c, l.Values[1], l.Values[0])
	}
}

// seed installs seeding via injected bags and/or a configured start node:
// it installs the starting labels into both the queue and their node bags
// before the expansion loop begins.
func (m *MLC) seed() error {
	if m.opts.hasStart {
		if !m.g.HasNode(m.opts.startNode) {
			return ErrStartNodeUnknown
		}

		start := label.New(m.opts.startNode, m.g.VisibleLen(), m.g.HiddenLen(), m.opts.recordPath)
		if m.opts.hasStartTime && len(start.Values) > 0 {
			start.Values[0] = m.opts.startTime
		}

		m.bagFor(start.NodeID).AddIfNecessary(start)
		m.q.Push(start)
		if m.opts.limitPruning {
			m.updateLimitsFor(start)
		}
	}

	for nodeID, b := range m.opts.injectedBags {
		for _, l := range b.Labels() {
			if len(l.Values) != m.g.VisibleLen() || len(l.HiddenValues) != m.g.HiddenLen() {
				return ErrLabelLengthMismatch
			}

			// The caller's bag is already dominance-closed; AddIfNecessary
			// here only defends against a caller that violated that
			// contract, and every label is still pushed unconditionally.
			m.bagFor(nodeID).AddIfNecessary(l)
			m.q.Push(l)
			if m.opts.limitPruning {
				m.updateLimitsFor(l)
			}
		}
	}

	return nil
}

// maybeFlush synchronously snapshots the current bag state to the
// configured debug-flush path once at least debugFlushEvery has elapsed
// since the previous flush. No goroutine or ticker is involved: the
// engine is single-threaded and cooperative, so this is a plain
// time.Since check inline in the expansion loop, and the write blocks the
// loop for its duration. Flush I/O errors are swallowed: the debug
// snapshot is a best-effort side channel, never load-bearing for the
// search's correctness.
func (m *MLC) maybeFlush() {
	if m.opts.debugFlushPath == "" {
		return
	}
	if !m.lastFlush.IsZero() && time.Since(m.lastFlush) < m.opts.debugFlushEvery {
		return
	}

	f, err := os.Create(m.opts.debugFlushPath)
	if err != nil {
		return
	}
	defer f.Close()

	_ = bagio.Write(f, m.bags)
	m.lastFlush = time.Now()
}
