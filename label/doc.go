// Package label implements the Label value type: an immutable accumulated
// cost vector, an auxiliary hidden-cost vector, a path prefix, and the
// node the label currently sits at.
//
// Labels are never mutated after creation. They are created at the start
// of a search, from a caller-injected seed bag, or by extending an
// existing label along a graph edge (ExtendAlong). A label rewrite hook
// (see the mlc package) may replace an extended label with a fresh one of
// its own construction, but it never mutates a Label in place.
//
// Two labels are equal for bag-membership purposes iff their Values
// vectors are equal; HiddenValues and Path do not participate in identity
// (see Key). This lets a per-node Bag treat "we already have a label with
// these visible costs here" as a pure function of Values, while still
// retaining exactly one canonical Path per distinct Values vector.
//
// Dominance orientation: "smaller is better". WeaklyDominates(a, b) is
// true iff a.Values[i] <= b.Values[i] for every i, consistent with the
// min-heap/lexicographic pop order the queue package relies on.
package label
