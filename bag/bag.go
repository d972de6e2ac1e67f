package bag

import (
	"sort"

	"github.com/katalvlaran/mlc/label"
)

// Bag is the set of mutually non-dominated labels currently known at a
// single node. The zero value is not usable; construct with New.
type Bag struct {
	labels map[string]label.Label
}

// New returns an empty Bag.
func New() *Bag {
	return &Bag{labels: make(map[string]label.Label)}
}

// NewSeeded returns a Bag containing exactly the given starting label.
func NewSeeded(start label.Label) *Bag {
	b := New()
	b.labels[label.Key(start)] = start

	return b
}

// ContentDominates reports whether some label already in the Bag weakly
// dominates l.
// Complexity: O(n) where n = Bag.Len().
func (b *Bag) ContentDominates(l label.Label) bool {
	for _, existing := range b.labels {
		if label.WeaklyDominates(existing, l) {
			return true
		}
	}

	return false
}

// AddIfNecessary implements the three-step bag-insertion rule:
//  1. If any existing label weakly dominates l, reject it (Bag unchanged).
//  2. Otherwise, remove every existing label that l weakly dominates.
//  3. Insert l.
//
// Returns true iff l was inserted. Idempotent: inserting the same Values
// vector twice only ever has an effect the first time, since the second
// insertion finds itself weakly dominated (equal) by the first and is
// rejected at step 1.
// Complexity: O(n) where n = Bag.Len().
func (b *Bag) AddIfNecessary(l label.Label) bool {
	if b.ContentDominates(l) {
		return false
	}

	key := label.Key(l)
	for k, existing := range b.labels {
		if k == key {
			continue
		}
		if label.WeaklyDominates(l, existing) {
			delete(b.labels, k)
		}
	}
	b.labels[key] = l

	return true
}

// Len returns the number of labels currently in the Bag.
func (b *Bag) Len() int {
	return len(b.labels)
}

// Labels returns a stable, Values-sorted snapshot of every label in the
// Bag. Used by serialization and by tests asserting Pareto-closure /
// Pareto-completeness properties, where a deterministic iteration order
// makes assertions reproducible.
func (b *Bag) Labels() []label.Label {
	out := make([]label.Label, 0, len(b.labels))
	for _, l := range b.labels {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return label.Less(out[i], out[j]) })

	return out
}

// Contains reports whether a label with exactly l's Values is currently
// present in the Bag. The mlc engine uses this for the lazy-deletion
// optimization: a popped label that is no longer present (evicted by a
// dominator that arrived while it waited in the queue) is skipped rather
// than expanded.
func (b *Bag) Contains(l label.Label) bool {
	_, ok := b.labels[label.Key(l)]

	return ok
}
