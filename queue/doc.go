// Package queue implements the global lexicographic min-heap of labels
// the mlc engine pops from on every iteration of the expansion loop.
//
// Styled directly after lvlath's dijkstra package: a slice-backed
// container/heap.Interface, manipulated only through heap.Init/Push/Pop at
// call sites, never by touching the slice directly. Unlike Dijkstra's
// nodePQ, this queue carries no "visited" bookkeeping of its own — the
// standard lazy-deletion check (is the popped label still present in its
// node's bag?) lives in the mlc engine, which is the only component that
// can answer it.
package queue
