package queue

import (
	"container/heap"

	"github.com/katalvlaran/mlc/label"
)

// Queue is a min-heap of labels ordered by label.Less (lexicographic
// order over Values). The zero value is not usable; construct with New.
type Queue struct {
	items labelHeap
}

// New returns an empty, initialized Queue.
func New() *Queue {
	q := &Queue{items: make(labelHeap, 0)}
	heap.Init(&q.items)

	return q
}

// Push inserts l into the queue.
// Complexity: O(log n).
func (q *Queue) Push(l label.Label) {
	heap.Push(&q.items, l)
}

// Pop removes and returns the lexicographically smallest label. Panics if
// the queue is empty; callers must check Len first (the mlc engine's main
// loop condition is exactly this check).
// Complexity: O(log n).
func (q *Queue) Pop() label.Label {
	return heap.Pop(&q.items).(label.Label)
}

// Len returns the number of labels currently queued.
func (q *Queue) Len() int {
	return q.items.Len()
}

// labelHeap is the container/heap.Interface implementation backing Queue,
// modeled on dijkstra.nodePQ.
type labelHeap []label.Label

func (h labelHeap) Len() int            { return len(h) }
func (h labelHeap) Less(i, j int) bool  { return label.Less(h[i], h[j]) }
func (h labelHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *labelHeap) Push(x interface{}) { *h = append(*h, x.(label.Label)) }
func (h *labelHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
