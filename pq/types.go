package pq

import "errors"

// Sentinel errors returned by Queue operations.
var (
	// ErrMissingTask indicates that Remove was called for a task without a live entry.
	ErrMissingTask = errors.New("pq: missing task")

	// ErrEmptyQueue indicates that Pop was called on a queue with no live entries.
	ErrEmptyQueue = errors.New("pq: pop from an empty priority queue")
)

// entry is a single heap slot. removed marks a tombstone: the slot stays in the
// heap until it surfaces at the top and is discarded by Pop.
type entry[T comparable] struct {
	priority float64 // effective priority of task
	seq      uint64  // insertion sequence, tie-break on equal priority
	task     T       // caller-supplied task identifier
	removed  bool    // true once superseded or removed
}

// entryHeap implements heap.Interface over *entry, ordered by (priority, seq).
type entryHeap[T comparable] []*entry[T]

// Len returns the physical number of slots, tombstones included.
func (h entryHeap[T]) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence.
func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two slots.
func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push only.
func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(*entry[T])) }

// Pop removes the last slot; called by heap.Pop only.
func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // release the reference for the GC
	*h = old[:n-1]

	return item
}
