package pq

import (
	"container/heap"
	"fmt"
)

// Queue is a min-priority queue of comparable tasks with lazy deletion.
// At any time a task has at most one live entry; the heap may additionally
// hold any number of tombstoned entries for it.
//
// The zero value is not usable; construct queues with New.
type Queue[T comparable] struct {
	heap entryHeap[T]    // physical heap, live and stale entries
	live map[T]*entry[T] // task → its single live entry
	seq  uint64          // next insertion sequence number
}

// New returns an empty Queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{
		heap: make(entryHeap[T], 0),
		live: make(map[T]*entry[T]),
	}
}

// Push inserts task with the given priority, or updates its priority if it is
// already queued. An existing live entry is tombstoned first, then a new entry
// carrying the next sequence number is pushed.
//
// Complexity: O(log N).
func (q *Queue[T]) Push(task T, priority float64) {
	// 1) Supersede the current live entry, if any. The slot stays in the heap.
	if old, ok := q.live[task]; ok {
		old.removed = true
	}

	// 2) Push the replacement entry and index it as live.
	e := &entry[T]{
		priority: priority,
		seq:      q.seq,
		task:     task,
	}
	q.seq++
	q.live[task] = e
	heap.Push(&q.heap, e)
}

// Remove tombstones the live entry of task.
// Returns ErrMissingTask (wrapped with the task value) if task is not queued.
//
// Complexity: O(1).
func (q *Queue[T]) Remove(task T) error {
	e, ok := q.live[task]
	if !ok {
		return fmt.Errorf("%w: %v", ErrMissingTask, task)
	}
	e.removed = true
	delete(q.live, task)

	return nil
}

// Pop removes and returns the live task with the smallest (priority, sequence).
// Tombstoned entries reaching the top of the heap are discarded on the way.
// Returns ErrEmptyQueue if no live entry remains.
func (q *Queue[T]) Pop() (T, error) {
	for q.heap.Len() > 0 {
		e := heap.Pop(&q.heap).(*entry[T])
		if e.removed {
			continue // stale slot
		}
		delete(q.live, e.task)

		return e.task, nil
	}

	var zero T
	return zero, ErrEmptyQueue
}

// IsEmpty reports whether no live entries remain. The physical heap may still
// hold tombstones.
func (q *Queue[T]) IsEmpty() bool { return len(q.live) == 0 }

// Len returns the number of live entries.
func (q *Queue[T]) Len() int { return len(q.live) }

// Size returns the physical heap size, tombstoned entries included.
func (q *Queue[T]) Size() int { return q.heap.Len() }

// Contains reports whether task has a live entry.
func (q *Queue[T]) Contains(task T) bool {
	_, ok := q.live[task]
	return ok
}

// Priority returns the effective priority of task and whether it is queued.
func (q *Queue[T]) Priority(task T) (float64, bool) {
	e, ok := q.live[task]
	if !ok {
		return 0, false
	}

	return e.priority, true
}
