// Package pq provides a mutable min-priority queue keyed by arbitrary
// comparable tasks, with decrease-key implemented through lazy deletion.
//
// Overview:
//
//   - Queue[T] is a binary min-heap of (priority, sequence, task) entries plus
//     an index from each task to its single live entry.
//   - Push inserts a task or updates its priority. An update never touches the
//     heap mid-structure: the old entry is only marked removed ("tombstoned")
//     and a fresh entry is pushed.
//   - Pop discards tombstoned entries as they surface and returns the first
//     live task.
//
// Ordering:
//
//   - Entries are compared lexicographically on (priority, sequence).
//   - The sequence is a strictly increasing per-queue counter assigned on every
//     push, so tasks with equal priority pop in insertion order (FIFO among
//     equals). Search code relies on this for reproducible routes when several
//     equal-cost alternatives exist.
//
// Complexity:
//
//   - Push:   O(log N) amortized, N = physical heap size (live + stale).
//   - Remove: O(1) (the stale slot is reclaimed by a later Pop).
//   - Pop:    O(k log N), where k is the number of stale entries discarded.
//   - Space:  O(live + stale). Stale entries are reclaimed only when popped.
//
// Errors (sentinel):
//
//   - ErrMissingTask: Remove was asked for a task with no live entry.
//   - ErrEmptyQueue:  Pop found no live entry.
//
// Thread safety:
//
//   - Queue is not safe for concurrent use. Synchronize externally.
//
// Example:
//
//	q := pq.New[string]()
//	q.Push("A", 5)
//	q.Push("B", 3)
//	q.Push("A", 1) // decrease-key
//	task, _ := q.Pop() // "A"
package pq
