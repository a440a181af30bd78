// Package queue provides two generic FIFO queues.
//
// What:
//
//   - ListQueue[T]: linked nodes with front and rear pointers; unbounded
//     growth, O(1) Enqueue and Dequeue.
//   - CircularQueue[T]: one fixed-capacity ring buffer allocated at
//     construction; indices wrap modulo the capacity so elements never move;
//     Enqueue fails with core.ErrContainerFull once the ring is full.
//
// Why:
//
//   - ListQueue when the backlog is unknown; CircularQueue when a hard bound
//     is wanted and per-enqueue allocation is not.
//
// Neither queue is safe for concurrent use.
//
// Errors:
//
//	core.ErrEmptyContainer - Dequeue, PeekFront or PeekRear on an empty queue.
//	core.ErrContainerFull  - Enqueue on a full CircularQueue.
package queue
