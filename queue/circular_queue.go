package queue

import "github.com/pwalczak/alglib/core"

// CircularQueue is a generic FIFO queue over a fixed-capacity ring buffer
// allocated once at construction. Indices wrap with modular arithmetic:
// the front index chases the rear around the block, so no element ever
// moves. Enqueue on a full queue fails with core.ErrContainerFull.
//
// CircularQueue is not safe for concurrent use.
type CircularQueue[T any] struct {
	data  []T
	front int
	size  int
}

// NewCircularQueue constructs an empty CircularQueue with room for capacity
// elements. A negative capacity is treated as zero.
// Complexity: O(capacity).
func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &CircularQueue[T]{data: make([]T, capacity)}
}

// Enqueue appends value at the rear of the ring, or returns
// core.ErrContainerFull when the capacity is exhausted.
// Complexity: O(1).
func (q *CircularQueue[T]) Enqueue(value T) error {
	if q.size == len(q.data) {
		return core.ErrContainerFull
	}
	q.data[(q.front+q.size)%len(q.data)] = value
	q.size++

	return nil
}

// Dequeue removes and returns the front element, advancing the front index
// around the ring. The vacated slot is zeroed. Returns
// core.ErrEmptyContainer when the queue is empty.
// Complexity: O(1).
func (q *CircularQueue[T]) Dequeue() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, core.ErrEmptyContainer
	}
	value := q.data[q.front]
	q.data[q.front] = zero
	q.front = (q.front + 1) % len(q.data)
	q.size--

	return value, nil
}

// PeekFront returns the front element without removing it, or
// core.ErrEmptyContainer when the queue is empty.
// Complexity: O(1).
func (q *CircularQueue[T]) PeekFront() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, core.ErrEmptyContainer
	}

	return q.data[q.front], nil
}

// PeekRear returns the most recently enqueued element without removing it,
// or core.ErrEmptyContainer when the queue is empty.
// Complexity: O(1).
func (q *CircularQueue[T]) PeekRear() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, core.ErrEmptyContainer
	}

	return q.data[(q.front+q.size-1)%len(q.data)], nil
}

// IsEmpty reports whether the queue holds no elements.
func (q *CircularQueue[T]) IsEmpty() bool { return q.size == 0 }

// IsFull reports whether the queue has reached its capacity.
func (q *CircularQueue[T]) IsFull() bool { return q.size == len(q.data) }

// Len returns the number of queued elements.
func (q *CircularQueue[T]) Len() int { return q.size }

// Cap returns the fixed capacity chosen at construction.
func (q *CircularQueue[T]) Cap() int { return len(q.data) }
