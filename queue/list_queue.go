package queue

import "github.com/pwalczak/alglib/core"

// queueNode is a single link in a ListQueue.
type queueNode[T any] struct {
	data T
	next *queueNode[T]
}

// ListQueue is a generic FIFO queue backed by a singly linked chain with
// front and rear pointers, so both Enqueue and Dequeue are O(1) and the
// queue grows without bound.
//
// ListQueue is not safe for concurrent use.
type ListQueue[T any] struct {
	front *queueNode[T]
	rear  *queueNode[T]
	size  int
}

// NewListQueue constructs an empty ListQueue.
func NewListQueue[T any]() *ListQueue[T] {
	return &ListQueue[T]{}
}

// Enqueue appends value at the rear of the queue.
// Complexity: O(1).
func (q *ListQueue[T]) Enqueue(value T) {
	node := &queueNode[T]{data: value}
	if q.rear != nil {
		q.rear.next = node
	} else {
		q.front = node
	}
	q.rear = node
	q.size++
}

// Dequeue removes and returns the front element, or core.ErrEmptyContainer
// when the queue is empty.
// Complexity: O(1).
func (q *ListQueue[T]) Dequeue() (T, error) {
	var zero T
	if q.front == nil {
		return zero, core.ErrEmptyContainer
	}
	value := q.front.data
	q.front = q.front.next
	if q.front == nil {
		q.rear = nil
	}
	q.size--

	return value, nil
}

// PeekFront returns the front element without removing it, or
// core.ErrEmptyContainer when the queue is empty.
// Complexity: O(1).
func (q *ListQueue[T]) PeekFront() (T, error) {
	var zero T
	if q.front == nil {
		return zero, core.ErrEmptyContainer
	}

	return q.front.data, nil
}

// PeekRear returns the rear element without removing it, or
// core.ErrEmptyContainer when the queue is empty.
// Complexity: O(1).
func (q *ListQueue[T]) PeekRear() (T, error) {
	var zero T
	if q.rear == nil {
		return zero, core.ErrEmptyContainer
	}

	return q.rear.data, nil
}

// IsEmpty reports whether the queue holds no elements.
func (q *ListQueue[T]) IsEmpty() bool { return q.front == nil }

// Len returns the number of queued elements.
func (q *ListQueue[T]) Len() int { return q.size }
