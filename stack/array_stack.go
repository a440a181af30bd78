package stack

import "github.com/pwalczak/alglib/core"

// ArrayStack is a generic LIFO stack over a fixed-capacity block allocated
// once at construction. It never grows: pushing onto a full stack fails with
// core.ErrContainerFull.
//
// ArrayStack is not safe for concurrent use.
type ArrayStack[T any] struct {
	data []T
	size int
}

// NewArrayStack constructs an empty ArrayStack with room for capacity
// elements. A negative capacity is treated as zero.
// Complexity: O(capacity).
func NewArrayStack[T any](capacity int) *ArrayStack[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &ArrayStack[T]{data: make([]T, capacity)}
}

// Push places value on top of the stack, or returns core.ErrContainerFull
// when the capacity is exhausted.
// Complexity: O(1).
func (s *ArrayStack[T]) Push(value T) error {
	if s.size == len(s.data) {
		return core.ErrContainerFull
	}
	s.data[s.size] = value
	s.size++

	return nil
}

// Pop removes and returns the top element, or core.ErrEmptyContainer when
// the stack is empty. The vacated slot is zeroed.
// Complexity: O(1).
func (s *ArrayStack[T]) Pop() (T, error) {
	var zero T
	if s.size == 0 {
		return zero, core.ErrEmptyContainer
	}
	s.size--
	value := s.data[s.size]
	s.data[s.size] = zero

	return value, nil
}

// Top returns the top element without removing it, or
// core.ErrEmptyContainer when the stack is empty.
// Complexity: O(1).
func (s *ArrayStack[T]) Top() (T, error) {
	var zero T
	if s.size == 0 {
		return zero, core.ErrEmptyContainer
	}

	return s.data[s.size-1], nil
}

// IsEmpty reports whether the stack holds no elements.
func (s *ArrayStack[T]) IsEmpty() bool { return s.size == 0 }

// IsFull reports whether the stack has reached its capacity.
func (s *ArrayStack[T]) IsFull() bool { return s.size == len(s.data) }

// Len returns the number of stacked elements.
func (s *ArrayStack[T]) Len() int { return s.size }

// Cap returns the fixed capacity chosen at construction.
func (s *ArrayStack[T]) Cap() int { return len(s.data) }
