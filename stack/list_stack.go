package stack

import "github.com/pwalczak/alglib/core"

// stackNode is a single link in a ListStack.
type stackNode[T any] struct {
	data T
	next *stackNode[T]
}

// ListStack is a generic LIFO stack backed by a singly linked chain of
// nodes, so it grows without bound and never reallocates.
//
// ListStack is not safe for concurrent use.
type ListStack[T any] struct {
	top  *stackNode[T]
	size int
}

// NewListStack constructs an empty ListStack.
func NewListStack[T any]() *ListStack[T] {
	return &ListStack[T]{}
}

// Push places value on top of the stack.
// Complexity: O(1).
func (s *ListStack[T]) Push(value T) {
	s.top = &stackNode[T]{data: value, next: s.top}
	s.size++
}

// Pop removes and returns the top element, or core.ErrEmptyContainer when
// the stack is empty.
// Complexity: O(1).
func (s *ListStack[T]) Pop() (T, error) {
	var zero T
	if s.top == nil {
		return zero, core.ErrEmptyContainer
	}
	value := s.top.data
	s.top = s.top.next
	s.size--

	return value, nil
}

// Top returns the top element without removing it, or
// core.ErrEmptyContainer when the stack is empty.
// Complexity: O(1).
func (s *ListStack[T]) Top() (T, error) {
	var zero T
	if s.top == nil {
		return zero, core.ErrEmptyContainer
	}

	return s.top.data, nil
}

// IsEmpty reports whether the stack holds no elements.
func (s *ListStack[T]) IsEmpty() bool { return s.top == nil }

// Len returns the number of stacked elements.
func (s *ListStack[T]) Len() int { return s.size }
