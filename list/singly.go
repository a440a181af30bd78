package list

import "github.com/pwalczak/alglib/core"

// sllNode is a single link in a SinglyLinkedList.
type sllNode[T comparable] struct {
	data T
	next *sllNode[T]
}

// SinglyLinkedList is a generic forward-linked list. Every node is allocated
// individually, so insertion at the front is O(1) and the list never
// reallocates. The element type must be comparable because Find uses ==.
//
// SinglyLinkedList is not safe for concurrent use.
type SinglyLinkedList[T comparable] struct {
	head *sllNode[T]
}

// NewSingly constructs an empty SinglyLinkedList.
func NewSingly[T comparable]() *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{}
}

// Len returns the number of nodes by walking the list.
// Complexity: O(n).
func (l *SinglyLinkedList[T]) Len() int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}

	return count
}

// IsEmpty reports whether the list holds no nodes.
func (l *SinglyLinkedList[T]) IsEmpty() bool { return l.head == nil }

// Traverse calls visit for each element in list order.
// Complexity: O(n).
func (l *SinglyLinkedList[T]) Traverse(visit func(T)) {
	for n := l.head; n != nil; n = n.next {
		visit(n.data)
	}
}

// Find returns the index of the first occurrence of value (0 = head), or
// core.ErrItemNotFound when no node holds it.
// Complexity: O(n).
func (l *SinglyLinkedList[T]) Find(value T) (int, error) {
	idx := 0
	for n := l.head; n != nil; n = n.next {
		if n.data == value {
			return idx, nil
		}
		idx++
	}

	return 0, core.ErrItemNotFound
}

// ToSlice returns the elements in list order. Intended for inspection and
// tests; repeated conversion defeats the point of a linked list.
// Complexity: O(n).
func (l *SinglyLinkedList[T]) ToSlice() []T {
	out := make([]T, 0, l.Len())
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.data)
	}

	return out
}

// PushFront inserts value before the current head.
// Complexity: O(1).
func (l *SinglyLinkedList[T]) PushFront(value T) {
	l.head = &sllNode[T]{data: value, next: l.head}
}

// PushBack appends value after the current tail.
// Complexity: O(n).
func (l *SinglyLinkedList[T]) PushBack(value T) {
	node := &sllNode[T]{data: value}
	if l.head == nil {
		l.head = node
		return
	}
	tail := l.head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = node
}

// InsertAt inserts value so it ends up at position pos (0 = front,
// Len() = back). Returns core.ErrIndexOutOfRange when pos is negative or
// beyond the current length.
// Complexity: O(n).
func (l *SinglyLinkedList[T]) InsertAt(pos int, value T) error {
	if pos < 0 || pos > l.Len() {
		return core.ErrIndexOutOfRange
	}
	if pos == 0 {
		l.PushFront(value)
		return nil
	}
	prev := l.head
	for i := 0; i < pos-1; i++ {
		prev = prev.next
	}
	prev.next = &sllNode[T]{data: value, next: prev.next}

	return nil
}

// PopFront removes and returns the head element, or core.ErrEmptyContainer
// when the list is empty.
// Complexity: O(1).
func (l *SinglyLinkedList[T]) PopFront() (T, error) {
	var zero T
	if l.head == nil {
		return zero, core.ErrEmptyContainer
	}
	value := l.head.data
	l.head = l.head.next

	return value, nil
}

// PopBack removes and returns the tail element, or core.ErrEmptyContainer
// when the list is empty.
// Complexity: O(n).
func (l *SinglyLinkedList[T]) PopBack() (T, error) {
	var zero T
	if l.head == nil {
		return zero, core.ErrEmptyContainer
	}
	if l.head.next == nil {
		value := l.head.data
		l.head = nil
		return value, nil
	}
	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	value := prev.next.data
	prev.next = nil

	return value, nil
}

// RemoveAt removes the element at position pos. Returns
// core.ErrEmptyContainer on an empty list and core.ErrIndexOutOfRange when
// pos does not denote a live node.
// Complexity: O(n).
func (l *SinglyLinkedList[T]) RemoveAt(pos int) error {
	if l.head == nil {
		return core.ErrEmptyContainer
	}
	if pos < 0 || pos >= l.Len() {
		return core.ErrIndexOutOfRange
	}
	if pos == 0 {
		l.head = l.head.next
		return nil
	}
	prev := l.head
	for i := 0; i < pos-1; i++ {
		prev = prev.next
	}
	prev.next = prev.next.next

	return nil
}
