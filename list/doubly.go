package list

import "github.com/pwalczak/alglib/core"

// dllNode is a single link in a DoublyLinkedList.
type dllNode[T comparable] struct {
	data T
	prev *dllNode[T]
	next *dllNode[T]
}

// DoublyLinkedList is a generic two-way linked list holding head and tail
// pointers, so both ends support O(1) insertion and removal. The element
// type must be comparable because Find uses ==.
//
// DoublyLinkedList is not safe for concurrent use.
type DoublyLinkedList[T comparable] struct {
	head *dllNode[T]
	tail *dllNode[T]
}

// NewDoubly constructs an empty DoublyLinkedList.
func NewDoubly[T comparable]() *DoublyLinkedList[T] {
	return &DoublyLinkedList[T]{}
}

// Len returns the number of nodes by walking the list.
// Complexity: O(n).
func (l *DoublyLinkedList[T]) Len() int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}

	return count
}

// IsEmpty reports whether the list holds no nodes.
func (l *DoublyLinkedList[T]) IsEmpty() bool { return l.head == nil }

// Traverse calls visit for each element from head to tail.
// Complexity: O(n).
func (l *DoublyLinkedList[T]) Traverse(visit func(T)) {
	for n := l.head; n != nil; n = n.next {
		visit(n.data)
	}
}

// TraverseBackward calls visit for each element from tail to head.
// Complexity: O(n).
func (l *DoublyLinkedList[T]) TraverseBackward(visit func(T)) {
	for n := l.tail; n != nil; n = n.prev {
		visit(n.data)
	}
}

// Find returns the index of the first occurrence of value (0 = head), or
// core.ErrItemNotFound when no node holds it.
// Complexity: O(n).
func (l *DoublyLinkedList[T]) Find(value T) (int, error) {
	idx := 0
	for n := l.head; n != nil; n = n.next {
		if n.data == value {
			return idx, nil
		}
		idx++
	}

	return 0, core.ErrItemNotFound
}

// ToSlice returns the elements from head to tail.
// Complexity: O(n).
func (l *DoublyLinkedList[T]) ToSlice() []T {
	out := make([]T, 0, l.Len())
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.data)
	}

	return out
}

// PushFront inserts value before the current head.
// Complexity: O(1).
func (l *DoublyLinkedList[T]) PushFront(value T) {
	node := &dllNode[T]{data: value, next: l.head}
	if l.head != nil {
		l.head.prev = node
	} else {
		l.tail = node
	}
	l.head = node
}

// PushBack appends value after the current tail.
// Complexity: O(1).
func (l *DoublyLinkedList[T]) PushBack(value T) {
	node := &dllNode[T]{data: value, prev: l.tail}
	if l.tail != nil {
		l.tail.next = node
	} else {
		l.head = node
	}
	l.tail = node
}

// InsertAt inserts value so it ends up at position pos (0 = front,
// Len() = back). Returns core.ErrIndexOutOfRange when pos is negative or
// beyond the current length.
// Complexity: O(n).
func (l *DoublyLinkedList[T]) InsertAt(pos int, value T) error {
	size := l.Len()
	if pos < 0 || pos > size {
		return core.ErrIndexOutOfRange
	}
	switch pos {
	case 0:
		l.PushFront(value)
	case size:
		l.PushBack(value)
	default:
		at := l.head
		for i := 0; i < pos; i++ {
			at = at.next
		}
		node := &dllNode[T]{data: value, prev: at.prev, next: at}
		at.prev.next = node
		at.prev = node
	}

	return nil
}

// PopFront removes and returns the head element, or core.ErrEmptyContainer
// when the list is empty.
// Complexity: O(1).
func (l *DoublyLinkedList[T]) PopFront() (T, error) {
	var zero T
	if l.head == nil {
		return zero, core.ErrEmptyContainer
	}
	value := l.head.data
	l.head = l.head.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}

	return value, nil
}

// PopBack removes and returns the tail element, or core.ErrEmptyContainer
// when the list is empty.
// Complexity: O(1).
func (l *DoublyLinkedList[T]) PopBack() (T, error) {
	var zero T
	if l.tail == nil {
		return zero, core.ErrEmptyContainer
	}
	value := l.tail.data
	l.tail = l.tail.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}

	return value, nil
}

// RemoveAt removes the element at position pos. Returns
// core.ErrEmptyContainer on an empty list and core.ErrIndexOutOfRange when
// pos does not denote a live node.
// Complexity: O(n).
func (l *DoublyLinkedList[T]) RemoveAt(pos int) error {
	if l.head == nil {
		return core.ErrEmptyContainer
	}
	size := l.Len()
	if pos < 0 || pos >= size {
		return core.ErrIndexOutOfRange
	}
	switch pos {
	case 0:
		_, err := l.PopFront()
		return err
	case size - 1:
		_, err := l.PopBack()
		return err
	}
	at := l.head
	for i := 0; i < pos; i++ {
		at = at.next
	}
	at.prev.next = at.next
	at.next.prev = at.prev

	return nil
}
