// Package vector implements a generic, growable, contiguous-storage
// container. The backing block is allocated to an exact capacity, grows by
// doubling when an append would overflow it, and is replaced wholesale on
// every reallocation.
package vector

import "github.com/pwalczak/alglib/core"

// defaultCapacity is the number of slots pre-allocated by New, so the first
// few appends never trigger growth.
const defaultCapacity = 4

// Vector is a dynamic array of elements of type T. Elements occupy slots
// [0, length) of a single contiguous backing block of capacity slots;
// length never exceeds capacity.
//
// Vector is not safe for concurrent use; see the package documentation for
// the cursor-invalidation contract.
type Vector[T any] struct {
	// data is the backing block. Its length always equals the vector's
	// capacity; live elements occupy data[:length].
	data []T

	// length counts the live elements.
	length int
}

// New constructs an empty Vector with capacity 4.
// Complexity: O(1).
func New[T any]() *Vector[T] {
	v := &Vector[T]{}
	v.reallocate(defaultCapacity)

	return v
}

// NewWithCapacity constructs an empty Vector pre-sized to n slots.
// A negative n is treated as zero; growth from a zero-capacity vector still
// makes forward progress (capacity 0 grows to 1, then doubles).
// Complexity: O(n).
func NewWithCapacity[T any](n int) *Vector[T] {
	if n < 0 {
		n = 0
	}
	v := &Vector[T]{}
	v.reallocate(n)

	return v
}

// NewFilled constructs a Vector of length n whose slots all hold value.
// Capacity equals n. A negative n is treated as zero.
// Complexity: O(n).
func NewFilled[T any](n int, value T) *Vector[T] {
	if n < 0 {
		n = 0
	}
	v := &Vector[T]{}
	v.reallocate(n)
	for i := 0; i < n; i++ {
		v.data[i] = value
	}
	v.length = n

	return v
}

// NewFrom constructs a Vector holding the given values in order.
// Capacity and length both equal len(values).
// Complexity: O(len(values)).
func NewFrom[T any](values ...T) *Vector[T] {
	v := &Vector[T]{}
	v.reallocate(len(values))
	copy(v.data, values)
	v.length = len(values)

	return v
}

// Assign replaces the vector's contents with the given values, discarding
// everything previously held. The existing block is reused when the values
// fit within the current capacity; otherwise the vector reallocates to
// exactly len(values) slots.
// Complexity: O(len(values)).
func (v *Vector[T]) Assign(values ...T) {
	if len(values) > len(v.data) {
		v.length = 0
		v.reallocate(len(values))
	}
	copy(v.data, values)
	var zero T
	for i := len(values); i < v.length; i++ {
		v.data[i] = zero
	}
	v.length = len(values)
}

// PushBack appends value at index Size(). When length has reached capacity
// the backing block grows first (capacity doubles, or becomes 1 from zero),
// so PushBack always succeeds.
// Complexity: amortized O(1).
func (v *Vector[T]) PushBack(value T) {
	if v.length == len(v.data) {
		v.reallocate(grow(len(v.data)))
	}
	v.data[v.length] = value
	v.length++
}

// Insert writes value at index, shifting the elements at [index, Size())
// one slot rightward. index == Size() appends. Returns ErrIndexOutOfRange
// for index < 0 or index > Size(), leaving the vector untouched.
// Complexity: O(n).
func (v *Vector[T]) Insert(value T, index int) error {
	if index < 0 || index > v.length {
		return core.ErrIndexOutOfRange
	}
	if v.length+1 > len(v.data) {
		v.reallocate(grow(len(v.data)))
	}
	for i := v.length; i > index; i-- {
		v.data[i] = v.data[i-1]
	}
	v.data[index] = value
	v.length++

	return nil
}

// PopBack removes and returns the last element. The vacated slot is zeroed
// so the backing block keeps no stale reference to the removed value.
// Returns ErrEmptyContainer when the vector is empty.
// Complexity: O(1).
func (v *Vector[T]) PopBack() (T, error) {
	var zero T
	if v.length == 0 {
		return zero, core.ErrEmptyContainer
	}
	v.length--
	value := v.data[v.length]
	v.data[v.length] = zero

	return value, nil
}

// At returns a pointer to the element at index, usable for both reading and
// in-place mutation. Returns ErrIndexOutOfRange for index < 0 or
// index >= Size().
// Complexity: O(1).
func (v *Vector[T]) At(index int) (*T, error) {
	if index < 0 || index >= v.length {
		return nil, core.ErrIndexOutOfRange
	}

	return &v.data[index], nil
}

// Front returns a pointer to the first live element, or ErrEmptyContainer
// when the vector is empty.
// Complexity: O(1).
func (v *Vector[T]) Front() (*T, error) {
	if v.length == 0 {
		return nil, core.ErrEmptyContainer
	}

	return &v.data[0], nil
}

// Back returns a pointer to the last live element, or ErrEmptyContainer
// when the vector is empty.
// Complexity: O(1).
func (v *Vector[T]) Back() (*T, error) {
	if v.length == 0 {
		return nil, core.ErrEmptyContainer
	}

	return &v.data[v.length-1], nil
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int { return v.length }

// Len returns the number of live elements. It is an alias of Size satisfying
// core.Container.
func (v *Vector[T]) Len() int { return v.length }

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool { return v.length == 0 }

// Capacity returns the number of allocated slots in the backing block.
func (v *Vector[T]) Capacity() int { return len(v.data) }

// Resize reallocates the backing block to exactly n slots. When n < Size()
// the excess elements are discarded; when n > Size() the slots beyond the
// old length are default-valued and the length is unchanged. Returns
// ErrIndexOutOfRange for negative n, leaving the vector untouched.
// Complexity: O(n).
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return core.ErrIndexOutOfRange
	}
	v.reallocate(n)

	return nil
}

// ShrinkToFit reallocates the backing block to exactly Size() slots, so
// capacity equals length. No elements are lost.
// Complexity: O(n).
func (v *Vector[T]) ShrinkToFit() {
	v.reallocate(v.length)
}

// ToSlice returns a copy of the live elements in order. The returned slice
// shares no storage with the vector.
// Complexity: O(n).
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, v.length)
	copy(out, v.data[:v.length])

	return out
}

// grow is the growth rule applied when an insertion would exceed capacity:
// doubling, except that a zero capacity grows to 1 so growth always makes
// forward progress.
func grow(capacity int) int {
	if capacity == 0 {
		return 1
	}

	return capacity * 2
}

// reallocate is the single mechanism behind growth, Resize and ShrinkToFit.
// It allocates a fresh block of exactly newCap slots, copies the live
// elements that fit (truncating length when newCap < length), and adopts the
// new block; the old one is left to the collector. Every outstanding cursor
// over the vector is invalidated, because the block identity changes.
func (v *Vector[T]) reallocate(newCap int) {
	newData := make([]T, newCap)
	if v.length > newCap {
		v.length = newCap
	}
	copy(newData, v.data[:v.length])
	v.data = newData
}
