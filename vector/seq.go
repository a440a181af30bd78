package vector

import "iter"

// All returns a range-over-func sequence visiting the live elements in
// index order. The sequence reads through the backing block directly, so the
// same invalidation contract as for cursors applies: do not mutate the
// vector structurally while ranging.
// Complexity: O(n) for a full traversal.
func (v *Vector[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// Backward returns a range-over-func sequence visiting the live elements in
// reverse index order.
// Complexity: O(n) for a full traversal.
func (v *Vector[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := v.length - 1; i >= 0; i-- {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}
