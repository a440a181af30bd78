// Package vector provides a generic dynamic array with amortized-doubling
// growth and a family of four traversal cursors.
//
// What:
//
//   - Vector[T]: contiguous storage tracking length and capacity separately,
//     with PushBack, Insert, PopBack, At, Front, Back, Resize, ShrinkToFit
//     and Assign.
//   - Cursors: Iter, ConstIter, ReverseIter, ConstReverseIter — direction ×
//     mutability over one shared core — obtained from Begin/End,
//     ConstBegin/ConstEnd, ReverseBegin/ReverseEnd and their reverse
//     read-only twins.
//   - All/Backward: iter.Seq views for range-over-func loops.
//
// Why:
//
//   - Amortized O(1) append: capacity doubles on overflow (a zero capacity
//     grows to 1), so the occasional full-copy reallocation averages out.
//   - One reallocation primitive backs growth, Resize and ShrinkToFit, so
//     the block is always exactly the requested size.
//
// Complexity:
//
//   - PushBack: amortized O(1). Insert: O(n). PopBack/At/Front/Back: O(1).
//   - Resize/ShrinkToFit/Assign: O(n).
//
// Invalidation contract (documented, not runtime-enforced): any operation
// that may reallocate invalidates all outstanding cursors over the vector;
// an Insert within capacity invalidates cursors at or after the insert
// point. Re-acquire cursors after any structural mutation. Dereferencing or
// advancing a sentinel (End/ReverseEnd) is undefined behavior, not a
// recoverable error.
//
// Vector is not safe for concurrent use.
//
// Errors:
//
//	core.ErrIndexOutOfRange - At or Insert with an index outside the valid range, Resize with a negative size.
//	core.ErrEmptyContainer  - PopBack, Front or Back on an empty vector.
package vector
