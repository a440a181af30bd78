package vector

// The four cursor variants share one parametric core: a position plus a step
// of +1 (forward) or -1 (reverse). The exported wrappers only vary in
// direction and in whether Ref is offered, so mutability is enforced by the
// type system rather than at runtime.
//
// A cursor is a non-owning reference into the vector's backing block. Any
// reallocating mutation (PushBack past capacity, Insert past capacity,
// Resize, ShrinkToFit, Assign beyond capacity) invalidates every outstanding
// cursor; Insert within capacity invalidates cursors at or after the insert
// point. Dereferencing or advancing a cursor that sits at End/ReverseEnd, or
// using one after invalidation, is a contract violation with undefined
// behavior — the cursor does not detect it.

// cursor is the shared core of the four variants.
type cursor[T any] struct {
	vec  *Vector[T]
	pos  int
	step int
}

func (c *cursor[T]) advance() { c.pos += c.step }

// ref resolves the cursor to its element. Calling it on a sentinel position
// is the caller's contract violation.
func (c cursor[T]) ref() *T { return &c.vec.data[c.pos] }

// samePos reports position identity: same vector, same slot. Cursors over
// different vectors never compare equal.
func (c cursor[T]) samePos(o cursor[T]) bool {
	return c.vec == o.vec && c.pos == o.pos
}

// Iter is a forward, mutable cursor: it advances toward higher indices and
// dereferences to a writable element.
type Iter[T any] struct{ cursor[T] }

// Ref returns a writable pointer to the element at the cursor's position.
func (it Iter[T]) Ref() *T { return it.ref() }

// Value returns the element at the cursor's position.
func (it Iter[T]) Value() T { return *it.ref() }

// Next advances the cursor one slot forward and returns it (the pre form).
func (it *Iter[T]) Next() *Iter[T] {
	it.advance()

	return it
}

// NextPost advances the cursor one slot forward and returns a copy of it as
// it was before advancing (the post form).
func (it *Iter[T]) NextPost() Iter[T] {
	prev := *it
	it.advance()

	return prev
}

// Equal reports whether both cursors denote the same position in the same
// vector.
func (it Iter[T]) Equal(o Iter[T]) bool { return it.samePos(o.cursor) }

// NotEqual is the negation of Equal.
func (it Iter[T]) NotEqual(o Iter[T]) bool { return !it.samePos(o.cursor) }

// ConstIter is a forward, read-only cursor.
type ConstIter[T any] struct{ cursor[T] }

// Value returns the element at the cursor's position.
func (it ConstIter[T]) Value() T { return *it.ref() }

// Next advances the cursor one slot forward and returns it (the pre form).
func (it *ConstIter[T]) Next() *ConstIter[T] {
	it.advance()

	return it
}

// NextPost advances the cursor one slot forward and returns a copy of it as
// it was before advancing (the post form).
func (it *ConstIter[T]) NextPost() ConstIter[T] {
	prev := *it
	it.advance()

	return prev
}

// Equal reports whether both cursors denote the same position in the same
// vector.
func (it ConstIter[T]) Equal(o ConstIter[T]) bool { return it.samePos(o.cursor) }

// NotEqual is the negation of Equal.
func (it ConstIter[T]) NotEqual(o ConstIter[T]) bool { return !it.samePos(o.cursor) }

// ReverseIter is a reverse, mutable cursor: it advances toward lower indices
// and dereferences to a writable element.
type ReverseIter[T any] struct{ cursor[T] }

// Ref returns a writable pointer to the element at the cursor's position.
func (it ReverseIter[T]) Ref() *T { return it.ref() }

// Value returns the element at the cursor's position.
func (it ReverseIter[T]) Value() T { return *it.ref() }

// Next advances the cursor one slot backward and returns it (the pre form).
func (it *ReverseIter[T]) Next() *ReverseIter[T] {
	it.advance()

	return it
}

// NextPost advances the cursor one slot backward and returns a copy of it as
// it was before advancing (the post form).
func (it *ReverseIter[T]) NextPost() ReverseIter[T] {
	prev := *it
	it.advance()

	return prev
}

// Equal reports whether both cursors denote the same position in the same
// vector.
func (it ReverseIter[T]) Equal(o ReverseIter[T]) bool { return it.samePos(o.cursor) }

// NotEqual is the negation of Equal.
func (it ReverseIter[T]) NotEqual(o ReverseIter[T]) bool { return !it.samePos(o.cursor) }

// ConstReverseIter is a reverse, read-only cursor.
type ConstReverseIter[T any] struct{ cursor[T] }

// Value returns the element at the cursor's position.
func (it ConstReverseIter[T]) Value() T { return *it.ref() }

// Next advances the cursor one slot backward and returns it (the pre form).
func (it *ConstReverseIter[T]) Next() *ConstReverseIter[T] {
	it.advance()

	return it
}

// NextPost advances the cursor one slot backward and returns a copy of it as
// it was before advancing (the post form).
func (it *ConstReverseIter[T]) NextPost() ConstReverseIter[T] {
	prev := *it
	it.advance()

	return prev
}

// Equal reports whether both cursors denote the same position in the same
// vector.
func (it ConstReverseIter[T]) Equal(o ConstReverseIter[T]) bool { return it.samePos(o.cursor) }

// NotEqual is the negation of Equal.
func (it ConstReverseIter[T]) NotEqual(o ConstReverseIter[T]) bool { return !it.samePos(o.cursor) }

// Begin returns a forward mutable cursor at slot 0. On an empty vector it
// already equals End.
func (v *Vector[T]) Begin() Iter[T] {
	return Iter[T]{cursor[T]{vec: v, pos: 0, step: 1}}
}

// End returns the forward sentinel, one past the last live element.
func (v *Vector[T]) End() Iter[T] {
	return Iter[T]{cursor[T]{vec: v, pos: v.length, step: 1}}
}

// ConstBegin returns a forward read-only cursor at slot 0.
func (v *Vector[T]) ConstBegin() ConstIter[T] {
	return ConstIter[T]{cursor[T]{vec: v, pos: 0, step: 1}}
}

// ConstEnd returns the forward read-only sentinel, one past the last live
// element.
func (v *Vector[T]) ConstEnd() ConstIter[T] {
	return ConstIter[T]{cursor[T]{vec: v, pos: v.length, step: 1}}
}

// ReverseBegin returns a reverse mutable cursor at the last live slot. On an
// empty vector it already equals ReverseEnd.
func (v *Vector[T]) ReverseBegin() ReverseIter[T] {
	return ReverseIter[T]{cursor[T]{vec: v, pos: v.length - 1, step: -1}}
}

// ReverseEnd returns the reverse sentinel, one before slot 0.
func (v *Vector[T]) ReverseEnd() ReverseIter[T] {
	return ReverseIter[T]{cursor[T]{vec: v, pos: -1, step: -1}}
}

// ConstReverseBegin returns a reverse read-only cursor at the last live slot.
func (v *Vector[T]) ConstReverseBegin() ConstReverseIter[T] {
	return ConstReverseIter[T]{cursor[T]{vec: v, pos: v.length - 1, step: -1}}
}

// ConstReverseEnd returns the reverse read-only sentinel, one before slot 0.
func (v *Vector[T]) ConstReverseEnd() ConstReverseIter[T] {
	return ConstReverseIter[T]{cursor[T]{vec: v, pos: -1, step: -1}}
}
