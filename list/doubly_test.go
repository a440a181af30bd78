package list

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pwalczak/alglib/core"
)

// TestDoubly_PushBothEnds interleaves PushFront and PushBack and checks the
// resulting order from both directions.
func TestDoubly_PushBothEnds(t *testing.T) {
	l := NewDoubly[int]()
	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	l.PushFront(0)

	got := l.ToSlice()
	want := []int{0, 1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToSlice() = %v; want %v", got, want)
	}

	var backward []int
	l.TraverseBackward(func(v int) { backward = append(backward, v) })
	wantBack := []int{3, 2, 1, 0}
	if !reflect.DeepEqual(backward, wantBack) {
		t.Errorf("TraverseBackward order = %v; want %v", backward, wantBack)
	}
}

// TestDoubly_InsertAt exercises front, middle, back and out-of-range
// positions, then verifies the back links survived by walking backward.
func TestDoubly_InsertAt(t *testing.T) {
	l := NewDoubly[int]()
	l.PushBack(1)
	l.PushBack(3)

	if err := l.InsertAt(1, 2); err != nil {
		t.Fatalf("InsertAt(1) failed: %v", err)
	}
	if err := l.InsertAt(3, 4); err != nil {
		t.Fatalf("InsertAt(tail) failed: %v", err)
	}
	if err := l.InsertAt(0, 0); err != nil {
		t.Fatalf("InsertAt(0) failed: %v", err)
	}

	got := l.ToSlice()
	want := []int{0, 1, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToSlice() = %v; want %v", got, want)
	}

	var backward []int
	l.TraverseBackward(func(v int) { backward = append(backward, v) })
	wantBack := []int{4, 3, 2, 1, 0}
	if !reflect.DeepEqual(backward, wantBack) {
		t.Errorf("TraverseBackward order = %v; want %v", backward, wantBack)
	}

	if err := l.InsertAt(42, 9); !errors.Is(err, core.ErrIndexOutOfRange) {
		t.Errorf("InsertAt(42) error = %v; want ErrIndexOutOfRange", err)
	}
}

// TestDoubly_Pops drains the list from both ends and checks the empty-list
// errors and tail/head pointer maintenance.
func TestDoubly_Pops(t *testing.T) {
	l := NewDoubly[string]()
	l.PushBack("a")
	l.PushBack("b")
	l.PushBack("c")

	front, err := l.PopFront()
	if err != nil || front != "a" {
		t.Fatalf("PopFront() = %q, %v; want \"a\", nil", front, err)
	}
	back, err := l.PopBack()
	if err != nil || back != "c" {
		t.Fatalf("PopBack() = %q, %v; want \"c\", nil", back, err)
	}
	front, err = l.PopFront()
	if err != nil || front != "b" {
		t.Fatalf("PopFront() = %q, %v; want \"b\", nil", front, err)
	}

	if !l.IsEmpty() {
		t.Error("list should be empty after draining")
	}
	if _, err = l.PopFront(); !errors.Is(err, core.ErrEmptyContainer) {
		t.Errorf("PopFront() on empty error = %v; want ErrEmptyContainer", err)
	}
	if _, err = l.PopBack(); !errors.Is(err, core.ErrEmptyContainer) {
		t.Errorf("PopBack() on empty error = %v; want ErrEmptyContainer", err)
	}

	// The list must be reusable after draining.
	l.PushBack("x")
	if got := l.ToSlice(); !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("ToSlice() after refill = %v; want [x]", got)
	}
}

// TestDoubly_RemoveAt removes middle, head and tail positions.
func TestDoubly_RemoveAt(t *testing.T) {
	l := NewDoubly[int]()
	for i := 0; i < 5; i++ {
		l.PushBack(i)
	}

	if err := l.RemoveAt(2); err != nil {
		t.Fatalf("RemoveAt(2) failed: %v", err)
	}
	if err := l.RemoveAt(0); err != nil {
		t.Fatalf("RemoveAt(0) failed: %v", err)
	}
	if err := l.RemoveAt(l.Len() - 1); err != nil {
		t.Fatalf("RemoveAt(tail) failed: %v", err)
	}

	got := l.ToSlice()
	want := []int{1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToSlice() = %v; want %v", got, want)
	}

	if err := l.RemoveAt(7); !errors.Is(err, core.ErrIndexOutOfRange) {
		t.Errorf("RemoveAt(7) error = %v; want ErrIndexOutOfRange", err)
	}

	empty := NewDoubly[int]()
	if err := empty.RemoveAt(0); !errors.Is(err, core.ErrEmptyContainer) {
		t.Errorf("RemoveAt on empty error = %v; want ErrEmptyContainer", err)
	}
}

// TestDoubly_Find checks index reporting and the not-found error.
func TestDoubly_Find(t *testing.T) {
	l := NewDoubly[int]()
	l.PushBack(5)
	l.PushBack(7)
	l.PushBack(9)

	idx, err := l.Find(9)
	if err != nil {
		t.Fatalf("Find(9) failed: %v", err)
	}
	if idx != 2 {
		t.Errorf("Find(9) = %d; want 2", idx)
	}

	if _, err = l.Find(42); !errors.Is(err, core.ErrItemNotFound) {
		t.Errorf("Find(42) error = %v; want ErrItemNotFound", err)
	}
}
