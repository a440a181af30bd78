// Package alglib is a small library of generic in-memory containers:
// a growable vector with a full cursor family, singly and doubly linked
// lists, stacks and queues in both linked and fixed-capacity flavors.
//
// What you get:
//
//   - vector/ — dynamic array with amortized-doubling growth, four traversal
//     cursors (forward/reverse × mutable/read-only) and iter.Seq views
//   - list/   — singly and doubly linked lists with positional operations
//   - stack/  — linked stack and fixed-capacity array stack
//   - queue/  — linked queue and fixed-capacity circular (ring) queue
//   - core/   — the error taxonomy and Container contract they all share
//
// Why:
//
//   - One uniform failure surface: every container raises the same sentinel
//     errors (core.ErrIndexOutOfRange, core.ErrEmptyContainer,
//     core.ErrContainerFull, core.ErrItemNotFound), matched with errors.Is
//   - Pure Go, generics throughout, no dependencies outside the test suite
//   - Single-threaded by contract: no internal locking, no hidden goroutines
//
// Quick taste:
//
//	v := vector.NewFrom(3, 6, 12, 1, 20)
//	for it := v.ReverseBegin(); it.NotEqual(v.ReverseEnd()); it.Next() {
//		fmt.Println(it.Value()) // 20 1 12 6 3
//	}
//
// Each subpackage documents its own complexity guarantees and its cursor or
// capacity contract; start with package vector, the heart of the library.
//
//	go get github.com/pwalczak/alglib
package alglib
