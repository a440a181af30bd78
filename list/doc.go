// Package list provides generic singly and doubly linked lists with
// node-at-a-time allocation.
//
// What:
//
//   - SinglyLinkedList[T]: forward links only; O(1) PushFront, O(n) tail
//     operations.
//   - DoublyLinkedList[T]: head and tail pointers with two-way links; O(1)
//     operations at both ends, plus backward traversal.
//
// Why:
//
//   - Positional insertion and removal never move other elements, unlike the
//     vector, at the cost of pointer chasing and O(n) indexing.
//
// The element type is constrained to comparable because Find locates values
// with ==; no other operation needs it.
//
// Neither list is safe for concurrent use.
//
// Errors:
//
//	core.ErrIndexOutOfRange - InsertAt/RemoveAt position outside the valid range.
//	core.ErrEmptyContainer  - PopFront/PopBack/RemoveAt on an empty list.
//	core.ErrItemNotFound    - Find on a value not present.
package list
