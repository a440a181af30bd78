// Package stack provides two generic LIFO stacks.
//
// What:
//
//   - ListStack[T]: linked nodes, unbounded growth, O(1) everything.
//   - ArrayStack[T]: one fixed-capacity block allocated at construction;
//     Push fails with core.ErrContainerFull once the block is exhausted.
//
// Why:
//
//   - ListStack when the depth is unknown; ArrayStack when a hard bound is
//     wanted and per-push allocation is not.
//
// Neither stack is safe for concurrent use.
//
// Errors:
//
//	core.ErrEmptyContainer - Pop or Top on an empty stack.
//	core.ErrContainerFull  - Push on a full ArrayStack.
package stack
