// Package core defines the contracts shared by every container in
// github.com/pwalczak/alglib: the error taxonomy and the minimal Container
// interface.
//
// What:
//
//   - Sentinel errors raised by all containers (vector, list, stack, queue),
//     matched with errors.Is.
//   - Container: the Len/IsEmpty contract common to all of them.
//
// Why:
//
//   - A single taxonomy lets calling code handle a bounds failure or an
//     empty-container failure the same way whichever structure raised it.
//
// Errors:
//
//	ErrIndexOutOfRange - index outside the valid range.
//	ErrEmptyContainer  - removal or peek on an empty container.
//	ErrContainerFull   - insertion on an exhausted fixed-capacity container.
//	ErrItemNotFound    - searched value not present.
package core
