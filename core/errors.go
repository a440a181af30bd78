package core

import "errors"

// Sentinel errors shared by every container in the library, so callers can
// handle failures uniformly regardless of which container raised them.
var (
	// ErrIndexOutOfRange indicates an index-based access or insertion with
	// an index outside the container's valid range.
	ErrIndexOutOfRange = errors.New("core: index out of range")

	// ErrEmptyContainer indicates a removal or peek attempted on a container
	// with zero live elements.
	ErrEmptyContainer = errors.New("core: container is empty")

	// ErrContainerFull indicates an insertion attempted on a fixed-capacity
	// container whose capacity is exhausted. Growable containers never
	// return it.
	ErrContainerFull = errors.New("core: container is full")

	// ErrItemNotFound indicates a searched-for value is not present.
	ErrItemNotFound = errors.New("core: item not found")
)
