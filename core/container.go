package core

// Container is the minimal contract every container in the library
// satisfies. It deliberately carries no element type: length and emptiness
// are the only questions that make sense for all of them.
type Container interface {
	// Len returns the number of live elements.
	Len() int

	// IsEmpty reports whether the container holds no elements.
	IsEmpty() bool
}
