package graph

// Node is the per-object policy the discovery loop drives.
//
// T is the wrapped domain object and N is the concrete node type itself, which
// lets BuildNode return the caller's own variant without type assertions.
type Node[T comparable, N any] interface {
	// Current returns the wrapped object.
	Current() T
	// Adjacents returns the object's graph predecessors in their declared
	// order. It never returns an error: an object without predecessors yields
	// an empty slice.
	Adjacents() []T
	// BuildNode wraps another object the same way this node wraps its own.
	BuildNode(t T) N
}
