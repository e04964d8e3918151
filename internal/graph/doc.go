// Package graph materializes a graph out of objects that only know their
// predecessors.
//
// # Why Graph Package Exists
//
// Pipeline operators reference their inputs and nothing else: there is no
// traversable structure to run whole-graph algorithms on. Build discovers every
// object reachable from a set of seeds and wraps each one exactly once, so that
// passes such as topological ordering or annotation can work on the complete
// node set instead of chasing pointers one hop at a time.
//
// # The Node Contract
//
// The discovery loop is written once, generically, over the Node interface.
// A Node variant decides what counts as adjacent and how a newly discovered
// object gets wrapped; the Graph owns the loop and the identity-keyed node set.
//
//	seeds ──► Build ──► map[T]N ──► Nodes / Adjacents / TopologicalOrder / Walk
//	              ▲
//	              └── N.Adjacents() + N.BuildNode(t)
//
// # Identity
//
// Nodes are keyed by the wrapped object, so T must be comparable and two
// objects are the same graph node exactly when they compare equal. For
// interface or pointer types this is object identity.
//
// # Edges
//
// No edge list is stored. Adjacency is recomputed from the live objects on every
// query; only the node set is fixed at build time.
//
// # Thread-Safety
//
// A Graph is built and queried from a single goroutine. Independent graphs may
// be built concurrently from disjoint seed sets.
package graph
