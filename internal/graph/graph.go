package graph

import "iter"

// Graph is the materialized set of nodes reachable from a set of seeds.
type Graph[T comparable, N Node[T, N]] struct {
	// nodes maps each discovered object to its single node.
	nodes map[T]N
	// order records discovery order, which is breadth-first from the seeds.
	order []T
	// seeds holds the starting objects, deduplicated, in the order given.
	seeds []T
}

// pending is a discovered object waiting to be wrapped, together with the
// factory of the node that discovered it.
type pending[T comparable, N any] struct {
	value T
	build func(T) N
}

// Build discovers every object reachable from seeds through Adjacents and
// wraps each one exactly once.
//
// Seeds are wrapped with newNode; every other object is wrapped by the
// BuildNode of the node that discovered it. Objects are deduplicated by
// equality of T, which makes the traversal terminate on shared predecessors
// and on cyclic structures alike. Zero-valued predecessors (a nil operator in
// an input list) are not objects and are skipped.
//
// An empty seed collection yields an empty graph.
func Build[T comparable, N Node[T, N]](newNode func(T) N, seeds []T) *Graph[T, N] {
	g := &Graph[T, N]{
		nodes: make(map[T]N),
	}

	var zero T
	queued := make(map[T]struct{}, len(seeds))
	queue := make([]pending[T, N], 0, len(seeds))

	for _, s := range seeds {
		if s == zero {
			continue
		}
		if _, ok := queued[s]; ok {
			continue
		}
		queued[s] = struct{}{}
		g.seeds = append(g.seeds, s)
		queue = append(queue, pending[T, N]{value: s, build: newNode})
	}

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		if _, ok := g.nodes[next.value]; ok {
			continue
		}

		n := next.build(next.value)
		g.nodes[next.value] = n
		g.order = append(g.order, next.value)

		for _, adj := range n.Adjacents() {
			if adj == zero {
				continue
			}
			if _, ok := queued[adj]; ok {
				continue
			}
			queued[adj] = struct{}{}
			queue = append(queue, pending[T, N]{value: adj, build: n.BuildNode})
		}
	}

	return g
}

// Len returns the number of discovered nodes.
func (g *Graph[T, N]) Len() int {
	return len(g.nodes)
}

// Node returns the node wrapping t.
func (g *Graph[T, N]) Node(t T) (N, bool) {
	n, ok := g.nodes[t]
	return n, ok
}

// Contains reports whether t was discovered.
func (g *Graph[T, N]) Contains(t T) bool {
	_, ok := g.nodes[t]
	return ok
}

// Nodes returns all nodes in discovery order.
func (g *Graph[T, N]) Nodes() []N {
	out := make([]N, 0, len(g.order))
	for _, t := range g.order {
		out = append(out, g.nodes[t])
	}
	return out
}

// All iterates over every object and its node in discovery order.
func (g *Graph[T, N]) All() iter.Seq2[T, N] {
	return func(yield func(T, N) bool) {
		for _, t := range g.order {
			if !yield(t, g.nodes[t]) {
				return
			}
		}
	}
}

// Seeds returns the nodes of the starting objects.
func (g *Graph[T, N]) Seeds() []N {
	out := make([]N, 0, len(g.seeds))
	for _, t := range g.seeds {
		out = append(out, g.nodes[t])
	}
	return out
}

// Adjacents resolves n's current predecessors to their nodes. Predecessors
// that were not part of the graph at build time are omitted.
func (g *Graph[T, N]) Adjacents(n N) []N {
	adjs := n.Adjacents()
	out := make([]N, 0, len(adjs))
	for _, t := range adjs {
		if m, ok := g.nodes[t]; ok {
			out = append(out, m)
		}
	}
	return out
}

// Successors returns the nodes that list n as a predecessor, in discovery
// order.
func (g *Graph[T, N]) Successors(n N) []N {
	target := n.Current()
	var out []N
	for _, t := range g.order {
		m := g.nodes[t]
		for _, adj := range m.Adjacents() {
			if adj == target {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// Sources returns the nodes without predecessors, in discovery order.
func (g *Graph[T, N]) Sources() []N {
	var out []N
	for _, t := range g.order {
		n := g.nodes[t]
		if len(g.Adjacents(n)) == 0 {
			out = append(out, n)
		}
	}
	return out
}

// Sinks returns the nodes no other node lists as a predecessor, in discovery
// order.
func (g *Graph[T, N]) Sinks() []N {
	consumed := make(map[T]struct{}, len(g.nodes))
	for _, t := range g.order {
		for _, adj := range g.nodes[t].Adjacents() {
			consumed[adj] = struct{}{}
		}
	}

	var out []N
	for _, t := range g.order {
		if _, ok := consumed[t]; !ok {
			out = append(out, g.nodes[t])
		}
	}
	return out
}
