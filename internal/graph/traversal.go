package graph

import "fmt"

// Walk visits every node depth-first, starting at the seeds and moving towards
// predecessors. Each node is visited exactly once, together with the node that
// first reached it; seeds are visited with the zero parent. Walking stops at
// the first error returned by visit.
func (g *Graph[T, N]) Walk(visit func(node, parent N) error) error {
	visited := make(map[T]struct{}, len(g.nodes))

	var walk func(n, parent N) error
	walk = func(n, parent N) error {
		t := n.Current()
		if _, ok := visited[t]; ok {
			return nil
		}
		visited[t] = struct{}{}

		if err := visit(n, parent); err != nil {
			return err
		}
		for _, adj := range g.Adjacents(n) {
			if err := walk(adj, n); err != nil {
				return err
			}
		}
		return nil
	}

	var none N
	for _, s := range g.Seeds() {
		if err := walk(s, none); err != nil {
			return err
		}
	}
	return nil
}

// TopologicalOrder returns the nodes with every predecessor placed before the
// nodes that consume it. Ties are broken by discovery order, so the result is
// deterministic for a given seed order.
//
// A cyclic predecessor structure cannot be ordered; the returned error wraps
// ErrCycleFound and names the nodes left on or behind the cycle.
func (g *Graph[T, N]) TopologicalOrder() ([]N, error) {
	index := make(map[T]int, len(g.order))
	for i, t := range g.order {
		index[t] = i
	}

	// remaining[i] counts the distinct unplaced predecessors of node i;
	// consumers[i] lists the nodes that take node i as input.
	remaining := make([]int, len(g.order))
	consumers := make([][]int, len(g.order))
	for i, t := range g.order {
		seen := make(map[int]struct{})
		for _, adj := range g.nodes[t].Adjacents() {
			j, ok := index[adj]
			if !ok {
				continue
			}
			if _, dup := seen[j]; dup {
				continue
			}
			seen[j] = struct{}{}
			remaining[i]++
			consumers[j] = append(consumers[j], i)
		}
	}

	placed := make([]bool, len(g.order))
	out := make([]N, 0, len(g.order))
	for len(out) < len(g.order) {
		progressed := false
		for i, t := range g.order {
			if placed[i] || remaining[i] > 0 {
				continue
			}
			placed[i] = true
			progressed = true
			out = append(out, g.nodes[t])
			for _, c := range consumers[i] {
				remaining[c]--
			}
		}
		if !progressed {
			var involved []string
			for i, t := range g.order {
				if !placed[i] {
					involved = append(involved, fmt.Sprint(t))
				}
			}
			return nil, cycleError(involved)
		}
	}
	return out, nil
}

// Unreachable returns the objects of all that the graph did not discover,
// preserving their order. It is used to report operators that do not
// contribute to any seed.
func (g *Graph[T, N]) Unreachable(all []T) []T {
	var out []T
	for _, t := range all {
		if !g.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}
