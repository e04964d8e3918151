package opgraph

import (
	"fmt"

	"github.com/specialistvlad/plangraph/internal/graph"
	"github.com/specialistvlad/plangraph/internal/operator"
)

// AnnotateDepth stores each node's depth in its slot. Sources have depth 0;
// any other node sits one level above its deepest input.
func AnnotateDepth(g *graph.Graph[operator.Operator, *SlottedNode[int]]) error {
	order, err := g.TopologicalOrder()
	if err != nil {
		return fmt.Errorf("cannot annotate depth: %w", err)
	}

	for _, n := range order {
		depth := 0
		for _, in := range g.Adjacents(n) {
			d, ok := in.Slot()
			if !ok {
				return fmt.Errorf("internal error: input %v of %v has no depth", in.Value, n.Value)
			}
			if d+1 > depth {
				depth = d + 1
			}
		}
		n.SetSlot(depth)
	}
	return nil
}
