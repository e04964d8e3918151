package opgraph

import (
	"context"

	"github.com/specialistvlad/plangraph/internal/ctxlog"
	"github.com/specialistvlad/plangraph/internal/graph"
	"github.com/specialistvlad/plangraph/internal/operator"
)

// OperatorGraph is a graph of plain operator nodes.
type OperatorGraph = graph.Graph[operator.Operator, *OperatorNode]

// Build discovers every operator reachable from seeds and wraps each in an
// OperatorNode.
func Build(ctx context.Context, seeds ...operator.Operator) *OperatorGraph {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting operator discovery.", "variant", "plain", "seed_count", len(seeds))

	g := graph.Build(NewOperatorNode, seeds)

	logger.Debug("Build: Operator discovery complete.", "node_count", g.Len())
	return g
}

// BuildSlotted discovers every operator reachable from seeds and wraps each in
// a SlottedNode with an empty slot.
func BuildSlotted[A any](ctx context.Context, seeds ...operator.Operator) *graph.Graph[operator.Operator, *SlottedNode[A]] {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting operator discovery.", "variant", "slotted", "seed_count", len(seeds))

	g := graph.Build(NewSlottedNode[A], seeds)

	logger.Debug("Build: Operator discovery complete.", "node_count", g.Len())
	return g
}
