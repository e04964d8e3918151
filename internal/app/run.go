package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/plangraph/internal/ctxlog"
	"github.com/specialistvlad/plangraph/internal/graph"
	"github.com/specialistvlad/plangraph/internal/operator"
	"github.com/specialistvlad/plangraph/internal/opgraph"
)

// Run loads the plan, materializes the operator graph reachable from the
// configured seeds and writes a report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "variant", a.config.Variant)

	plan, err := a.loader.Load(ctx, a.config.PlanPath)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}

	seeds, err := plan.Seeds(a.config.Seeds)
	if err != nil {
		return err
	}
	a.logger.Debug("Seeds resolved.", "count", len(seeds))

	var r *report
	switch a.config.Variant {
	case VariantSlotted:
		g := opgraph.BuildSlotted[int](ctx, seeds...)
		if err := opgraph.AnnotateDepth(g); err != nil {
			return fmt.Errorf("plan is not a DAG: %w", err)
		}
		r, err = newReport(g, func(n *opgraph.SlottedNode[int]) (int, bool) { return n.Slot() })
	default:
		g := opgraph.Build(ctx, seeds...)
		r, err = newReport(g, nil)
	}
	if err != nil {
		return fmt.Errorf("plan is not a DAG: %w", err)
	}

	r.declared = len(plan.Operators())
	r.unreachable = r.pruned(plan.All())
	for _, op := range r.unreachable {
		a.logger.Warn("Operator does not contribute to any seed.", "operator", fmt.Sprint(op))
	}

	if err := r.write(a.outW); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.", "reachable", r.reachable)
	return nil
}

// unreachableFrom is bound per graph so the report can stay variant-agnostic.
type unreachableFrom func(all []operator.Operator) []operator.Operator

func unreachableIn[N graph.Node[operator.Operator, N]](g *graph.Graph[operator.Operator, N]) unreachableFrom {
	return g.Unreachable
}
