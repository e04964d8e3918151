package app

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/specialistvlad/plangraph/internal/graph"
	"github.com/specialistvlad/plangraph/internal/hclutil"
	"github.com/specialistvlad/plangraph/internal/operator"
)

// row is one operator line of the report, in topological order.
type row struct {
	op       operator.Operator
	inputs   []string
	depth    int
	hasDepth bool
}

// report is the variant-agnostic summary of a built graph.
type report struct {
	declared  int
	reachable int

	seeds   []string
	sources []string
	sinks   []string
	rows    []row

	unreachable []operator.Operator
	pruned      unreachableFrom
}

// newReport summarizes g. depth, when given, reads a per-node depth computed
// by an earlier pass.
func newReport[N graph.Node[operator.Operator, N]](g *graph.Graph[operator.Operator, N], depth func(N) (int, bool)) (*report, error) {
	order, err := g.TopologicalOrder()
	if err != nil {
		return nil, err
	}

	r := &report{
		reachable: g.Len(),
		seeds:     labels(g.Seeds()),
		sources:   labels(g.Sources()),
		sinks:     labels(g.Sinks()),
		pruned:    unreachableIn(g),
	}
	for _, n := range order {
		rw := row{op: n.Current()}
		for _, in := range n.Adjacents() {
			rw.inputs = append(rw.inputs, fmt.Sprint(in))
		}
		if depth != nil {
			rw.depth, rw.hasDepth = depth(n)
		}
		r.rows = append(r.rows, rw)
	}
	return r, nil
}

func labels[N graph.Node[operator.Operator, N]](nodes []N) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, fmt.Sprint(n.Current()))
	}
	return out
}

func list(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

// attributes renders an operator's static attributes as HCL assignments.
func attributes(op operator.Operator) string {
	o, ok := op.(*operator.Op)
	if !ok || len(o.Attributes) == 0 {
		return ""
	}
	names := make([]string, 0, len(o.Attributes))
	for name := range o.Attributes {
		names = append(names, name)
	}
	slices.Sort(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s = %s", name, hclutil.ValueString(o.Attributes[name])))
	}
	return strings.Join(parts, ", ")
}

func (r *report) write(w io.Writer) error {
	unreachable := make([]string, 0, len(r.unreachable))
	for _, op := range r.unreachable {
		unreachable = append(unreachable, fmt.Sprint(op))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "plan:\t%d declared, %d reachable\n", r.declared, r.reachable)
	fmt.Fprintf(tw, "seeds:\t%s\n", list(r.seeds))
	fmt.Fprintf(tw, "sources:\t%s\n", list(r.sources))
	fmt.Fprintf(tw, "sinks:\t%s\n", list(r.sinks))
	fmt.Fprintf(tw, "unreachable:\t%s\n", list(unreachable))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.rows) == 0 {
		_, err := fmt.Fprintln(w, "order: empty")
		return err
	}

	fmt.Fprintln(w, "order:")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, rw := range r.rows {
		inputs := "-"
		if len(rw.inputs) > 0 {
			inputs = "<- " + strings.Join(rw.inputs, ", ")
		}
		if rw.hasDepth {
			fmt.Fprintf(tw, "  %d\tdepth %d\t%v\t%s\t%s\n", i+1, rw.depth, rw.op, inputs, attributes(rw.op))
		} else {
			fmt.Fprintf(tw, "  %d\t%v\t%s\t%s\n", i+1, rw.op, inputs, attributes(rw.op))
		}
	}
	return tw.Flush()
}
