package planhcl

import (
	"fmt"

	"github.com/specialistvlad/plangraph/internal/nodeid"
	"github.com/specialistvlad/plangraph/internal/operator"
)

// Plan is the set of operators declared across all loaded files.
type Plan struct {
	// operators holds every operator in declaration order.
	operators []*operator.Op
	byAddr    map[nodeid.Address]*operator.Op
}

func newPlan() *Plan {
	return &Plan{byAddr: make(map[nodeid.Address]*operator.Op)}
}

// Operators returns every declared operator in declaration order.
func (p *Plan) Operators() []*operator.Op {
	out := make([]*operator.Op, len(p.operators))
	copy(out, p.operators)
	return out
}

// All returns every declared operator as an operator.Operator.
func (p *Plan) All() []operator.Operator {
	out := make([]operator.Operator, 0, len(p.operators))
	for _, op := range p.operators {
		out = append(out, op)
	}
	return out
}

// Lookup returns the operator declared at addr.
func (p *Plan) Lookup(addr nodeid.Address) (*operator.Op, bool) {
	op, ok := p.byAddr[addr]
	return op, ok
}

// Sinks returns the operators that no other operator takes as input, in
// declaration order. They are the default seeds of a plan.
func (p *Plan) Sinks() []operator.Operator {
	consumed := make(map[*operator.Op]struct{})
	for _, op := range p.operators {
		for _, in := range op.InputOperators() {
			if inOp, ok := in.(*operator.Op); ok {
				consumed[inOp] = struct{}{}
			}
		}
	}

	var out []operator.Operator
	for _, op := range p.operators {
		if _, ok := consumed[op]; !ok {
			out = append(out, op)
		}
	}
	return out
}

// Seeds resolves raw `kind.name` addresses to operators. Without addresses
// the plan's sinks are returned.
func (p *Plan) Seeds(raw []string) ([]operator.Operator, error) {
	if len(raw) == 0 {
		return p.Sinks(), nil
	}

	out := make([]operator.Operator, 0, len(raw))
	for _, r := range raw {
		addr, err := nodeid.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", r, err)
		}
		op, ok := p.Lookup(*addr)
		if !ok {
			return nil, fmt.Errorf("seed %q does not name a declared operator", r)
		}
		out = append(out, op)
	}
	return out, nil
}
