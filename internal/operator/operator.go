// Package operator defines the pipeline operator model consumed by the graph
// layer. An operator only knows its predecessors ("inputs"); the structure as
// a whole is materialized by package opgraph.
package operator

import (
	"github.com/specialistvlad/plangraph/internal/nodeid"
	"github.com/zclconf/go-cty/cty"
)

// Operator is one stage of a processing pipeline.
//
// Implementations must be comparable, in practice pointer types: the graph
// layer deduplicates operators by interface identity. Both methods must be
// free of side effects and stable for the duration of a graph build.
type Operator interface {
	// Inputs returns the number of predecessors the operator declares.
	Inputs() int
	// InputOperators returns the predecessors in declared order. It may
	// return nil for an operator that has no inputs wired.
	InputOperators() []Operator
}

// Op is the concrete operator produced by the plan loader.
type Op struct {
	ID         nodeid.Address
	Attributes map[string]cty.Value

	inputs []Operator
}

// New creates an operator with the given address and ordered inputs.
func New(id nodeid.Address, inputs ...Operator) *Op {
	op := &Op{
		ID:         id,
		Attributes: make(map[string]cty.Value),
	}
	op.SetInputs(inputs...)
	return op
}

// SetInputs replaces the operator's predecessors. The loader links operators
// in a second pass, after every block has been decoded.
func (o *Op) SetInputs(inputs ...Operator) {
	if len(inputs) == 0 {
		o.inputs = nil
		return
	}
	o.inputs = append([]Operator(nil), inputs...)
}

// Inputs implements Operator.
func (o *Op) Inputs() int {
	if o == nil {
		return 0
	}
	return len(o.inputs)
}

// InputOperators implements Operator.
func (o *Op) InputOperators() []Operator {
	if o == nil {
		return nil
	}
	return o.inputs
}

// IsSource reports whether the operator declares no inputs.
func (o *Op) IsSource() bool {
	return o.Inputs() == 0
}

func (o *Op) String() string {
	if o == nil {
		return "<nil>"
	}
	return o.ID.String()
}
