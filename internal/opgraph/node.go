package opgraph

import (
	"fmt"

	"github.com/specialistvlad/plangraph/internal/operator"
)

// predecessors normalizes an operator's inputs into a fresh slice. A nil
// operator, zero declared inputs or an unset input list all yield an empty,
// non-nil slice so traversal never sees a missing value.
func predecessors(op operator.Operator) []operator.Operator {
	if op == nil || op.Inputs() == 0 {
		return []operator.Operator{}
	}
	inputs := op.InputOperators()
	out := make([]operator.Operator, len(inputs))
	copy(out, inputs)
	return out
}

// OperatorNode is the plain node variant: it wraps exactly one operator.
type OperatorNode struct {
	op operator.Operator
}

// NewOperatorNode wraps op.
func NewOperatorNode(op operator.Operator) *OperatorNode {
	return &OperatorNode{op: op}
}

// Current returns the wrapped operator.
func (n *OperatorNode) Current() operator.Operator {
	return n.op
}

// Adjacents returns the operator's inputs in declared order.
func (n *OperatorNode) Adjacents() []operator.Operator {
	return predecessors(n.op)
}

// BuildNode wraps another operator as a plain node.
func (n *OperatorNode) BuildNode(op operator.Operator) *OperatorNode {
	return NewOperatorNode(op)
}

func (n *OperatorNode) String() string {
	return fmt.Sprintf("OperatorNode %v", n.op)
}

// SlottedNode is the slotted node variant: an operator plus an auxiliary
// slot owned by whichever pass writes it.
type SlottedNode[A any] struct {
	// Value is the wrapped operator.
	Value operator.Operator

	aux    A
	hasAux bool
}

// NewSlottedNode wraps op with an empty slot.
func NewSlottedNode[A any](op operator.Operator) *SlottedNode[A] {
	return &SlottedNode[A]{Value: op}
}

// Current returns the wrapped operator.
func (n *SlottedNode[A]) Current() operator.Operator {
	return n.Value
}

// Adjacents returns the operator's inputs in declared order. The slot plays
// no part in adjacency.
func (n *SlottedNode[A]) Adjacents() []operator.Operator {
	return predecessors(n.Value)
}

// BuildNode wraps another operator with a fresh, empty slot. Slots are never
// carried over from the node doing the wrapping.
func (n *SlottedNode[A]) BuildNode(op operator.Operator) *SlottedNode[A] {
	return NewSlottedNode[A](op)
}

// Slot returns the slot value and whether one has been set.
func (n *SlottedNode[A]) Slot() (A, bool) {
	return n.aux, n.hasAux
}

// SetSlot stores v in the slot.
func (n *SlottedNode[A]) SetSlot(v A) {
	n.aux = v
	n.hasAux = true
}

// ClearSlot resets the slot to empty.
func (n *SlottedNode[A]) ClearSlot() {
	var zero A
	n.aux = zero
	n.hasAux = false
}

func (n *SlottedNode[A]) String() string {
	if !n.hasAux {
		return fmt.Sprintf("SlottedNode [%v, <empty>]", n.Value)
	}
	return fmt.Sprintf("SlottedNode [%v, %v]", n.Value, n.aux)
}
