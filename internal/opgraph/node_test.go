package opgraph

import (
	"testing"

	"github.com/specialistvlad/plangraph/internal/nodeid"
	"github.com/specialistvlad/plangraph/internal/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// declaredOp lets tests set the declared input count independently of the
// input list, the way a partially wired operator looks.
type declaredOp struct {
	name     string
	declared int
	inputs   []operator.Operator
}

func (o *declaredOp) Inputs() int                         { return o.declared }
func (o *declaredOp) InputOperators() []operator.Operator { return o.inputs }
func (o *declaredOp) String() string                      { return o.name }

func op(kind, name string, inputs ...operator.Operator) *operator.Op {
	return operator.New(nodeid.New(kind, name), inputs...)
}

func TestOperatorNode_Adjacents(t *testing.T) {
	src := op("source", "a")
	other := op("source", "b")
	join := op("join", "j", other, src)

	testCases := []struct {
		name     string
		node     *OperatorNode
		expected []operator.Operator
	}{
		{
			name:     "source operator",
			node:     NewOperatorNode(src),
			expected: []operator.Operator{},
		},
		{
			name:     "declared order is preserved",
			node:     NewOperatorNode(join),
			expected: []operator.Operator{other, src},
		},
		{
			name:     "nil operator",
			node:     NewOperatorNode(nil),
			expected: []operator.Operator{},
		},
		{
			name:     "zero declared inputs hides the list",
			node:     NewOperatorNode(&declaredOp{name: "x", declared: 0, inputs: []operator.Operator{src}}),
			expected: []operator.Operator{},
		},
		{
			name:     "unset input list",
			node:     NewOperatorNode(&declaredOp{name: "x", declared: 2}),
			expected: []operator.Operator{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.node.Adjacents()
			require.NotNil(t, got)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestOperatorNode_AdjacentsIsACopy(t *testing.T) {
	src := op("source", "a")
	m := op("map", "m", src)

	adj := NewOperatorNode(m).Adjacents()
	adj[0] = nil

	assert.Same(t, src, m.InputOperators()[0])
}

func TestOperatorNode_BuildNode(t *testing.T) {
	src := op("source", "a")
	m := op("map", "m", src)

	base := NewOperatorNode(src)
	built := base.BuildNode(m)

	require.NotSame(t, base, built)
	assert.Same(t, m, built.Current())
	assert.Equal(t, predecessors(m), built.Adjacents())
	assert.Equal(t, "OperatorNode map.m", built.String())
}

func TestSlottedNode_Slot(t *testing.T) {
	n := NewSlottedNode[string](op("source", "a"))

	_, ok := n.Slot()
	assert.False(t, ok)
	assert.Equal(t, "SlottedNode [source.a, <empty>]", n.String())

	n.SetSlot("visited")
	v, ok := n.Slot()
	assert.True(t, ok)
	assert.Equal(t, "visited", v)
	assert.Equal(t, "SlottedNode [source.a, visited]", n.String())

	n.ClearSlot()
	v, ok = n.Slot()
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSlottedNode_BuildNodeResetsSlot(t *testing.T) {
	src := op("source", "a")
	m := op("map", "m", src)

	n := NewSlottedNode[int](m)
	n.SetSlot(42)

	rebuilt := n.BuildNode(m)
	_, ok := rebuilt.Slot()
	assert.False(t, ok, "a freshly built node never inherits a slot")
	assert.Same(t, m, rebuilt.Current())

	v, _ := n.Slot()
	assert.Equal(t, 42, v)
}

func TestSlottedNode_AdjacentsMatchPlain(t *testing.T) {
	a := op("source", "a")
	b := op("source", "b")
	j := op("join", "j", a, b)

	slotted := NewSlottedNode[bool](j)
	slotted.SetSlot(true)

	assert.Equal(t, NewOperatorNode(j).Adjacents(), slotted.Adjacents())
	assert.Empty(t, NewSlottedNode[bool](nil).Adjacents())
}
