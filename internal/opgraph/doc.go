/*
Package opgraph binds the generic graph package to pipeline operators.

It provides two node variants over operator.Operator:

  - OperatorNode wraps an operator and nothing else.
  - SlottedNode pairs an operator with an auxiliary slot that starts empty.
    Later passes store per-node state there (a depth, a visited flag, a cost
    estimate) without a side table and without touching the operator.

Both variants report the operator's declared inputs as their adjacents, so the
same discovery loop in graph.Build materializes either kind of graph. Build and
BuildSlotted are the construction entry points; AnnotateDepth is a small pass
that fills the slots of a SlottedNode[int] graph.
*/
package opgraph
