package graph

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCycleFound = errors.New("cycle detected")
)

// GraphError wraps failures of whole-graph algorithms.
type GraphError struct {
	Kind error
	Msg  string
}

func (e *GraphError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *GraphError) Unwrap() error { return e.Kind }

func cycleError(involved []string) error {
	msg := ""
	if len(involved) > 0 {
		msg = "involving " + strings.Join(involved, ", ")
	}
	return &GraphError{Kind: ErrCycleFound, Msg: msg}
}
