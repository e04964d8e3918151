// internal/nodeid/parser.go
package nodeid

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// segmentRegex matches a single component of an address.
var segmentRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)

func validateSegment(what, s string) error {
	if s == "" {
		return fmt.Errorf("operator %s cannot be empty", what)
	}
	if !segmentRegex.MatchString(s) {
		return fmt.Errorf("invalid operator %s: %q", what, s)
	}
	return nil
}

// Parse creates a new Address by parsing its canonical string representation.
// The `operator.` prefix used inside plan files is accepted as well.
func Parse(rawID string) (*Address, error) {
	if rawID == "" {
		return nil, fmt.Errorf("identifier cannot be empty")
	}

	parts := strings.Split(rawID, ".")
	if len(parts) == 3 && parts[0] == RootName {
		parts = parts[1:]
	}
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid operator address %q: expected kind.name", rawID)
	}
	if err := validateSegment("kind", parts[0]); err != nil {
		return nil, err
	}
	if err := validateSegment("name", parts[1]); err != nil {
		return nil, err
	}

	return &Address{Kind: parts[0], Name: parts[1]}, nil
}

// FromTraversal converts an `operator.kind.name` traversal into an Address.
func FromTraversal(t hcl.Traversal) (*Address, hcl.Diagnostics) {
	invalid := func(detail string) hcl.Diagnostics {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid operator reference",
			Detail:   detail,
			Subject:  t.SourceRange().Ptr(),
		}}
	}

	if len(t) != 3 || t.RootName() != RootName {
		return nil, invalid(fmt.Sprintf("An operator reference must have the form %s.<kind>.<name>.", RootName))
	}

	kind, ok := t[1].(hcl.TraverseAttr)
	if !ok {
		return nil, invalid("The operator kind must be an attribute name, not an index.")
	}
	name, ok := t[2].(hcl.TraverseAttr)
	if !ok {
		return nil, invalid("The operator name must be an attribute name, not an index.")
	}

	if err := validateSegment("kind", kind.Name); err != nil {
		return nil, invalid(err.Error())
	}
	if err := validateSegment("name", name.Name); err != nil {
		return nil, invalid(err.Error())
	}
	return &Address{Kind: kind.Name, Name: name.Name}, nil
}
