// internal/nodeid/types.go
package nodeid

// RootName is the first element of every operator reference in a plan file.
const RootName = "operator"

// Address is the structured representation of a unique operator identifier.
type Address struct {
	Kind string
	Name string
}

// New creates an address from its two components.
func New(kind, name string) Address {
	return Address{Kind: kind, Name: name}
}

// IsZero reports whether the address has no components set.
func (a Address) IsZero() bool {
	return a.Kind == "" && a.Name == ""
}
