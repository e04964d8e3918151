// internal/nodeid/address.go
package nodeid

// String serializes the Address into its canonical `kind.name` representation.
func (a *Address) String() string {
	if a == nil {
		return ""
	}
	if a.IsZero() {
		return ""
	}
	return a.Kind + "." + a.Name
}

// Reference returns the form used to refer to this address from a plan file.
func (a *Address) Reference() string {
	if a == nil || a.IsZero() {
		return ""
	}
	return RootName + "." + a.String()
}

// Equal checks for equality between two Address pointers.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Kind == other.Kind && a.Name == other.Name
}
