// internal/nodeid/doc.go

/*
Package nodeid provides a structured, type-safe representation for operator
addresses within a plan, based on the canonical format `kind.name`.

Plan files refer to operators with the traversal `operator.<kind>.<name>`;
seeds given on the command line use the shorter `<kind>.<name>` form. Both are
parsed here so the formatting rules live in one place.
*/
package nodeid
