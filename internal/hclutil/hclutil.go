// Package hclutil holds small helpers around hashicorp/hcl shared by the plan
// loader and the report writer.
package hclutil

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// TraversalString renders an hcl.Traversal the way it would be written in a
// plan file, e.g. `operator.map.upper`.
func TraversalString(t hcl.Traversal) string {
	return string(hclwrite.TokensForTraversal(t).Bytes())
}

// ValueString renders a cty.Value as an HCL expression, e.g. `"lines.txt"`
// or `[1, 2]`.
func ValueString(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}
	return strings.TrimSpace(string(hclwrite.TokensForValue(v).Bytes()))
}
