/*
Package planhcl loads pipeline plans written in HCL into operator objects.

A plan is a set of `operator` blocks. Each block is labelled with the
operator's kind and name and may list its inputs as references to other
operators:

	operator "source" "lines" {
	  path = "input.txt"
	}

	operator "map" "upper" {
	  inputs = [operator.source.lines]
	}

	operator "sink" "out" {
	  inputs = [operator.map.upper]
	}

Loading happens in two passes. The first pass decodes every block from every
file and creates one *operator.Op per address. The second pass resolves the
`inputs` references and links the operators together, so a block may refer to
an operator declared later or in another file. All other attributes must be
static values; they are kept as cty.Value on the operator.
*/
package planhcl
