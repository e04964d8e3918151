package planhcl

import (
	"context"
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/plangraph/internal/ctxlog"
	"github.com/specialistvlad/plangraph/internal/fsutil"
	"github.com/specialistvlad/plangraph/internal/hclutil"
	"github.com/specialistvlad/plangraph/internal/nodeid"
	"github.com/specialistvlad/plangraph/internal/operator"
)

const inputsAttr = "inputs"

// Loader reads plan files from disk.
type Loader struct{}

// NewLoader creates a new HCL plan loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top-level blocks of a plan file.
type fileRoot struct {
	Operators []*operatorBlock `hcl:"operator,block"`
}

// operatorBlock represents a single 'operator' block for initial decoding.
type operatorBlock struct {
	Kind string   `hcl:"kind,label"`
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// inputRef is an unresolved reference from an `inputs` list.
type inputRef struct {
	traversal hcl.Traversal
	addr      nodeid.Address
}

// declared keeps what the first pass learned about an operator.
type declared struct {
	op     *operator.Op
	inputs []inputRef
}

// Load parses every .hcl file under paths and returns the linked plan.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL plan loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to find plan files: %w", err)
	}

	plan := newPlan()
	if len(files) == 0 {
		logger.Warn("No .hcl plan files found, returning empty plan.", "paths", paths)
		return plan, nil
	}
	logger.Debug("Discovered plan files.", "count", len(files))

	parser := hclparse.NewParser()
	var pending []*declared

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Operators {
			d, diags := l.translateOperator(block)
			if diags.HasErrors() {
				return nil, fmt.Errorf("invalid operator in %s: %w", file, diags)
			}
			if _, exists := plan.byAddr[d.op.ID]; exists {
				return nil, fmt.Errorf("duplicate operator %q in %s", d.op.ID.String(), file)
			}
			plan.byAddr[d.op.ID] = d.op
			plan.operators = append(plan.operators, d.op)
			pending = append(pending, d)
		}
	}
	logger.Debug("Operator declaration pass complete.", "operator_count", len(plan.operators))

	for _, d := range pending {
		if err := l.linkInputs(ctx, plan, d); err != nil {
			return nil, err
		}
	}
	logger.Debug("Operator linking pass complete.")

	logger.Info("Plan loaded successfully.", "files", len(files), "operators", len(plan.operators))
	return plan, nil
}

// translateOperator turns a decoded block into an operator with its static
// attributes and its still unresolved input references.
func (l *Loader) translateOperator(block *operatorBlock) (*declared, hcl.Diagnostics) {
	addr := nodeid.New(block.Kind, block.Name)
	if _, err := nodeid.Parse(addr.String()); err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid operator labels",
			Detail:   err.Error(),
			Subject:  block.Body.MissingItemRange().Ptr(),
		}}
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	d := &declared{op: operator.New(addr)}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		attr := attrs[name]
		if name == inputsAttr {
			refs, refDiags := parseInputs(attr.Expr)
			diags = append(diags, refDiags...)
			d.inputs = refs
			continue
		}

		val, valDiags := attr.Expr.Value(nil)
		if valDiags.HasErrors() {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Attribute must be static",
				Detail:   fmt.Sprintf("The attribute %q of %s cannot refer to other objects or functions.", name, addr.Reference()),
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}
		d.op.Attributes[name] = val
	}

	return d, diags
}

// parseInputs reads the `inputs` list, keeping the declared order.
func parseInputs(expr hcl.Expression) ([]inputRef, hcl.Diagnostics) {
	exprs, diags := hcl.ExprList(expr)
	if diags.HasErrors() {
		return nil, diags
	}

	refs := make([]inputRef, 0, len(exprs))
	for _, e := range exprs {
		trav, travDiags := hcl.AbsTraversalForExpr(e)
		if travDiags.HasErrors() {
			diags = append(diags, travDiags...)
			continue
		}
		addr, addrDiags := nodeid.FromTraversal(trav)
		if addrDiags.HasErrors() {
			diags = append(diags, addrDiags...)
			continue
		}
		refs = append(refs, inputRef{traversal: trav, addr: *addr})
	}
	return refs, diags
}

// linkInputs resolves an operator's input references against the plan.
func (l *Loader) linkInputs(ctx context.Context, plan *Plan, d *declared) error {
	logger := ctxlog.FromContext(ctx).With("operator", d.op.ID.String())

	inputs := make([]operator.Operator, 0, len(d.inputs))
	for _, ref := range d.inputs {
		in, ok := plan.Lookup(ref.addr)
		if !ok {
			return fmt.Errorf("%s: operator %q refers to undeclared input %s",
				ref.traversal.SourceRange().String(), d.op.ID.String(), hclutil.TraversalString(ref.traversal))
		}
		logger.Debug("Linked input.", "input", hclutil.TraversalString(ref.traversal))
		inputs = append(inputs, in)
	}
	d.op.SetInputs(inputs...)
	return nil
}
