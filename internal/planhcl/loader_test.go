package planhcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/plangraph/internal/nodeid"
	"github.com/specialistvlad/plangraph/internal/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// writePlan writes files (relative name -> content) into a fresh directory.
func writePlan(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func load(t *testing.T, files map[string]string) (*Plan, error) {
	t.Helper()
	return NewLoader().Load(context.Background(), writePlan(t, files))
}

func mustLookup(t *testing.T, p *Plan, raw string) *operator.Op {
	t.Helper()
	addr, err := nodeid.Parse(raw)
	require.NoError(t, err)
	op, ok := p.Lookup(*addr)
	require.True(t, ok, "operator %s not found", raw)
	return op
}

const linearPlan = `
operator "source" "lines" {
  path        = "input.txt"
  parallelism = 4
}

operator "map" "upper" {
  inputs = [operator.source.lines]
}

operator "sink" "out" {
  inputs = [operator.map.upper]
}
`

func TestLoad_LinearPlan(t *testing.T) {
	p, err := load(t, map[string]string{"main.hcl": linearPlan})
	require.NoError(t, err)

	ops := p.Operators()
	require.Len(t, ops, 3)
	assert.Equal(t, "source.lines", ops[0].String())
	assert.Equal(t, "map.upper", ops[1].String())
	assert.Equal(t, "sink.out", ops[2].String())

	src := mustLookup(t, p, "source.lines")
	upper := mustLookup(t, p, "map.upper")
	out := mustLookup(t, p, "sink.out")

	assert.Equal(t, 0, src.Inputs())
	assert.Equal(t, []operator.Operator{src}, upper.InputOperators())
	assert.Equal(t, []operator.Operator{upper}, out.InputOperators())

	assert.True(t, src.Attributes["path"].RawEquals(cty.StringVal("input.txt")))
	assert.True(t, src.Attributes["parallelism"].RawEquals(cty.NumberIntVal(4)))
	assert.Empty(t, upper.Attributes)

	assert.Equal(t, []operator.Operator{out}, p.Sinks())
}

func TestLoad_ForwardReferencesAcrossFiles(t *testing.T) {
	p, err := load(t, map[string]string{
		"a_sink.hcl": `
operator "join" "both" {
  inputs = [operator.source.right, operator.source.left]
}
`,
		"nested/b_sources.hcl": `
operator "source" "left" {}
operator "source" "right" {}
`,
	})
	require.NoError(t, err)

	join := mustLookup(t, p, "join.both")
	left := mustLookup(t, p, "source.left")
	right := mustLookup(t, p, "source.right")

	assert.Equal(t, []operator.Operator{right, left}, join.InputOperators(), "declared order is kept")
	assert.Equal(t, []operator.Operator{join}, p.Sinks())
	assert.Len(t, p.All(), 3)
}

func TestLoad_EmptyDirectory(t *testing.T) {
	p, err := NewLoader().Load(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, p.Operators())
	assert.Empty(t, p.Sinks())
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name:        "syntax error",
			content:     `operator "source" "a" {`,
			errContains: "failed to parse HCL file",
		},
		{
			name:        "unknown top-level block",
			content:     `step "print" "a" {}`,
			errContains: "failed to decode HCL file",
		},
		{
			name: "duplicate operator",
			content: `
operator "source" "a" {}
operator "source" "a" {}
`,
			errContains: `duplicate operator "source.a"`,
		},
		{
			name: "undeclared input",
			content: `
operator "map" "m" {
  inputs = [operator.source.missing]
}
`,
			errContains: "undeclared input operator.source.missing",
		},
		{
			name: "input is not a reference",
			content: `
operator "map" "m" {
  inputs = ["source.a"]
}
`,
			errContains: "invalid operator",
		},
		{
			name: "input has the wrong root",
			content: `
operator "source" "a" {}
operator "map" "m" {
  inputs = [step.source.a]
}
`,
			errContains: "Invalid operator reference",
		},
		{
			name: "inputs is not a list",
			content: `
operator "source" "a" {}
operator "map" "m" {
  inputs = operator.source.a
}
`,
			errContains: "invalid operator",
		},
		{
			name: "non-static attribute",
			content: `
operator "source" "a" {}
operator "map" "m" {
  fn = operator.source.a
}
`,
			errContains: "Attribute must be static",
		},
		{
			name: "invalid labels",
			content: `
operator "bad kind" "a" {}
`,
			errContains: "Invalid operator labels",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := load(t, map[string]string{"main.hcl": tc.content})
			require.Error(t, err)
			assert.Nil(t, p)
			assert.ErrorContains(t, err, tc.errContains)
		})
	}
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "failed to find plan files")
}

func TestPlan_Seeds(t *testing.T) {
	p, err := load(t, map[string]string{"main.hcl": linearPlan})
	require.NoError(t, err)

	t.Run("defaults to sinks", func(t *testing.T) {
		seeds, err := p.Seeds(nil)
		require.NoError(t, err)
		assert.Equal(t, p.Sinks(), seeds)
	})

	t.Run("explicit addresses", func(t *testing.T) {
		seeds, err := p.Seeds([]string{"map.upper", "operator.source.lines"})
		require.NoError(t, err)
		require.Len(t, seeds, 2)
		assert.Same(t, mustLookup(t, p, "map.upper"), seeds[0])
		assert.Same(t, mustLookup(t, p, "source.lines"), seeds[1])
	})

	t.Run("invalid address", func(t *testing.T) {
		_, err := p.Seeds([]string{"nodots"})
		assert.ErrorContains(t, err, `invalid seed "nodots"`)
	})

	t.Run("unknown operator", func(t *testing.T) {
		_, err := p.Seeds([]string{"map.lower"})
		assert.ErrorContains(t, err, "does not name a declared operator")
	})
}
