package contract

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/types"
)

const tokenSource = `package token

import "github.com/wippyai/wevm-cdk/cdk"

//we:interface
type Token interface {
	transfer(recipient cdk.Binary, amount cdk.Integer)
	ping()
}

// mint issues new tokens.
//
//we:action
func mint(recipient cdk.Binary, amount cdk.Integer, memo cdk.String, final cdk.Boolean) error {
	return nil
}

//we:action
func _constructor() {}

// helper is not an action.
func helper(x int) int { return x }

//export flip
func notAnAction() {}
`

func TestParse(t *testing.T) {
	c, err := Parse("token.go", []byte(tokenSource))
	require.NoError(t, err)

	assert.Equal(t, "token", c.Package)
	assert.Equal(t, "cdk", c.Qualifier)
	require.Len(t, c.Actions, 2)

	mint := c.Actions[0]
	assert.Equal(t, "mint", mint.Name)
	assert.True(t, mint.ReturnsError)
	assert.Equal(t, []types.PrimitiveType{types.Binary, types.Integer, types.String, types.Boolean}, mint.ParamTypes())
	assert.Equal(t, "recipient", mint.Params[0].Name)
	assert.Contains(t, mint.Pos, "token.go:")

	ctor := c.Actions[1]
	assert.Equal(t, "_constructor", ctor.Name)
	assert.False(t, ctor.ReturnsError)
	assert.Empty(t, ctor.Params)

	require.Len(t, c.Interfaces, 1)
	tok := c.Interfaces[0]
	assert.Equal(t, "Token", tok.Name)
	require.Len(t, tok.Methods, 2)
	assert.Equal(t, "transfer", tok.Methods[0].Name)
	assert.Equal(t, []types.PrimitiveType{types.Binary, types.Integer}, tok.Methods[0].ParamTypes())
	assert.Empty(t, tok.Methods[1].Params)

	_, ok := c.Action("helper")
	assert.False(t, ok)
}

func TestParseQualifiers(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "renamed import",
			src: `package c
import we "github.com/wippyai/wevm-cdk/cdk"
//we:action
func f(a we.Integer) {}
`,
			want: "we",
		},
		{
			name: "dot import",
			src: `package c
import . "github.com/wippyai/wevm-cdk/cdk"
//we:action
func f(a Integer) {}
`,
			want: "",
		},
		{
			name: "no import",
			src: `package c
//we:action
func f(a Integer, b cdk.String) {}
`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse("c.go", []byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Qualifier)
			require.Len(t, c.Actions, 1)
		})
	}
}

func TestParseGroupedMultiNameParams(t *testing.T) {
	c, err := Parse("c.go", []byte(`package c
import "github.com/wippyai/wevm-cdk/cdk"
type (
	//we:interface
	A interface { f(x, y cdk.Integer) }

	B interface { g() }
)
//we:action
func sum(a, b cdk.Integer) error { return nil }
`))
	require.NoError(t, err)
	require.Len(t, c.Interfaces, 1)
	assert.Equal(t, "A", c.Interfaces[0].Name)
	assert.Len(t, c.Interfaces[0].Methods[0].Params, 2)
	assert.Len(t, c.Actions[0].Params, 2)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		phase errors.Phase
		kind  errors.Kind
	}{
		{
			name:  "syntax",
			src:   "package c\nfunc {",
			phase: errors.PhaseParse, kind: errors.KindMalformed,
		},
		{
			name:  "unknown type",
			src:   "package c\n//we:action\nfunc f(a uint64) {}\n",
			phase: errors.PhaseResolve, kind: errors.KindUnknownType,
		},
		{
			name:  "foreign qualifier",
			src:   "package c\n//we:action\nfunc f(a big.Integer) {}\n",
			phase: errors.PhaseResolve, kind: errors.KindUnknownType,
		},
		{
			name:  "unknown type in interface",
			src:   "package c\n//we:interface\ntype T interface { f(a []byte) }\n",
			phase: errors.PhaseResolve, kind: errors.KindUnknownType,
		},
		{
			name:  "payment parameter",
			src:   "package c\n//we:action\nfunc f(p Payment) {}\n",
			phase: errors.PhaseResolve, kind: errors.KindUnsupported,
		},
		{
			name:  "method",
			src:   "package c\ntype S struct{}\n//we:action\nfunc (S) f() {}\n",
			phase: errors.PhaseParse, kind: errors.KindMalformed,
		},
		{
			name:  "non error result",
			src:   "package c\n//we:action\nfunc f() Integer { return 0 }\n",
			phase: errors.PhaseParse, kind: errors.KindMalformed,
		},
		{
			name:  "two results",
			src:   "package c\n//we:action\nfunc f() (Integer, error) { return 0, nil }\n",
			phase: errors.PhaseParse, kind: errors.KindMalformed,
		},
		{
			name:  "duplicate action",
			src:   "package c\n//we:action\nfunc f() {}\n//we:action\nfunc f() {}\n",
			phase: errors.PhaseParse, kind: errors.KindDuplicate,
		},
		{
			name:  "variadic",
			src:   "package c\n//we:action\nfunc f(a ...Integer) {}\n",
			phase: errors.PhaseParse, kind: errors.KindUnsupported,
		},
		{
			name:  "unnamed",
			src:   "package c\n//we:action\nfunc f(Integer) {}\n",
			phase: errors.PhaseParse, kind: errors.KindMalformed,
		},
		{
			name:  "blank",
			src:   "package c\n//we:action\nfunc f(_ Integer) {}\n",
			phase: errors.PhaseParse, kind: errors.KindMalformed,
		},
		{
			name:  "generic",
			src:   "package c\n//we:action\nfunc f[T any](a Integer) {}\n",
			phase: errors.PhaseParse, kind: errors.KindMalformed,
		},
		{
			name:  "interface method result",
			src:   "package c\n//we:interface\ntype T interface { f() error }\n",
			phase: errors.PhaseParse, kind: errors.KindMalformed,
		},
		{
			name:  "interface without methods",
			src:   "package c\n//we:interface\ntype T interface{}\n",
			phase: errors.PhaseParse, kind: errors.KindMalformed,
		},
		{
			name:  "embedded interface",
			src:   "package c\n//we:interface\ntype T interface { Other }\n",
			phase: errors.PhaseParse, kind: errors.KindUnsupported,
		},
		{
			name:  "interface directive on struct",
			src:   "package c\n//we:interface\ntype T struct{}\n",
			phase: errors.PhaseParse, kind: errors.KindMalformed,
		},
		{
			name:  "action directive on type",
			src:   "package c\n//we:action\ntype T struct{}\n",
			phase: errors.PhaseParse, kind: errors.KindMalformed,
		},
		{
			name:  "duplicate interface",
			src:   "package c\n//we:interface\ntype T interface{ f() }\n//we:interface\ntype T interface{ g() }\n",
			phase: errors.PhaseParse, kind: errors.KindDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse("c.go", []byte(tt.src))
			require.Error(t, err)
			assert.Nil(t, c, "no partial result on error")
			assert.True(t, stderrors.Is(err, &errors.Error{Phase: tt.phase, Kind: tt.kind}), "got %v", err)
		})
	}
}

func TestUnknownTypeErrorNamesDeclaration(t *testing.T) {
	_, err := Parse("c.go", []byte("package c\n\n//we:action\nfunc transfer_to(amount uint64) {}\n"))
	require.Error(t, err)

	var e *errors.Error
	require.True(t, stderrors.As(err, &e))
	assert.Equal(t, []string{"transfer_to", "amount"}, e.Path)
	assert.Equal(t, "uint64", e.Type)
	assert.Contains(t, e.Pos, "c.go:4:")
}

func TestEmptyInterfaceErrorNamesDeclaration(t *testing.T) {
	_, err := Parse("c.go", []byte("package c\n\n//we:interface\ntype Sink interface{}\n"))
	require.Error(t, err)

	var e *errors.Error
	require.True(t, stderrors.As(err, &e))
	assert.Equal(t, []string{"Sink"}, e.Path)
	assert.Contains(t, e.Pos, "c.go:4:")
	assert.Contains(t, e.Error(), "no remote functions")
}

func TestExactDirectiveOnly(t *testing.T) {
	c, err := Parse("c.go", []byte(`package c
// we:action
func a() {}
//we:actions
func b() {}
//go:noinline
func d() {}
// see //we:action for details
func e() {}
`))
	require.NoError(t, err)
	assert.Empty(t, c.Actions)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contract.go")
	require.NoError(t, os.WriteFile(path, []byte(tokenSource), 0o644))

	c, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Actions, 2)

	_, err = ParseFile(filepath.Join(dir, "missing.go"))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindIO}))
	assert.True(t, stderrors.Is(err, os.ErrNotExist))
}
