package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wevm-cdk/contract"
	"github.com/wippyai/wevm-cdk/errors"
)

const walletSource = `package wallet

import "github.com/wippyai/wevm-cdk/cdk"

//we:interface
type Token interface {
	transfer(contract cdk.Binary, amount cdk.Integer)
	ping()
}

//we:action
func _constructor() {}

//we:action
func deposit(recipient cdk.Binary, amount cdk.Integer, memo cdk.String, final cdk.Boolean) error {
	return nil
}

//we:action
func rename(err cdk.String, h cdk.Integer) error {
	return nil
}
`

func parseContract(t *testing.T, src string) *contract.Contract {
	t.Helper()
	c, err := contract.Parse("wallet.go", []byte(src))
	require.NoError(t, err)
	return c
}

func parseGo(t *testing.T, src []byte) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "wallet_wevm.go", src, parser.ParseComments)
	require.NoError(t, err, "generated source must parse:\n%s", src)
	return f
}

func funcDecls(f *ast.File) map[string]*ast.FuncDecl {
	out := make(map[string]*ast.FuncDecl)
	for _, d := range f.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok {
			out[fd.Name.Name] = fd
		}
	}
	return out
}

func TestGenerate(t *testing.T) {
	c := parseContract(t, walletSource)

	src, err := Generate(c, Options{})
	require.NoError(t, err)
	out := string(src)

	assert.True(t, strings.HasPrefix(out, Header), "missing header:\n%s", out)
	assert.Contains(t, out, "package wallet")
	assert.Contains(t, out, `"unsafe"`)
	assert.Contains(t, out, `"github.com/wippyai/wevm-cdk/cdk"`)

	assert.Contains(t, out, "//export _constructor\nfunc _we__constructor() int32 {")
	assert.Contains(t, out, "_constructor()\n\treturn cdk.Finish(nil)")

	assert.Contains(t, out, "//export deposit\n")
	assert.Contains(t, out, "func _we_deposit(offset_recipient unsafe.Pointer, length_recipient uint32, amount int64, offset_memo unsafe.Pointer, length_memo uint32, final bool) int32 {")
	assert.Contains(t, out, "recipient := cdk.BinaryFrom(offset_recipient, length_recipient)")
	assert.Contains(t, out, "memo := cdk.StringFrom(offset_memo, length_memo)")
	assert.Contains(t, out, "return cdk.Finish(deposit(recipient, amount, memo, final))")

	// err is reserved in wrappers; h is only reserved in proxies
	assert.Contains(t, out, "func _we_rename(offset_err unsafe.Pointer, length_err uint32, h int64) int32 {")
	assert.Contains(t, out, "err_ := cdk.StringFrom(offset_err, length_err)")
	assert.Contains(t, out, "return cdk.Finish(rename(err_, h))")

	f := parseGo(t, src)
	assert.Equal(t, "wallet", f.Name.Name)
	require.Len(t, f.Imports, 2)
	assert.Equal(t, `"unsafe"`, f.Imports[0].Path.Value)
}

func TestGenerateProxy(t *testing.T) {
	c := parseContract(t, walletSource)

	src, err := Generate(c, Options{})
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "var TokenProxy _we_TokenProxy")
	assert.Contains(t, out, "type _we_TokenProxy struct{}")
	assert.Contains(t, out, "func (_we_TokenProxy) transfer(contract cdk.Binary, contract_ cdk.Binary, amount cdk.Integer, payments ...cdk.Payment) error {")
	assert.Contains(t, out, "h := cdk.CurrentHost()")
	assert.Contains(t, out, "if err := h.V0.CallArgBinary(contract_).Err(); err != nil {")
	assert.Contains(t, out, "if err := h.V0.CallArgInt(amount).Err(); err != nil {")
	assert.Contains(t, out, "for _, p := range payments {")
	assert.Contains(t, out, "if err := h.V0.CallPayment(p.AssetID, p.Amount).Err(); err != nil {")
	assert.Contains(t, out, `return h.V0.CallContract(contract, "transfer").Err()`)
	assert.Contains(t, out, "func (_we_TokenProxy) ping(contract cdk.Binary, payments ...cdk.Payment) error {")

	// arguments are staged before payments, payments before the call
	args := strings.Index(out, "CallArgInt(amount)")
	pays := strings.Index(out, "CallPayment(p.AssetID")
	invoke := strings.Index(out, `CallContract(contract, "transfer")`)
	assert.Less(t, args, pays)
	assert.Less(t, pays, invoke)

	f := parseGo(t, src)
	var methods []string
	for _, d := range f.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok && fd.Recv != nil {
			methods = append(methods, fd.Name.Name)
		}
	}
	assert.Equal(t, []string{"transfer", "ping"}, methods)
}

func TestGenerateProxyWithoutMethods(t *testing.T) {
	c := &contract.Contract{
		Filename:   "sink.go",
		Package:    "sink",
		Interfaces: []contract.Interface{{Name: "Sink"}},
	}

	src, err := Generate(c, Options{})
	assert.Nil(t, src)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseGenerate, Kind: errors.KindMalformed})
	assert.Contains(t, err.Error(), "Sink")
}

func TestGenerateValidateUTF8(t *testing.T) {
	c := parseContract(t, `package p

//we:action
func greet(name cdk.String, title cdk.String) {}
`)

	src, err := Generate(c, Options{UTF8: ValidateUTF8})
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "name, err := cdk.ValidStringFrom(offset_name, length_name)")
	assert.Contains(t, out, "title, err := cdk.ValidStringFrom(offset_title, length_title)")
	assert.Equal(t, 2, strings.Count(out, "return cdk.Finish(err)"))
	assert.Contains(t, out, "greet(name, title)\n\treturn cdk.Finish(nil)")
	parseGo(t, src)
}

func TestGenerateNoBytes(t *testing.T) {
	c := parseContract(t, `package p

//we:action
func flip() {}

//we:action
func set(v cdk.Integer, b cdk.Boolean) error { return nil }
`)

	src, err := Generate(c, Options{Package: "main"})
	require.NoError(t, err)

	f := parseGo(t, src)
	assert.Equal(t, "main", f.Name.Name)
	require.Len(t, f.Imports, 1)
	assert.Equal(t, `"github.com/wippyai/wevm-cdk/cdk"`, f.Imports[0].Path.Value)

	decls := funcDecls(f)
	require.Contains(t, decls, "_we_set")
	assert.Len(t, decls["_we_set"].Type.Params.List, 2)
}

func TestGenerateEmpty(t *testing.T) {
	c := parseContract(t, "package p\n\nfunc helper() {}\n")

	src, err := Generate(c, Options{})
	require.NoError(t, err)

	f := parseGo(t, src)
	assert.Empty(t, f.Imports)
	assert.Empty(t, f.Decls)
}

func TestGenerateDeterministic(t *testing.T) {
	c := parseContract(t, walletSource)

	first, err := Generate(c, Options{})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Generate(c, Options{})
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestGenerateCustomImport(t *testing.T) {
	c := parseContract(t, walletSource)

	src, err := Generate(c, Options{CDKImport: "example.com/fork/cdk"})
	require.NoError(t, err)
	assert.Contains(t, string(src), `"example.com/fork/cdk"`)
}

func TestPlanMatchesWrappers(t *testing.T) {
	c := parseContract(t, walletSource)

	plan, err := Plan(c)
	require.NoError(t, err)
	require.Len(t, plan, 3)

	src, err := Generate(c, Options{})
	require.NoError(t, err)
	decls := funcDecls(parseGo(t, src))

	for _, e := range plan {
		fd, ok := decls[ExportPrefix+e.Name]
		require.True(t, ok, "wrapper for %s", e.Name)

		var n int
		for _, field := range fd.Type.Params.List {
			n += len(field.Names)
		}
		assert.Equal(t, len(e.Params), n, e.Name)
		assert.Equal(t, []api.ValueType{api.ValueTypeI32}, e.Results)
	}

	assert.Equal(t, []api.ValueType{
		api.ValueTypeI32, api.ValueTypeI32,
		api.ValueTypeI64,
		api.ValueTypeI32, api.ValueTypeI32,
		api.ValueTypeI32,
	}, plan[1].Params)
}

func TestGenerateFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "wallet.go")
	require.NoError(t, os.WriteFile(in, []byte(walletSource), 0o644))

	out, err := GenerateFile(in, "", Options{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wallet_wevm.go"), out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), Header))

	t.Run("into directory", func(t *testing.T) {
		target := t.TempDir()
		out, err := GenerateFile(in, target, Options{})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(target, "wallet_wevm.go"), out)
	})

	t.Run("generated input", func(t *testing.T) {
		_, err := GenerateFile(out, "", Options{})
		require.Error(t, err)
		assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseGenerate, Kind: errors.KindInvalidInput})
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := GenerateFile(filepath.Join(dir, "missing.go"), "", Options{})
		assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindIO})
	})

	t.Run("unknown type is fatal", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.go")
		require.NoError(t, os.WriteFile(bad, []byte("package p\n\n//we:action\nfunc f(x uint64) {}\n"), 0o644))
		_, err := GenerateFile(bad, "", Options{})
		assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindUnknownType})
		_, statErr := os.Stat(filepath.Join(dir, "bad_wevm.go"))
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("validate")
	require.NoError(t, err)
	assert.Equal(t, ValidateUTF8, p)
	assert.Equal(t, "validate", p.String())

	p, err = ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, TrustUTF8, p)

	_, err = ParsePolicy("maybe")
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindInvalidInput})
	assert.Contains(t, err.Error(), `"maybe"`)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "contracts/counter_wevm.go", OutputPath("contracts/counter.go"))
}
