package inspect

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wevm-cdk/abi"
	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/hostimport"
	"github.com/wippyai/wevm-cdk/types"
	"github.com/wippyai/wevm-cdk/wasm"
)

var (
	i32    = []api.ValueType{api.ValueTypeI32}
	status = i32
)

func descriptor() *abi.Descriptor {
	return &abi.Descriptor{
		Name: "flip",
		ABI: []abi.Function{
			{Name: "_constructor", Args: []abi.Arg{}},
			{Name: "set", Args: []abi.Arg{
				{Name: "value", Type: types.Boolean},
				{Name: "label", Type: types.String},
			}},
		},
	}
}

// builder assembles a contract-shaped module.
type builder struct {
	m      wasm.Module
	memory bool
}

func newBuilder() *builder {
	return &builder{memory: true}
}

func (b *builder) hostImport(t *testing.T, module, name string) {
	t.Helper()
	sig, ok := hostimport.Default().Lookup(module, name)
	require.True(t, ok, "%s.%s", module, name)
	b.m.AddImport(module, name, sig.FuncType())
}

func (b *builder) action(t *testing.T, name string, params ...types.PrimitiveType) {
	t.Helper()
	wire, err := types.WireSignature(params)
	require.NoError(t, err)
	b.export(name, wasm.FuncType{Params: wire, Results: status})
}

func (b *builder) export(name string, ft wasm.FuncType) {
	idx := b.m.AddFunc(ft, wasm.ConstBody(ft.Results, 0))
	b.m.ExportFunc(name, idx)
}

func (b *builder) encode() []byte {
	if b.memory {
		b.m.Memories = append(b.m.Memories, wasm.Memory{Min: 1})
		b.m.Exports = append(b.m.Exports, wasm.Export{Name: MemoryExport, Kind: wasm.KindMemory})
	}
	return b.m.Encode()
}

func TestCheckConforming(t *testing.T) {
	b := newBuilder()
	b.hostImport(t, "env0", "get_storage_bool")
	b.hostImport(t, "env0", "set_storage_bool")
	b.hostImport(t, "env1", "get_balance")
	b.action(t, "_constructor")
	b.action(t, "set", types.Boolean, types.String)

	r, err := Check(context.Background(), b.encode(), descriptor(), nil)
	require.NoError(t, err)

	assert.True(t, r.OK(), "problems: %v", r.Problems)
	assert.NoError(t, r.Err())
	assert.Equal(t, []string{"_constructor", "set"}, r.Exports)
	require.Len(t, r.Imports, 3)
	for _, imp := range r.Imports {
		assert.True(t, imp.Known, imp.String())
	}
	assert.Equal(t, "env1", r.Imports[2].Module)
}

func TestCheckExports(t *testing.T) {
	b := newBuilder()
	b.export("set", wasm.FuncType{Params: []api.ValueType{api.ValueTypeI32, api.ValueTypeI64}, Results: status})

	r, err := Check(context.Background(), b.encode(), descriptor(), nil)
	require.NoError(t, err)
	require.False(t, r.OK())

	kinds := map[string]errors.Kind{}
	for _, p := range r.Problems {
		kinds[p.Name] = p.Kind
	}
	assert.Equal(t, errors.KindNotFound, kinds["_constructor"])
	assert.Equal(t, errors.KindMismatch, kinds["set"])

	err = r.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.ProblemsError{})
	assert.Contains(t, err.Error(), "want (i32, i32, i32) -> (i32), got (i32, i64) -> (i32)")
}

func TestCheckHostNotLinked(t *testing.T) {
	// exports the actions but was built without the wasm host adapter
	b := newBuilder()
	b.action(t, "_constructor")
	b.action(t, "set", types.Boolean, types.String)

	r, err := Check(context.Background(), b.encode(), descriptor(), nil)
	require.NoError(t, err)
	assert.Empty(t, r.Imports)
	require.Len(t, r.Problems, 1)
	assert.Equal(t, HostImports, r.Problems[0].Name)
	assert.Equal(t, errors.KindNotFound, r.Problems[0].Kind)

	// one foreign import does not count as linking the host
	b = newBuilder()
	b.m.AddImport("wasi_snapshot_preview1", "proc_exit", wasm.FuncType{Params: i32})
	b.action(t, "_constructor")

	r, err = Check(context.Background(), b.encode(), nil, nil)
	require.NoError(t, err)
	names := map[string]bool{}
	for _, p := range r.Problems {
		names[p.Name] = true
	}
	assert.True(t, names[HostImports])
	assert.True(t, names["wasi_snapshot_preview1.proc_exit"])
}

func TestCheckImports(t *testing.T) {
	b := newBuilder()
	b.hostImport(t, "env0", "get_block_height")
	b.m.AddImport("env0", "get_block_height_v2", wasm.FuncType{Results: i32})
	b.m.AddImport("env1", "burn", wasm.FuncType{Params: []api.ValueType{api.ValueTypeI32}, Results: i32})
	b.m.AddImport("env0", "get_block_timestamp", wasm.FuncType{Results: i32})
	b.m.AddImport("wasi_snapshot_preview1", "fd_write", wasm.FuncType{
		Params:  []api.ValueType{api.ValueTypeI32, api.ValueTypeI32, api.ValueTypeI32, api.ValueTypeI32},
		Results: i32,
	})

	r, err := Check(context.Background(), b.encode(), nil, hostimport.Default())
	require.NoError(t, err)

	require.Len(t, r.Imports, 5)
	assert.True(t, r.Imports[0].Known)

	got := map[string]errors.Kind{}
	for _, p := range r.Problems {
		got[p.Name] = p.Kind
	}
	assert.Equal(t, map[string]errors.Kind{
		"env0.get_block_height_v2":        errors.KindNotFound,
		"env1.burn":                       errors.KindNotFound,
		"env0.get_block_timestamp":        errors.KindMismatch,
		"wasi_snapshot_preview1.fd_write": errors.KindUnsupported,
	}, got)
}

func TestCheckMemory(t *testing.T) {
	b := newBuilder()
	b.memory = false

	r, err := Check(context.Background(), b.encode(), nil, nil)
	require.NoError(t, err)
	require.Len(t, r.Problems, 1)
	assert.Equal(t, MemoryExport, r.Problems[0].Name)
}

func TestCheckMalformed(t *testing.T) {
	_, err := Check(context.Background(), []byte("not wasm"), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseInspect, Kind: errors.KindMalformed})
}

func TestCheckStubModule(t *testing.T) {
	// the catalog stub imports every host function of one version
	reg := hostimport.Default()
	r, err := Check(context.Background(), reg.Stub(hostimport.V1), nil, reg)
	require.NoError(t, err)

	require.Len(t, r.Imports, len(reg.Version(hostimport.V1)))
	for _, imp := range r.Imports {
		assert.True(t, imp.Known, imp.String())
	}
	assert.Empty(t, r.Exports)
	require.Len(t, r.Problems, 1)
	assert.Equal(t, MemoryExport, r.Problems[0].Name)
}

func TestImportString(t *testing.T) {
	imp := Import{Module: "env0", Name: "get_block_height", Type: wasm.FuncType{
		Results: []api.ValueType{api.ValueTypeI32, api.ValueTypeI64},
	}}
	assert.True(t, strings.HasPrefix(imp.String(), "env0.get_block_height() -> (i32, i64)"))
}
