package wasm

import (
	"bytes"
	"context"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

func TestEncodeEmpty(t *testing.T) {
	var m Module
	got := m.Encode()
	want := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode() = %x, want %x", got, want)
	}
}

func TestAddTypeDeduplicates(t *testing.T) {
	var m Module
	a := m.AddType(FuncType{Params: []api.ValueType{api.ValueTypeI64}})
	b := m.AddType(FuncType{Results: []api.ValueType{api.ValueTypeI32}})
	c := m.AddType(FuncType{Params: []api.ValueType{api.ValueTypeI64}})

	if a != c {
		t.Errorf("identical types got indices %d and %d", a, c)
	}
	if a == b {
		t.Error("distinct types share an index")
	}
	if len(m.Types) != 2 {
		t.Errorf("len(Types) = %d, want 2", len(m.Types))
	}
}

func TestEncodeCompilesWithWazero(t *testing.T) {
	i32 := []api.ValueType{api.ValueTypeI32}
	i64 := []api.ValueType{api.ValueTypeI64}

	var m Module
	m.AddImport("env0", "get_block_height", FuncType{Results: []api.ValueType{api.ValueTypeI32, api.ValueTypeI64}})
	m.AddImport("env0", "call_arg_int", FuncType{Params: i64})
	flip := m.AddFunc(FuncType{Results: i32}, ConstBody(i32, 0))
	set := m.AddFunc(FuncType{Params: []api.ValueType{api.ValueTypeI32, api.ValueTypeI32, api.ValueTypeI64}, Results: i32}, ConstBody(i32, 300))
	m.ExportFunc("flip", flip)
	m.ExportFunc("set", set)
	m.Memories = append(m.Memories, Memory{Min: 1})
	m.Exports = append(m.Exports, Export{Name: "memory", Kind: KindMemory})
	m.CustomSections = append(m.CustomSections, CustomSection{Name: "producers", Data: []byte{0}})

	if flip != 2 || set != 3 {
		t.Fatalf("function indices = %d, %d; want 2, 3", flip, set)
	}

	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, m.Encode())
	if err != nil {
		t.Fatalf("failed to compile: %v", err)
	}
	defer compiled.Close(ctx)

	imports := compiled.ImportedFunctions()
	if len(imports) != 2 {
		t.Fatalf("got %d imports, want 2", len(imports))
	}
	mod, name, ok := imports[0].Import()
	if !ok || mod != "env0" || name != "get_block_height" {
		t.Errorf("import[0] = %s.%s", mod, name)
	}
	if got := imports[0].ResultTypes(); len(got) != 2 || got[1] != api.ValueTypeI64 {
		t.Errorf("import[0] results = %v", got)
	}

	exports := compiled.ExportedFunctions()
	fn, ok := exports["set"]
	if !ok {
		t.Fatal("set not exported")
	}
	if got := fn.ParamTypes(); len(got) != 3 || got[2] != api.ValueTypeI64 {
		t.Errorf("set params = %v", got)
	}
	if _, ok := compiled.ExportedMemories()["memory"]; !ok {
		t.Error("memory not exported")
	}
}

func TestConstBodyRuns(t *testing.T) {
	i32 := []api.ValueType{api.ValueTypeI32}

	var m Module
	idx := m.AddFunc(FuncType{Results: i32}, ConstBody(i32, 300))
	m.ExportFunc("status", idx)

	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	inst, err := rt.Instantiate(ctx, m.Encode())
	if err != nil {
		t.Fatalf("failed to instantiate: %v", err)
	}
	defer inst.Close(ctx)

	res, err := inst.ExportedFunction("status").Call(ctx)
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if api.DecodeI32(res[0]) != 300 {
		t.Errorf("status = %d, want 300", api.DecodeI32(res[0]))
	}
}

func TestLEB128(t *testing.T) {
	tests := []struct {
		v    uint32
		want []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{624485, []byte{0xe5, 0x8e, 0x26}},
		{0xFFFFFFFF, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}

	for _, tt := range tests {
		got := EncodeLEB128u(tt.v)
		if !bytes.Equal(got, tt.want) {
			t.Errorf("EncodeLEB128u(%d) = %x, want %x", tt.v, got, tt.want)
		}
		back, err := ReadLEB128u(bytes.NewReader(got))
		if err != nil || back != tt.v {
			t.Errorf("ReadLEB128u(%x) = %d, %v", got, back, err)
		}
	}

	if _, err := ReadLEB128u(bytes.NewReader([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01})); err != ErrOverflow {
		t.Errorf("expected overflow, got %v", err)
	}
}

func TestSignedConst(t *testing.T) {
	body := ConstBody([]api.ValueType{api.ValueTypeI64}, -1)
	want := []byte{OpI64Const, 0x7f, OpEnd}
	if !bytes.Equal(body.Code, want) {
		t.Errorf("ConstBody(-1) = %x, want %x", body.Code, want)
	}
}
