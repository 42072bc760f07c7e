package wat

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wevm-cdk/errors"
)

const flipper = `(module
	(import "env0" "get_storage_bool" (func $get_bool (param i32 i32 i32 i32) (result i32 i32)))
	(import "env0" "set_storage_bool" (func $set_bool (param i32 i32 i32) (result i32)))
	(memory (export "memory") 1)
	(data (i32.const 0) "value")
	(func (export "_constructor") (param $init i32) (result i32)
		(call $set_bool (i32.const 0) (i32.const 5) (local.get $init)))
	(func (export "flip") (result i32)
		(local $value i32)
		(call $get_bool (i32.const 0) (i32.const 0) (i32.const 0) (i32.const 5))
		(local.set $value)
		(drop)
		(call $set_bool (i32.const 0) (i32.const 5) (i32.eqz (local.get $value)))))`

func compile(t *testing.T, bin []byte) wazero.CompiledModule {
	t.Helper()
	ctx := context.Background()
	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	t.Cleanup(func() { rt.Close(ctx) })

	mod, err := rt.CompileModule(ctx, bin)
	if err != nil {
		t.Fatalf("wazero rejected output: %v", err)
	}
	return mod
}

func TestCompile(t *testing.T) {
	t.Run("empty_module", func(t *testing.T) {
		bin, err := Compile("(module)")
		if err != nil {
			t.Fatalf("Compile failed: %v", err)
		}
		if len(bin) != 8 {
			t.Errorf("expected 8 bytes, got %d", len(bin))
		}
		if string(bin[:4]) != "\x00asm" {
			t.Error("invalid WASM magic")
		}
	})

	t.Run("contract", func(t *testing.T) {
		bin, err := Compile(flipper)
		if err != nil {
			t.Fatalf("Compile failed: %v", err)
		}
		mod := compile(t, bin)

		imports := mod.ImportedFunctions()
		if len(imports) != 2 {
			t.Fatalf("imports = %d, want 2", len(imports))
		}
		module, name, _ := imports[0].Import()
		if module != "env0" || name != "get_storage_bool" {
			t.Errorf("first import = %s.%s", module, name)
		}
		if got := imports[0].ResultTypes(); len(got) != 2 || got[0] != api.ValueTypeI32 || got[1] != api.ValueTypeI32 {
			t.Errorf("get_storage_bool results = %v", got)
		}

		exports := mod.ExportedFunctions()
		flip, ok := exports["flip"]
		if !ok {
			t.Fatal("flip not exported")
		}
		if len(flip.ParamTypes()) != 0 || len(flip.ResultTypes()) != 1 {
			t.Errorf("flip signature = %v -> %v", flip.ParamTypes(), flip.ResultTypes())
		}
		if _, ok := mod.ExportedMemories()["memory"]; !ok {
			t.Error("memory not exported")
		}
	})
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name, wat, wantErr string
	}{
		{"missing_module", "(func)", "expected 'module'"},
		{"unclosed", "(module", "unexpected end"},
		{"unknown_instr", "(module (func (bogus)))", "unknown instruction"},
		{"unknown_type", "(module (func (param bogus)))", "unknown value type"},
		{"unknown_label", "(module (func (block (br $x))))", "unknown label"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.wat)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q missing %q", err, tt.wantErr)
			}
			if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseBuild, Kind: errors.KindMalformed}) {
				t.Errorf("error %v is not a build/malformed error", err)
			}
		})
	}
}

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flipper.wat")
	if err := os.WriteFile(path, []byte(flipper), 0o644); err != nil {
		t.Fatal(err)
	}
	bin, err := CompileFile(path)
	if err != nil {
		t.Fatalf("CompileFile failed: %v", err)
	}
	compile(t, bin)

	_, err = CompileFile(filepath.Join(dir, "missing.wat"))
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseBuild, Kind: errors.KindIO}) {
		t.Errorf("missing file: got %v", err)
	}

	bad := filepath.Join(dir, "bad.wat")
	if err := os.WriteFile(bad, []byte("(module"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = CompileFile(bad)
	if err == nil || !strings.Contains(err.Error(), bad) {
		t.Errorf("error should carry the file name, got %v", err)
	}
}
