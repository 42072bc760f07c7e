package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wevm-cdk/abi"
	"github.com/wippyai/wevm-cdk/codegen"
	"github.com/wippyai/wevm-cdk/contract"
	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/hostimport"
	"github.com/wippyai/wevm-cdk/project"
	"github.com/wippyai/wevm-cdk/wasm"
)

// compilerStub stands in for TinyGo by emitting a module exporting every
// generated wrapper.
type compilerStub struct {
	calls []project.Command
}

func (c *compilerStub) Run(_ context.Context, cmd project.Command) ([]byte, error) {
	c.calls = append(c.calls, cmd)
	if cmd.Name != "tinygo" {
		return []byte("(module)\n"), nil
	}

	var out string
	for i, arg := range cmd.Args {
		if arg == "-o" {
			out = cmd.Args[i+1]
		}
	}
	ct, err := contract.ParseFile(filepath.Join(cmd.Dir, project.ContractFile))
	if err != nil {
		return nil, err
	}
	plan, err := codegen.Plan(ct)
	if err != nil {
		return nil, err
	}
	var m wasm.Module
	for _, name := range []string{"get_storage_bool", "set_storage_bool"} {
		sig, _ := hostimport.Default().Lookup("env0", name)
		m.AddImport("env0", name, sig.FuncType())
	}
	for _, e := range plan {
		idx := m.AddFunc(wasm.FuncType{Params: e.Params, Results: e.Results}, wasm.ConstBody(e.Results, 0))
		m.ExportFunc(e.Name, idx)
	}
	m.Memories = append(m.Memories, wasm.Memory{Min: 1})
	m.Exports = append(m.Exports, wasm.Export{Name: "memory", Kind: wasm.KindMemory})
	return nil, os.WriteFile(out, m.Encode(), 0o644)
}

func run(t *testing.T, runner project.Runner, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := newApp(&out)
	if runner != nil {
		a.runner = runner
	}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}

func newProject(t *testing.T) string {
	t.Helper()
	parent := t.TempDir()
	_, err := run(t, nil, "new", "flipper", "-t", parent)
	require.NoError(t, err)
	return filepath.Join(parent, "flipper")
}

func TestNewCmd(t *testing.T) {
	dir := newProject(t)
	assert.FileExists(t, filepath.Join(dir, "go.mod"))

	_, err := run(t, nil, "new", "flipper", "-t", filepath.Dir(dir))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseBuild, Kind: errors.KindDuplicate})
}

func TestGenerateCmd(t *testing.T) {
	dir := newProject(t)
	src := filepath.Join(dir, project.ContractFile)

	out, err := run(t, nil, "generate", src, "--utf8", "validate")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "contract_wevm.go")+"\n", out)

	data, err := os.ReadFile(filepath.Join(dir, "contract_wevm.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "func _we_flip() int32")

	_, err = run(t, nil, "generate", src, "--utf8", "sometimes")
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindInvalidInput})
}

func TestABICmd(t *testing.T) {
	dir := newProject(t)
	src := filepath.Join(dir, project.ContractFile)

	out, err := run(t, nil, "abi", src)
	require.NoError(t, err)
	assert.Equal(t,
		`{"name":"flipper","abi":[{"name":"_constructor","args":[{"name":"init_value","type":"Boolean"}]},{"name":"flip","args":[]}]}`+"\n",
		out)

	target := filepath.Join(dir, "custom.json")
	_, err = run(t, nil, "abi", src, "--name", "custom", "-o", target)
	require.NoError(t, err)
	desc, err := abi.Load(target)
	require.NoError(t, err)
	assert.Equal(t, "custom", desc.Name)
}

func TestImportsCmd(t *testing.T) {
	out, err := run(t, nil, "imports", "--version", "v1")
	require.NoError(t, err)
	assert.Contains(t, out, "env1")
	assert.Contains(t, out, "get_tx_payment_asset_id")
	assert.NotContains(t, out, "env0")

	stub := filepath.Join(t.TempDir(), "env0.wasm")
	_, err = run(t, nil, "imports", "--version", "v0", "--stub", stub)
	require.NoError(t, err)
	data, err := os.ReadFile(stub)
	require.NoError(t, err)
	assert.Equal(t, hostimport.StubModule(hostimport.V0), data)

	_, err = run(t, nil, "imports", "--stub", stub)
	assert.Error(t, err)

	_, err = run(t, nil, "imports", "--version", "v9")
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseCatalog, Kind: errors.KindInvalidInput})
}

func TestBuildAndInspectCmd(t *testing.T) {
	dir := newProject(t)
	stub := &compilerStub{}

	out, err := run(t, stub, "build", "--dir", dir)
	require.NoError(t, err)
	wasmPath := filepath.Join(dir, project.TargetDir, "flipper.wasm")
	assert.Contains(t, out, wasmPath)
	require.Len(t, stub.calls, 1)
	assert.Equal(t, "tinygo", stub.calls[0].Name)

	out, err = run(t, nil, "inspect", wasmPath)
	require.NoError(t, err)
	assert.Contains(t, out, "_constructor")
	assert.Contains(t, out, "ok")

	t.Run("abi mismatch", func(t *testing.T) {
		other := filepath.Join(t.TempDir(), "other.json")
		d := &abi.Descriptor{Name: "other", ABI: []abi.Function{{Name: "missing"}}}
		require.NoError(t, d.WriteFile(other))

		_, err := run(t, nil, "inspect", wasmPath, "--abi", other)
		assert.ErrorIs(t, err, &errors.ProblemsError{})
	})
}

func TestConvertCmds(t *testing.T) {
	stub := &compilerStub{}

	out, err := run(t, stub, "wasm2wat", "flip.wasm")
	require.NoError(t, err)
	assert.Equal(t, "(module)\n", out)

	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("flip.wat", []byte(`(module (memory (export "memory") 1))`), 0o644))
	out, err = run(t, stub, "wat2wasm", "flip.wat")
	require.NoError(t, err)
	assert.Equal(t, "flip.wasm\n", out)
	assert.FileExists(t, "flip.wasm")
	assert.Len(t, stub.calls, 1, "wat2wasm does not spawn a process")
}

func writeTxConfig(t *testing.T, dir, url, tx string) string {
	t.Helper()
	path := filepath.Join(dir, "tx.json")
	cfg := `{"nodeUrl":"` + url + `","apiKey":"we","transaction":` + tx + `}`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return path
}

func TestTxCmd(t *testing.T) {
	dir := newProject(t)
	_, err := run(t, &compilerStub{}, "build", "--dir", dir)
	require.NoError(t, err)

	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		_, _ = w.Write([]byte(`{"id":"tx1"}`))
	}))
	defer srv.Close()

	cfg := writeTxConfig(t, dir, srv.URL, `{"version":7,"sender":"3Nk","contractName":"flipper","fee":0,"feeAssetId":null}`)

	out, err := run(t, nil, "tx", cfg, "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Transaction before send:")
	assert.Contains(t, out, `"bytecodeHash"`)
	assert.Empty(t, body)

	out, err = run(t, nil, "tx", cfg, "--dir", dir, "--send")
	require.NoError(t, err)
	assert.Contains(t, out, "tx1")
	assert.Contains(t, body, `"type":103`)
}

func TestCallCmd(t *testing.T) {
	dir := newProject(t)
	_, err := run(t, &compilerStub{}, "build", "--dir", dir)
	require.NoError(t, err)

	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
	}))
	defer srv.Close()

	cfg := writeTxConfig(t, dir, srv.URL, `{"version":5,"sender":"3Nk","contractId":"C1","contractVersion":1,"fee":0,"feeAssetId":null}`)

	out, err := run(t, nil, "call", cfg, "--dir", dir, "--action", "_constructor", "--arg", "true")
	require.NoError(t, err)
	assert.Contains(t, out, `"callFunc": "_constructor"`)
	assert.Contains(t, out, `"type": "boolean"`)

	_, err = run(t, nil, "call", cfg, "--dir", dir, "--action", "flip", "--send")
	require.NoError(t, err)
	assert.True(t, strings.Contains(body, `"callFunc":"flip"`), body)

	_, err = run(t, nil, "call", cfg, "--dir", dir, "--action", "nope")
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDeploy, Kind: errors.KindNotFound})

	_, err = run(t, nil, "call", cfg, "--dir", dir, "--action", "_constructor", "--arg", "yes")
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDeploy, Kind: errors.KindInvalidInput})
}
