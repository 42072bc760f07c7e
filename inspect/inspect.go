package inspect

import (
	"context"
	"fmt"
	"sort"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/wevm-cdk/abi"
	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/hostimport"
	"github.com/wippyai/wevm-cdk/types"
	"github.com/wippyai/wevm-cdk/wasm"
)

// MemoryExport is the export name the host reads guest memory through when
// the module defines its own memory instead of importing the host's.
const MemoryExport = "memory"

// Import is one function import of the checked module.
type Import struct {
	Module string
	Name   string
	Type   wasm.FuncType
	Known  bool // present in the host catalog with the same signature
}

func (i Import) String() string {
	return fmt.Sprintf("%s.%s%s -> %s", i.Module, i.Name,
		types.FormatValueTypes(i.Type.Params), types.FormatValueTypes(i.Type.Results))
}

// Report is the outcome of a conformance check.
type Report struct {
	Exports  []string // exported function names, sorted
	Imports  []Import // function imports in module order
	Problems []errors.Problem
}

// OK reports whether no problem was found.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// Err returns the problems as a single error, or nil.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	return &errors.ProblemsError{Phase: errors.PhaseInspect, Problems: r.Problems}
}

func (r *Report) problem(kind errors.Kind, name, format string, args ...any) {
	r.Problems = append(r.Problems, errors.Problem{Kind: kind, Name: name, Detail: fmt.Sprintf(format, args...)})
}

func (r *Report) add(name string, err *errors.Error) {
	r.Problems = append(r.Problems, errors.Problem{Kind: err.Kind, Name: name, Detail: err.Detail})
}

// HostImports names the finding raised for a module that exports functions
// but links nothing from env0 or env1.
const HostImports = "host imports"

func formatFuncType(ft wasm.FuncType) string {
	return types.FormatValueTypes(ft.Params) + " -> " + types.FormatValueTypes(ft.Results)
}

// Check compiles module without instantiating it and verifies that it can
// run as a contract: every action of desc is exported with its wire
// signature and an i32 status result, and every function import is a host
// import of reg with the catalog signature. A nil desc skips the export
// checks and a nil reg uses the default catalog.
//
// The returned error is non-nil only when the module cannot be compiled.
// Findings are reported in the Report.
func Check(ctx context.Context, module []byte, desc *abi.Descriptor, reg *hostimport.Registry) (*Report, error) {
	if reg == nil {
		reg = hostimport.Default()
	}

	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	defer rt.Close(ctx)

	cm, err := rt.CompileModule(ctx, module)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseInspect, errors.KindMalformed, err, "compile module")
	}
	defer cm.Close(ctx)

	r := &Report{}
	checkImports(r, cm, reg)

	exported := cm.ExportedFunctions()
	for name := range exported {
		r.Exports = append(r.Exports, name)
	}
	sort.Strings(r.Exports)

	if desc != nil {
		checkExports(r, exported, desc)
	}
	if len(exported) > 0 && !r.linksHost() {
		r.problem(errors.KindNotFound, HostImports,
			"module exports functions but imports nothing from env0 or env1; the cdk host was not linked")
	}
	if _, ok := cm.ExportedMemories()[MemoryExport]; !ok && len(cm.ImportedMemories()) == 0 {
		r.problem(errors.KindNotFound, MemoryExport, "module neither exports nor imports a linear memory")
	}

	Logger().Debug("inspected module",
		zap.Int("exports", len(r.Exports)),
		zap.Int("imports", len(r.Imports)),
		zap.Int("problems", len(r.Problems)),
	)
	return r, nil
}

func (r *Report) linksHost() bool {
	for _, imp := range r.Imports {
		if _, ok := hostimport.VersionOf(imp.Module); ok {
			return true
		}
	}
	return false
}

func checkImports(r *Report, cm wazero.CompiledModule, reg *hostimport.Registry) {
	for _, def := range cm.ImportedFunctions() {
		module, name, _ := def.Import()
		imp := Import{
			Module: module,
			Name:   name,
			Type:   wasm.FuncType{Params: def.ParamTypes(), Results: def.ResultTypes()},
		}
		full := module + "." + name

		if _, ok := hostimport.VersionOf(module); !ok {
			r.problem(errors.KindUnsupported, full, "import module %q is not provided by the host", module)
			r.Imports = append(r.Imports, imp)
			continue
		}

		sig, ok := reg.Lookup(module, name)
		switch {
		case !ok:
			r.problem(errors.KindNotFound, full, "not in the host catalog")
		case !sig.FuncType().Equal(imp.Type):
			r.add(full, errors.Mismatch(errors.PhaseInspect, []string{module, name},
				formatFuncType(sig.FuncType()), formatFuncType(imp.Type)))
		default:
			imp.Known = true
		}
		r.Imports = append(r.Imports, imp)
	}
}

func checkExports(r *Report, exported map[string]api.FunctionDefinition, desc *abi.Descriptor) {
	status := []api.ValueType{api.ValueTypeI32}

	for _, f := range desc.ABI {
		def, ok := exported[f.Name]
		if !ok {
			r.problem(errors.KindNotFound, f.Name, "action is not exported")
			continue
		}

		params, err := types.WireSignature(f.Types())
		if err != nil {
			r.problem(errors.KindUnsupported, f.Name, "%v", err)
			continue
		}
		want := wasm.FuncType{Params: params, Results: status}
		got := wasm.FuncType{Params: def.ParamTypes(), Results: def.ResultTypes()}
		if !want.Equal(got) {
			r.add(f.Name, errors.Mismatch(errors.PhaseInspect, []string{f.Name}, formatFuncType(want), formatFuncType(got)))
		}
	}
}
