package project

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wippyai/wevm-cdk/abi"
	"github.com/wippyai/wevm-cdk/codegen"
	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/hostimport"
	"github.com/wippyai/wevm-cdk/inspect"
)

// TargetDir is where build artifacts are placed, relative to the project.
const TargetDir = "target/we"

// DefaultTinyGoFlags select the bare WASM target without debug sections.
var DefaultTinyGoFlags = []string{"-target=wasm-unknown", "-no-debug"}

// Tools names the external programs the toolkit drives.
type Tools struct {
	TinyGo      string
	TinyGoFlags []string
	Wasm2Wat    string
}

// DefaultTools resolves every tool from PATH.
func DefaultTools() Tools {
	return Tools{
		TinyGo:      "tinygo",
		TinyGoFlags: DefaultTinyGoFlags,
		Wasm2Wat:    "wasm2wat",
	}
}

// Toolchain runs builds and format conversions.
type Toolchain struct {
	Tools    Tools
	Runner   Runner
	Registry *hostimport.Registry
}

// NewToolchain returns a toolchain running real processes.
func NewToolchain(tools Tools) *Toolchain {
	return &Toolchain{Tools: tools, Runner: ExecRunner{}, Registry: hostimport.Default()}
}

// BuildOptions selects what to build.
type BuildOptions struct {
	Dir    string // project directory
	Source string // contract source relative to Dir, defaults to ContractFile
	Name   string // artifact name, defaults to the module name
	Target string // output directory relative to Dir, defaults to TargetDir
	UTF8   codegen.Policy
}

// BuildResult lists the produced artifacts.
type BuildResult struct {
	Wasm      string
	ABI       string
	Generated string
	Report    *inspect.Report
}

// Build generates the contract glue, extracts the ABI, compiles the module
// with TinyGo into the target directory and checks the result. A module that
// compiles but fails the check is returned together with the report error.
func (t *Toolchain) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if opts.Source == "" {
		opts.Source = ContractFile
	}
	if opts.Target == "" {
		opts.Target = TargetDir
	}
	if opts.Name == "" {
		name, err := ModuleName(opts.Dir)
		if err != nil {
			return nil, err
		}
		opts.Name = name
	}

	src := filepath.Join(opts.Dir, opts.Source)
	generated, err := codegen.GenerateFile(src, "", codegen.Options{UTF8: opts.UTF8})
	if err != nil {
		return nil, err
	}

	desc, err := abi.ExtractFile(opts.Name, src)
	if err != nil {
		return nil, err
	}

	target := filepath.Join(opts.Dir, opts.Target)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return nil, errors.IO(errors.PhaseBuild, target, err)
	}

	res := &BuildResult{
		Wasm:      filepath.Join(target, opts.Name+".wasm"),
		ABI:       filepath.Join(target, opts.Name+".json"),
		Generated: generated,
	}

	args := append([]string{"build"}, t.Tools.TinyGoFlags...)
	args = append(args, "-o", res.Wasm, ".")
	if _, err := t.Runner.Run(ctx, Command{Dir: opts.Dir, Name: t.Tools.TinyGo, Args: args}); err != nil {
		return nil, err
	}

	if err := desc.WriteFile(res.ABI); err != nil {
		return nil, err
	}

	module, err := os.ReadFile(res.Wasm)
	if err != nil {
		return nil, errors.IO(errors.PhaseBuild, res.Wasm, err)
	}
	res.Report, err = inspect.Check(ctx, module, desc, t.Registry)
	if err != nil {
		return nil, err
	}

	Logger().Info("built contract",
		zap.String("wasm", res.Wasm),
		zap.String("abi", res.ABI),
		zap.Int("actions", len(desc.ABI)),
		zap.Int("problems", len(res.Report.Problems)),
	)
	return res, res.Report.Err()
}
