package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/wevm-cdk/abi"
	"github.com/wippyai/wevm-cdk/codegen"
	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/hostimport"
	"github.com/wippyai/wevm-cdk/inspect"
	"github.com/wippyai/wevm-cdk/project"
)

func newNewCmd(a *app) *cobra.Command {
	var targetDir string
	cmd := &cobra.Command{
		Use:   "new NAME",
		Short: "Initialize a new contract project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent := targetDir
			if parent == "" {
				wd, err := os.Getwd()
				if err != nil {
					return errors.IO(errors.PhaseBuild, ".", err)
				}
				parent = wd
			}
			dir, err := project.New(parent, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Created contract %s in %s\n", actionStyle.Render(args[0]), dir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&targetDir, "target-dir", "t", "", "directory to create the project in")
	return cmd
}

func newBuildCmd(a *app) *cobra.Command {
	var dir, name, source string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile the contract into target/we",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			policy, err := a.utf8()
			if err != nil {
				return err
			}
			res, err := a.toolchain().Build(a.context(cmd), project.BuildOptions{
				Dir:    dir,
				Source: source,
				Name:   name,
				Target: a.v.GetString(keyTarget),
				UTF8:   policy,
			})
			if res != nil {
				fmt.Fprintf(a.out, "%s %s\n", headerStyle.Render("wasm"), res.Wasm)
				fmt.Fprintf(a.out, "%s %s\n", headerStyle.Render("abi"), res.ABI)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&name, "name", "", "artifact name (default: module name)")
	cmd.Flags().StringVar(&source, "source", project.ContractFile, "contract source file")
	cmd.Flags().String(keyTarget, project.TargetDir, "output directory")
	cmd.Flags().String(keyUTF8, codegen.TrustUTF8.String(), "string argument policy: trust or validate")
	return cmd
}

func newGenerateCmd(a *app) *cobra.Command {
	var outDir, pkg string
	cmd := &cobra.Command{
		Use:   "generate [FILE]",
		Short: "Generate action exports and interface proxies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := project.ContractFile
			if len(args) == 1 {
				src = args[0]
			}
			policy, err := a.utf8()
			if err != nil {
				return err
			}
			out, err := codegen.GenerateFile(src, outDir, codegen.Options{Package: pkg, UTF8: policy})
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory for the generated file (default: next to the source)")
	cmd.Flags().StringVar(&pkg, "package", "", "package name of the generated file (default: the source package)")
	cmd.Flags().String(keyUTF8, codegen.TrustUTF8.String(), "string argument policy: trust or validate")
	return cmd
}

func newABICmd(a *app) *cobra.Command {
	var name, output string
	cmd := &cobra.Command{
		Use:   "abi [FILE]",
		Short: "Extract the contract ABI",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := project.ContractFile
			if len(args) == 1 {
				src = args[0]
			}
			if name == "" {
				if n, err := project.ModuleName(filepath.Dir(src)); err == nil {
					name = n
				}
			}
			desc, err := abi.ExtractFile(name, src)
			if err != nil {
				return err
			}
			if output != "" {
				return desc.WriteFile(output)
			}
			data, err := desc.JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, string(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "contract name (default: module name)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the ABI to a file")
	return cmd
}

func newImportsCmd(a *app) *cobra.Command {
	var version, stub string
	cmd := &cobra.Command{
		Use:   "imports",
		Short: "List the host functions a contract can import",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := hostimport.Default()
			versions := hostimport.Versions
			if version != "" {
				v, err := hostimport.ParseVersion(version)
				if err != nil {
					return err
				}
				versions = []hostimport.Version{v}
			}

			if stub != "" {
				if len(versions) != 1 {
					return errors.InvalidInput(errors.PhaseCatalog, "--stub needs --version")
				}
				if err := os.WriteFile(stub, reg.Stub(versions[0]), 0o644); err != nil {
					return errors.IO(errors.PhaseCatalog, stub, err)
				}
				a.log.Info("wrote stub module", zap.String("file", stub))
				return nil
			}

			for _, v := range versions {
				fmt.Fprintln(a.out, headerStyle.Render(v.Module()))
				for _, group := range reg.Groups(v) {
					fmt.Fprintf(a.out, "\n  %s\n", groupStyle.Render(group))
					for _, sig := range reg.Version(v) {
						if sig.Group == group {
							fmt.Fprintf(a.out, "    %s\n", sig)
						}
					}
				}
				fmt.Fprintln(a.out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&version, "version", "", "catalog version (v0 or v1)")
	cmd.Flags().StringVar(&stub, "stub", "", "write a module importing every function of --version")
	return cmd
}

func newInspectCmd(a *app) *cobra.Command {
	var abiPath string
	cmd := &cobra.Command{
		Use:   "inspect WASM",
		Short: "Check a compiled contract against its ABI and the host catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := os.ReadFile(args[0])
			if err != nil {
				return errors.IO(errors.PhaseInspect, args[0], err)
			}
			if abiPath == "" {
				guess := strings.TrimSuffix(args[0], ".wasm") + ".json"
				if _, err := os.Stat(guess); err == nil {
					abiPath = guess
				}
			}
			var desc *abi.Descriptor
			if abiPath != "" {
				if desc, err = abi.Load(abiPath); err != nil {
					return err
				}
			}

			r, err := inspect.Check(a.context(cmd), module, desc, hostimport.Default())
			if err != nil {
				return err
			}
			printReport(a, r)
			return r.Err()
		},
	}
	cmd.Flags().StringVar(&abiPath, "abi", "", "ABI descriptor (default: next to the module)")
	return cmd
}

func printReport(a *app, r *inspect.Report) {
	fmt.Fprintln(a.out, headerStyle.Render("exports"))
	for _, e := range r.Exports {
		fmt.Fprintf(a.out, "  %s\n", actionStyle.Render(e))
	}
	fmt.Fprintln(a.out, headerStyle.Render("imports"))
	for _, imp := range r.Imports {
		line := "  " + imp.String()
		if !imp.Known {
			line = problemStyle.Render(line)
		}
		fmt.Fprintln(a.out, line)
	}
	if r.OK() {
		fmt.Fprintln(a.out, acceptedStyle.Render("ok"))
	}
}

func newWat2WasmCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "wat2wasm FILE",
		Short: "Convert from the text format to the binary format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.toolchain().Wat2Wasm(a.context(cmd), args[0], output)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file for the generated wasm file")
	return cmd
}

func newWasm2WatCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "wasm2wat FILE",
		Short: "Convert from the binary format to the text format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.toolchain().Wasm2Wat(a.context(cmd), args[0], output)
			if err != nil {
				return err
			}
			if output == "" {
				_, _ = a.out.Write(text)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file for the generated wat file, by default use stdout")
	return cmd
}
