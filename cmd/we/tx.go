package main

import (
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/wevm-cdk/abi"
	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/node"
	"github.com/wippyai/wevm-cdk/project"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// artifact returns dir/<target>/<module name><ext>.
func (a *app) artifact(dir, ext string) (string, error) {
	name, err := project.ModuleName(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, a.v.GetString(keyTarget), name+ext), nil
}

func (a *app) submit(cmd *cobra.Command, cfg *node.TxConfig, tx any, send bool) error {
	if !send {
		data, err := json.MarshalIndent(tx, "", "  ")
		if err != nil {
			return errors.Wrap(errors.PhaseDeploy, errors.KindInvalidInput, err, "encode transaction")
		}
		fmt.Fprintf(a.out, "Transaction before send:\n%s\n", data)
		return nil
	}

	resp, err := a.client(cfg).SignAndBroadcast(a.context(cmd), tx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s %s\n", acceptedStyle.Render("accepted"), resp)
	return nil
}

func newTxCmd(a *app) *cobra.Command {
	var dir, wasmPath string
	var send bool
	cmd := &cobra.Command{
		Use:   "tx CONFIG",
		Short: "Deploy the built contract with sign-and-broadcast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := node.LoadTxConfig(args[0])
			if err != nil {
				return err
			}
			tx, err := cfg.CreateContract()
			if err != nil {
				return err
			}

			if wasmPath == "" {
				if wasmPath, err = a.artifact(dir, ".wasm"); err != nil {
					return err
				}
			}
			bytecode, err := os.ReadFile(wasmPath)
			if err != nil {
				return errors.IO(errors.PhaseDeploy, wasmPath, err)
			}
			tx.Prepare(bytecode)

			return a.submit(cmd, cfg, tx, send)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&wasmPath, "wasm", "", "compiled module (default: target/we/<name>.wasm)")
	cmd.Flags().BoolVarP(&send, "send", "s", false, "send the transaction")
	return cmd
}

func newCallCmd(a *app) *cobra.Command {
	var (
		dir, abiPath, action string
		values               []string
		send, interactive    bool
	)
	cmd := &cobra.Command{
		Use:   "call CONFIG",
		Short: "Call an action of a deployed contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := node.LoadTxConfig(args[0])
			if err != nil {
				return err
			}
			tx, err := cfg.CallContract()
			if err != nil {
				return err
			}

			if abiPath == "" {
				if abiPath, err = a.artifact(dir, ".json"); err != nil {
					return err
				}
			}
			desc, err := abi.Load(abiPath)
			if err != nil {
				return err
			}

			if interactive {
				if !term.IsTerminal(int(os.Stdout.Fd())) {
					return errors.InvalidInput(errors.PhaseDeploy, "interactive mode needs a terminal")
				}
				choice, err := runInteractive(desc, abiPath)
				if err != nil {
					return err
				}
				if choice == nil {
					return nil
				}
				action, values = choice.action, choice.values
			}

			fn, ok := desc.Function(action)
			if !ok {
				return errors.NotFound(errors.PhaseDeploy, "action", action)
			}
			params, err := node.ParamsFromABI(fn, values)
			if err != nil {
				return err
			}
			tx.Prepare(fn.Name, params)

			return a.submit(cmd, cfg, tx, send)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&abiPath, "abi", "", "ABI descriptor (default: target/we/<name>.json)")
	cmd.Flags().StringVarP(&action, "action", "a", "", "action to call")
	cmd.Flags().StringArrayVar(&values, "arg", nil, "argument value in ABI order, repeatable")
	cmd.Flags().BoolVarP(&send, "send", "s", false, "send the transaction")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "choose the action and arguments in a terminal UI")
	return cmd
}
