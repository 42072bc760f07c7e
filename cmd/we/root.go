package main

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wippyai/wevm-cdk/abi"
	"github.com/wippyai/wevm-cdk/codegen"
	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/hostimport"
	"github.com/wippyai/wevm-cdk/inspect"
	"github.com/wippyai/wevm-cdk/node"
	"github.com/wippyai/wevm-cdk/project"
)

// Configuration keys.
const (
	keyConfig   = "config"
	keyVerbose  = "verbose"
	keyTinyGo   = "tinygo"
	keyWasm2Wat = "wasm2wat"
	keyTarget   = "target"
	keyNodeURL  = "node.url"
	keyAPIKey   = "node.apikey"
	keyUTF8     = "utf8"
)

// app carries the state shared by all commands.
type app struct {
	v      *viper.Viper
	out    io.Writer
	log    *zap.Logger
	runner project.Runner
}

func newApp(out io.Writer) *app {
	v := viper.New()
	v.SetDefault(keyTinyGo, "tinygo")
	v.SetDefault(keyWasm2Wat, "wasm2wat")
	v.SetDefault(keyTarget, project.TargetDir)
	v.SetDefault(keyUTF8, codegen.TrustUTF8.String())
	v.SetEnvPrefix("WE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &app{v: v, out: out, log: zap.NewNop(), runner: project.ExecRunner{}}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "we",
		Short:         "Toolkit for development of WASM smart contracts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().String(keyConfig, "", "config file (default ./we.yaml)")
	root.PersistentFlags().BoolP(keyVerbose, "v", false, "verbose logging")

	root.AddCommand(
		newNewCmd(a),
		newBuildCmd(a),
		newGenerateCmd(a),
		newABICmd(a),
		newImportsCmd(a),
		newInspectCmd(a),
		newWat2WasmCmd(a),
		newWasm2WatCmd(a),
		newTxCmd(a),
		newCallCmd(a),
	)
	return root
}

// init loads configuration and installs the logger.
func (a *app) init(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "bind flags")
	}

	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrap(errors.PhaseConfig, errors.KindIO, err, path)
		}
	} else {
		a.v.SetConfigName("we")
		a.v.AddConfigPath(".")
		if err := a.v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return errors.Wrap(errors.PhaseConfig, errors.KindMalformed, err, "we.yaml")
			}
		}
	}

	log, err := newLogger(a.v.GetBool(keyVerbose))
	if err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "logger")
	}
	a.log = log

	codegen.SetLogger(log.Named("codegen"))
	abi.SetLogger(log.Named("abi"))
	hostimport.SetLogger(log.Named("hostimport"))
	inspect.SetLogger(log.Named("inspect"))
	node.SetLogger(log.Named("node"))
	project.SetLogger(log.Named("project"))

	if used := a.v.ConfigFileUsed(); used != "" {
		log.Debug("loaded config", zap.String("file", used))
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	return cfg.Build()
}

func (a *app) toolchain() *project.Toolchain {
	tools := project.DefaultTools()
	tools.TinyGo = a.v.GetString(keyTinyGo)
	tools.Wasm2Wat = a.v.GetString(keyWasm2Wat)
	tc := project.NewToolchain(tools)
	tc.Runner = a.runner
	return tc
}

func (a *app) utf8() (codegen.Policy, error) {
	return codegen.ParsePolicy(a.v.GetString(keyUTF8))
}

// client returns a node client, preferring configured endpoint settings over
// those of the transaction file.
func (a *app) client(cfg *node.TxConfig) *node.Client {
	url, key := cfg.NodeURL, cfg.APIKey
	if v := a.v.GetString(keyNodeURL); v != "" {
		url = v
	}
	if v := a.v.GetString(keyAPIKey); v != "" {
		key = v
	}
	return node.New(url, key)
}

func (a *app) context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
