package codegen

import (
	"fmt"

	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/types"
)

// Policy selects how String arguments are decoded in action wrappers.
type Policy uint8

const (
	// TrustUTF8 views the host bytes as a string without validation.
	TrustUTF8 Policy = iota
	// ValidateUTF8 rejects malformed input with StatusException.
	ValidateUTF8
)

func (p Policy) String() string {
	if p == ValidateUTF8 {
		return "validate"
	}
	return "trust"
}

// ParsePolicy parses "trust" or "validate".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "trust":
		return TrustUTF8, nil
	case "validate":
		return ValidateUTF8, nil
	}
	return 0, errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("unknown utf8 policy %q (want trust or validate)", s))
}

// Options configures generation.
type Options struct {
	Package   string // defaults to the contract's package
	CDKImport string // defaults to types.SDKPackage
	UTF8      Policy
}

func (o Options) withDefaults(pkg string) Options {
	if o.Package == "" {
		o.Package = pkg
	}
	if o.CDKImport == "" {
		o.CDKImport = types.SDKPackage
	}
	return o
}

// Header marks generated files.
const Header = "// Code generated by we generate. DO NOT EDIT.\n\n"

// FileSuffix is appended to the contract file name for generated output.
const FileSuffix = "_wevm.go"

// ExportPrefix prefixes the Go identifier of every action wrapper.
const ExportPrefix = "_we_"
