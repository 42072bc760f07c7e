package abi

import (
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/wevm-cdk/contract"
	"github.com/wippyai/wevm-cdk/errors"
)

// Extract builds the descriptor of the contract source src without compiling
// or expanding it. Actions appear in declaration order. An empty name
// defaults to the source package name. Any parse or type resolution failure
// is returned without a partial descriptor.
func Extract(name, filename string, src []byte) (*Descriptor, error) {
	c, err := contract.Parse(filename, src)
	if err != nil {
		return nil, err
	}
	return FromContract(name, c), nil
}

// ExtractFile reads and extracts the contract source at path.
func ExtractFile(name, path string) (*Descriptor, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IO(errors.PhaseExtract, path, err)
	}
	return Extract(name, path, src)
}

// FromContract converts a parsed contract model into a descriptor.
func FromContract(name string, c *contract.Contract) *Descriptor {
	if name == "" {
		name = c.Package
	}
	d := &Descriptor{Name: name, ABI: make([]Function, 0, len(c.Actions))}
	for _, a := range c.Actions {
		f := Function{Name: a.Name, Args: make([]Arg, 0, len(a.Params))}
		for _, p := range a.Params {
			f.Args = append(f.Args, Arg{Name: p.Name, Type: p.Type})
		}
		d.ABI = append(d.ABI, f)
	}

	Logger().Debug("extracted abi",
		zap.String("contract", name),
		zap.String("file", c.Filename),
		zap.Int("actions", len(d.ABI)),
	)
	return d
}
