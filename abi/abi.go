package abi

import (
	"bytes"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Descriptor is the ABI of one contract. Field order is part of the
// published format.
type Descriptor struct {
	Name string     `json:"name"`
	ABI  []Function `json:"abi"`
}

// Function is one action of the contract.
type Function struct {
	Name string `json:"name"`
	Args []Arg  `json:"args"`
}

// Arg is one action parameter.
type Arg struct {
	Name string              `json:"name"`
	Type types.PrimitiveType `json:"type"`
}

// Types returns the argument types in declaration order.
func (f Function) Types() []types.PrimitiveType {
	out := make([]types.PrimitiveType, len(f.Args))
	for i, a := range f.Args {
		out[i] = a.Type
	}
	return out
}

// Function looks up an action by name.
func (d *Descriptor) Function(name string) (Function, bool) {
	for _, f := range d.ABI {
		if f.Name == name {
			return f, true
		}
	}
	return Function{}, false
}

// Equal reports whether two descriptors describe the same contract surface.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Name != other.Name || len(d.ABI) != len(other.ABI) {
		return false
	}
	for i, f := range d.ABI {
		g := other.ABI[i]
		if f.Name != g.Name || len(f.Args) != len(g.Args) {
			return false
		}
		for j := range f.Args {
			if f.Args[j] != g.Args[j] {
				return false
			}
		}
	}
	return true
}

// JSON renders the descriptor in its compact published form.
func (d *Descriptor) JSON() ([]byte, error) {
	out := Descriptor{Name: d.Name, ABI: make([]Function, len(d.ABI))}
	for i, f := range d.ABI {
		args := f.Args
		if args == nil {
			args = []Arg{}
		}
		out.ABI[i] = Function{Name: f.Name, Args: args}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseExtract, errors.KindMalformed, err, "encode descriptor")
	}
	return data, nil
}

// WriteFile stores the descriptor JSON at path.
func (d *Descriptor) WriteFile(path string) error {
	data, err := d.JSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.IO(errors.PhaseExtract, path, err)
	}
	return nil
}

// Decode parses descriptor JSON. Unknown type tags are rejected.
func Decode(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&d); err != nil {
		return nil, errors.Wrap(errors.PhaseExtract, errors.KindMalformed, err, "decode descriptor")
	}
	for i := range d.ABI {
		if d.ABI[i].Args == nil {
			d.ABI[i].Args = []Arg{}
		}
	}
	return &d, nil
}

// Load reads a descriptor from path.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IO(errors.PhaseExtract, path, err)
	}
	return Decode(data)
}
