package hostimport

import (
	"fmt"
	"strings"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/types"
	"github.com/wippyai/wevm-cdk/wasm"
)

// Version selects one of the host import modules. Both versions are
// available to every contract at the same time.
type Version uint8

const (
	V0 Version = iota
	V1
)

// Versions lists every published version.
var Versions = []Version{V0, V1}

// Module returns the WASM import module name of the version.
func (v Version) Module() string {
	return fmt.Sprintf("env%d", uint8(v))
}

func (v Version) String() string {
	return fmt.Sprintf("v%d", uint8(v))
}

// ParseVersion accepts "v0", "0", "env0" and the v1 equivalents.
func ParseVersion(s string) (Version, error) {
	switch strings.TrimPrefix(strings.TrimPrefix(s, "env"), "v") {
	case "0":
		return V0, nil
	case "1":
		return V1, nil
	}
	return 0, errors.InvalidInput(errors.PhaseCatalog, fmt.Sprintf("unknown host import version %q (want v0 or v1)", s))
}

// VersionOf maps an import module name back to its version.
func VersionOf(module string) (Version, bool) {
	for _, v := range Versions {
		if v.Module() == module {
			return v, true
		}
	}
	return 0, false
}

// Param is one flat parameter of a host import.
type Param struct {
	Name string
	Type api.ValueType
}

// Shape classifies what a host import returns.
type Shape uint8

const (
	ShapeNone        Shape = iota // nothing
	ShapeStatus                   // status
	ShapeStatusValue              // status, scalar value
	ShapeStatusBytes              // status, pointer, length
)

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeStatus:
		return "status"
	case ShapeStatusValue:
		return "status+value"
	case ShapeStatusBytes:
		return "status+bytes"
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// Signature is the exact wire signature of one host import.
type Signature struct {
	Name    string
	Group   string
	Params  []Param
	Results []api.ValueType
	Version Version
}

// Module returns the import module name.
func (s Signature) Module() string {
	return s.Version.Module()
}

// FuncType returns the flat function type.
func (s Signature) FuncType() wasm.FuncType {
	params := make([]api.ValueType, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Type
	}
	return wasm.FuncType{Params: params, Results: append([]api.ValueType(nil), s.Results...)}
}

// Shape classifies the results.
func (s Signature) Shape() Shape {
	switch len(s.Results) {
	case 0:
		return ShapeNone
	case 1:
		return ShapeStatus
	case 2:
		return ShapeStatusValue
	}
	return ShapeStatusBytes
}

// Same reports whether two signatures have the same wire shape. Parameter
// names and groups are documentation only.
func (s Signature) Same(o Signature) bool {
	return s.Version == o.Version && s.Name == o.Name && s.FuncType().Equal(o.FuncType())
}

// String renders the signature on one line:
//
//	env0.transfer(offset_asset_id i32, length_asset_id i32, ..., amount i64) -> (i32)
func (s Signature) String() string {
	var b strings.Builder
	b.WriteString(s.Module())
	b.WriteByte('.')
	b.WriteString(s.Name)
	b.WriteByte('(')
	for i, p := range s.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteByte(' ')
		b.WriteString(api.ValueTypeName(p.Type))
	}
	b.WriteByte(')')
	if len(s.Results) > 0 {
		b.WriteString(" -> ")
		b.WriteString(types.FormatValueTypes(s.Results))
	}
	return b.String()
}

// Holder identifies the kind of account a v1 balance query or transfer targets.
type Holder struct {
	Type    int32
	Version int32
}

// Holder discriminators understood by env1.get_balance and env1.transfer.
var (
	HolderAddress  = Holder{Type: 0, Version: 1}
	HolderAlias    = Holder{Type: 0, Version: 2}
	HolderContract = Holder{Type: 1, Version: 1}
)
