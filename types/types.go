package types

import (
	"fmt"
	"strings"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wevm-cdk/errors"
)

// PrimitiveType is the closed set of contract-visible types.
type PrimitiveType uint8

const (
	Integer PrimitiveType = iota + 1
	Boolean
	Binary
	String
	Payment
)

// All lists every primitive in declaration order.
var All = []PrimitiveType{Integer, Boolean, Binary, String, Payment}

var names = map[PrimitiveType]string{
	Integer: "Integer",
	Boolean: "Boolean",
	Binary:  "Binary",
	String:  "String",
	Payment: "Payment",
}

// SDKPackage is the import path of the guest SDK whose aliases name the primitives.
const SDKPackage = "github.com/wippyai/wevm-cdk/cdk"

// String returns the ABI tag.
func (t PrimitiveType) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("PrimitiveType(%d)", uint8(t))
}

// Valid reports whether t is one of the five primitives.
func (t PrimitiveType) Valid() bool {
	_, ok := names[t]
	return ok
}

// IsParam reports whether t may appear as an action or interface parameter.
func (t PrimitiveType) IsParam() bool {
	return t.Valid() && t != Payment
}

func (t PrimitiveType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, errors.New(errors.PhaseExtract, errors.KindUnknownType).
			Value(uint8(t)).
			Detail("cannot encode %s", t).
			Build()
	}
	return []byte(names[t]), nil
}

func (t *PrimitiveType) UnmarshalText(b []byte) error {
	p, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = p
	return nil
}

// Parse maps an ABI tag back to its primitive.
func Parse(tag string) (PrimitiveType, error) {
	for t, n := range names {
		if n == tag {
			return t, nil
		}
	}
	return 0, errors.UnknownType(errors.PhaseResolve, nil, tag)
}

// Resolve maps a declared type expression to its primitive. It accepts the bare
// alias name or the name qualified by the SDK package, for example "Binary" or
// "cdk.Binary". qualifier is the local name the SDK is imported under; an
// empty qualifier only accepts bare names.
//
// Resolve is the single resolution routine behind both code generation and ABI
// extraction.
func Resolve(expr, qualifier string) (PrimitiveType, error) {
	name := strings.TrimSpace(expr)
	if pkg, sel, ok := strings.Cut(name, "."); ok {
		if qualifier == "" || pkg != qualifier {
			return 0, errors.UnknownType(errors.PhaseResolve, nil, expr)
		}
		name = sel
	}
	for t, n := range names {
		if n == name {
			return t, nil
		}
	}
	return 0, errors.UnknownType(errors.PhaseResolve, nil, expr)
}

// Wire returns the flat wire shape of a parameter of type t.
func Wire(t PrimitiveType) ([]api.ValueType, error) {
	switch t {
	case Integer:
		return []api.ValueType{api.ValueTypeI64}, nil
	case Boolean:
		return []api.ValueType{api.ValueTypeI32}, nil
	case Binary, String:
		return []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}, nil
	case Payment:
		return nil, errors.Unsupported(errors.PhaseResolve, "Payment has no parameter wire shape")
	}
	return nil, errors.UnknownType(errors.PhaseResolve, nil, t.String())
}

// WireCount returns how many wire values a parameter of type t occupies, or 0
// when t has no wire shape.
func WireCount(t PrimitiveType) int {
	switch t {
	case Integer, Boolean:
		return 1
	case Binary, String:
		return 2
	}
	return 0
}

// WireSignature flattens a parameter list into its wire parameter types.
func WireSignature(params []PrimitiveType) ([]api.ValueType, error) {
	out := make([]api.ValueType, 0, len(params)*2)
	for _, p := range params {
		w, err := Wire(p)
		if err != nil {
			return nil, err
		}
		out = append(out, w...)
	}
	return out, nil
}

// FormatValueTypes renders wire types as "(i32, i64)".
func FormatValueTypes(vts []api.ValueType) string {
	parts := make([]string, len(vts))
	for i, v := range vts {
		parts[i] = api.ValueTypeName(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
