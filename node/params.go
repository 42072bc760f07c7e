package node

import (
	"encoding/base64"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mr-tron/base58"

	"github.com/wippyai/wevm-cdk/abi"
	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/types"
)

// Parameter type names used in transactions.
const (
	ParamInteger = "integer"
	ParamBoolean = "boolean"
	ParamBinary  = "binary"
	ParamString  = "string"
)

// Binary value prefixes.
const (
	Base64Prefix = "base64:"
	Base58Prefix = "base58:"
)

// ParamType returns the transaction type name of a primitive.
func ParamType(t types.PrimitiveType) (string, error) {
	var out string
	err := types.Accept(t, types.VisitorFuncs{
		Integer: func() error { out = ParamInteger; return nil },
		Boolean: func() error { out = ParamBoolean; return nil },
		Binary:  func() error { out = ParamBinary; return nil },
		String:  func() error { out = ParamString; return nil },
	})
	return out, err
}

// ParamsFromABI converts textual argument values into typed call parameters
// for fn, in ABI order. Binary values must carry a "base64:" or "base58:"
// prefix and are always sent base64 encoded.
func ParamsFromABI(fn abi.Function, values []string) ([]Param, error) {
	if len(values) != len(fn.Args) {
		return nil, errors.New(errors.PhaseDeploy, errors.KindInvalidInput).
			Path(fn.Name).
			Detail("want %d argument(s), got %d", len(fn.Args), len(values)).
			Build()
	}

	params := make([]Param, 0, len(values))
	for i, arg := range fn.Args {
		p, err := ParseParam(arg, values[i])
		if err != nil {
			return nil, errors.New(errors.PhaseDeploy, errors.KindInvalidInput).
				Path(fn.Name, arg.Name).
				Type(arg.Type.String()).
				Cause(err).
				Build()
		}
		params = append(params, p)
	}
	return params, nil
}

// ParseParam converts one textual value of the declared type.
func ParseParam(arg abi.Arg, value string) (Param, error) {
	p := Param{Key: arg.Name}
	var err error
	p.Type, err = ParamType(arg.Type)
	if err != nil {
		return Param{}, err
	}

	switch arg.Type {
	case types.Integer:
		p.Value, err = strconv.ParseInt(value, 10, 64)
	case types.Boolean:
		p.Value, err = strconv.ParseBool(value)
	case types.Binary:
		var b []byte
		b, err = DecodeBinary(value)
		p.Value = Base64Prefix + base64.StdEncoding.EncodeToString(b)
	case types.String:
		if !utf8.ValidString(value) {
			return Param{}, errors.InvalidUTF8(errors.PhaseDeploy, []string{arg.Name}, []byte(value))
		}
		p.Value = value
	}
	if err != nil {
		return Param{}, err
	}
	return p, nil
}

// DecodeBinary decodes a prefixed binary literal.
func DecodeBinary(value string) ([]byte, error) {
	switch {
	case strings.HasPrefix(value, Base64Prefix):
		return base64.StdEncoding.DecodeString(strings.TrimPrefix(value, Base64Prefix))
	case strings.HasPrefix(value, Base58Prefix):
		return base58.Decode(strings.TrimPrefix(value, Base58Prefix))
	}
	return nil, errors.InvalidInput(errors.PhaseDeploy, "binary value needs a base64: or base58: prefix")
}
