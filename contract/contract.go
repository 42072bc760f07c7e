package contract

import (
	"github.com/wippyai/wevm-cdk/types"
)

// Directive comments recognised on declarations.
const (
	ActionDirective    = "//we:action"
	InterfaceDirective = "//we:interface"
)

// Contract is the typed model of one contract source file.
type Contract struct {
	Package    string
	Filename   string
	Qualifier  string // local name of the cdk import, empty when absent or dot-imported
	Actions    []Action
	Interfaces []Interface
}

// Param is a named parameter with a resolved primitive type.
type Param struct {
	Name string
	Pos  string
	Type types.PrimitiveType
}

// Action is an exported contract entry point.
type Action struct {
	Name         string
	Pos          string
	Params       []Param
	ReturnsError bool
}

// ParamTypes returns the parameter types in declaration order.
func (a Action) ParamTypes() []types.PrimitiveType {
	return paramTypes(a.Params)
}

// Interface describes the callable surface of another contract.
type Interface struct {
	Name    string
	Pos     string
	Methods []Method
}

// Method is one remote function of an Interface.
type Method struct {
	Name   string
	Pos    string
	Params []Param
}

// ParamTypes returns the parameter types in declaration order.
func (m Method) ParamTypes() []types.PrimitiveType {
	return paramTypes(m.Params)
}

// Action looks up an action by name.
func (c *Contract) Action(name string) (Action, bool) {
	for _, a := range c.Actions {
		if a.Name == name {
			return a, true
		}
	}
	return Action{}, false
}

func paramTypes(params []Param) []types.PrimitiveType {
	out := make([]types.PrimitiveType, len(params))
	for i, p := range params {
		out[i] = p.Type
	}
	return out
}
