package codegen

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wevm-cdk/contract"
	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/types"
)

// Export is the wire signature of one generated action export.
type Export struct {
	Name    string
	Params  []api.ValueType
	Results []api.ValueType
}

// Plan returns the wire signature of every export Generate emits for c, in
// declaration order.
func Plan(c *contract.Contract) ([]Export, error) {
	out := make([]Export, 0, len(c.Actions))
	for _, a := range c.Actions {
		params, err := types.WireSignature(a.ParamTypes())
		if err != nil {
			return nil, errors.New(errors.PhaseGenerate, errors.KindUnsupported).
				Pos(a.Pos).Path(a.Name).Cause(err).Build()
		}
		out = append(out, Export{
			Name:    a.Name,
			Params:  params,
			Results: []api.ValueType{api.ValueTypeI32},
		})
	}
	return out, nil
}
