package types

import "github.com/wippyai/wevm-cdk/errors"

func unknown(t PrimitiveType) error {
	return errors.UnknownType(errors.PhaseResolve, nil, t.String())
}

func unsupported(t PrimitiveType) error {
	return errors.Unsupported(errors.PhaseResolve, t.String()+" is not handled here")
}
