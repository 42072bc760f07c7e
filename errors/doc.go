// Package errors provides structured error types for the WEVM toolkit.
//
// Errors are categorized by Phase (which tool stage failed) and Kind (error category).
// The Error type carries the declaration path, source position, the declared type token
// and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindUnknownType).
//		Pos("contract.go:12:20").
//		Path("transfer_to", "amount").
//		Type("uint64").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownType(errors.PhaseResolve, path, "uint64")
//	err := errors.Duplicate(errors.PhaseParse, "action", "flip")
//
// Code generation and extraction errors are fatal: callers never receive a partial
// result together with an error. All errors support errors.Is/As.
package errors
