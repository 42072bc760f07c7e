// Package contract parses Go contract sources into the model shared by code
// generation and ABI extraction.
//
// An action is a top-level function carrying the //we:action directive; an
// interface is an interface type carrying //we:interface. No other
// declaration is ever treated as either. Parameter types resolve through
// types.Resolve, so a source accepted here yields identical signatures in
// generated bindings and in the ABI.
package contract
