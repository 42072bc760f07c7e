// Package wevmtest provides an in-memory WEVM host so contracts can be unit
// tested with the regular Go toolchain, without compiling to WebAssembly.
//
//	h := wevmtest.New("counter").Install()
//	h.Store(cdk.This, "value", cdk.Integer(1))
//	status := _we_increment()
//
// The host records every import it serves in Trace, outgoing calls in Calls
// and failure messages reported through cdk.Finish in Failures. FailOn makes
// a named import return a chosen status to exercise error paths.
package wevmtest

import "github.com/wippyai/wevm-cdk/cdk"

var (
	_ cdk.HostV0      = (*Host)(nil)
	_ cdk.HostV1      = v1{}
	_ cdk.MessageSink = (*Host)(nil)
)
