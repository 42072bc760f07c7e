package cdk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wevm-cdk/cdk"
)

// Outside TinyGo the import stand-ins answer StatusUnlinked, so every helper
// fails with it instead of panicking on a missing host.
func TestWasmHostNative(t *testing.T) {
	cdk.SetHost(cdk.WasmHost())
	t.Cleanup(func() { cdk.SetHost(cdk.Host{}) })

	require.NotPanics(t, func() { cdk.CurrentHost() })

	assert.ErrorIs(t, cdk.SetInt("k", 1), cdk.StatusUnlinked)
	assert.ErrorIs(t, cdk.SetBinary("k", cdk.Binary("v")), cdk.StatusUnlinked)
	assert.ErrorIs(t, cdk.TransferToAddress(cdk.Binary("to"), 1), cdk.StatusUnlinked)
	assert.ErrorIs(t, cdk.TransferToContract(cdk.Binary("to"), 1), cdk.StatusUnlinked)
	assert.ErrorIs(t, cdk.CallWithParams(cdk.Binary("c"), "f", nil), cdk.StatusUnlinked)

	_, err := cdk.GetInt("k")
	assert.ErrorIs(t, err, cdk.StatusUnlinked)
	_, err = cdk.TxSender()
	assert.ErrorIs(t, err, cdk.StatusUnlinked)

	assert.Equal(t, int32(399), cdk.Finish(cdk.SetBool("k", true)))
}

func TestWasmHostStagingHasNoStatus(t *testing.T) {
	h := cdk.WasmHost()
	// call_arg_int and call_arg_bool return nothing on the wire
	assert.Equal(t, cdk.StatusOK, h.V0.CallArgInt(7))
	assert.Equal(t, cdk.StatusOK, h.V0.CallArgBool(true))
	assert.Equal(t, cdk.StatusUnlinked, h.V0.CallArgString("x"))
}
