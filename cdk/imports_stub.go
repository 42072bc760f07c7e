//go:build !tinygo

package cdk

import "unsafe"

// Native builds have no env0/env1 module. These stand-ins let WasmHost
// compile and answer StatusUnlinked; tests install cdk/wevmtest instead.

func env0Transfer(unsafe.Pointer, uint32, unsafe.Pointer, uint32, int64) int32 { return unlinked }
func env0Burn(unsafe.Pointer, uint32, int64) int32                             { return unlinked }
func env0Reissue(unsafe.Pointer, uint32, int64, int32) int32                   { return unlinked }
func env0CallArgInt(int64)                                                     {}
func env0CallArgBool(int32)                                                    {}
func env0CallArgBinary(unsafe.Pointer, uint32) int32                           { return unlinked }
func env0CallArgString(unsafe.Pointer, uint32) int32                           { return unlinked }
func env0CallPayment(unsafe.Pointer, uint32, int64) int32                      { return unlinked }
func env0CallContract(unsafe.Pointer, uint32, unsafe.Pointer, uint32) int32    { return unlinked }
func env0CancelLease(unsafe.Pointer, uint32) int32                             { return unlinked }
func env0SetStorageInt(unsafe.Pointer, uint32, int64) int32                    { return unlinked }
func env0SetStorageBool(unsafe.Pointer, uint32, int32) int32                   { return unlinked }

func env0CallContractParams(unsafe.Pointer, uint32, unsafe.Pointer, uint32, unsafe.Pointer, uint32) int32 {
	return unlinked
}

func env0SetStorageBinary(unsafe.Pointer, uint32, unsafe.Pointer, uint32) int32 { return unlinked }
func env0SetStorageString(unsafe.Pointer, uint32, unsafe.Pointer, uint32) int32 { return unlinked }

func env1Transfer(unsafe.Pointer, uint32, unsafe.Pointer, uint32, int32, int32, int64) int32 {
	return unlinked
}
