//go:build tinygo

package cdk

import "unsafe"

func init() {
	SetHost(WasmHost())
}

// Single-result and no-result env0 imports. Imports returning several values
// cannot be declared with go:wasmimport; see WasmHost.

//go:wasmimport env0 transfer
func env0Transfer(assetPtr unsafe.Pointer, assetLen uint32, recipientPtr unsafe.Pointer, recipientLen uint32, amount int64) int32

//go:wasmimport env0 burn
func env0Burn(assetPtr unsafe.Pointer, assetLen uint32, amount int64) int32

//go:wasmimport env0 reissue
func env0Reissue(assetPtr unsafe.Pointer, assetLen uint32, amount int64, reissuable int32) int32

//go:wasmimport env0 call_arg_int
func env0CallArgInt(v int64)

//go:wasmimport env0 call_arg_bool
func env0CallArgBool(v int32)

//go:wasmimport env0 call_arg_binary
func env0CallArgBinary(ptr unsafe.Pointer, n uint32) int32

//go:wasmimport env0 call_arg_string
func env0CallArgString(ptr unsafe.Pointer, n uint32) int32

//go:wasmimport env0 call_payment
func env0CallPayment(assetPtr unsafe.Pointer, assetLen uint32, amount int64) int32

//go:wasmimport env0 call_contract
func env0CallContract(contractPtr unsafe.Pointer, contractLen uint32, fnPtr unsafe.Pointer, fnLen uint32) int32

//go:wasmimport env0 call_contract_params
func env0CallContractParams(contractPtr unsafe.Pointer, contractLen uint32, fnPtr unsafe.Pointer, fnLen uint32, paramsPtr unsafe.Pointer, paramsLen uint32) int32

//go:wasmimport env0 cancel_lease
func env0CancelLease(ptr unsafe.Pointer, n uint32) int32

//go:wasmimport env0 set_storage_int
func env0SetStorageInt(keyPtr unsafe.Pointer, keyLen uint32, v int64) int32

//go:wasmimport env0 set_storage_bool
func env0SetStorageBool(keyPtr unsafe.Pointer, keyLen uint32, v int32) int32

//go:wasmimport env0 set_storage_binary
func env0SetStorageBinary(keyPtr unsafe.Pointer, keyLen uint32, valuePtr unsafe.Pointer, valueLen uint32) int32

//go:wasmimport env0 set_storage_string
func env0SetStorageString(keyPtr unsafe.Pointer, keyLen uint32, valuePtr unsafe.Pointer, valueLen uint32) int32

//go:wasmimport env1 transfer
func env1Transfer(assetPtr unsafe.Pointer, assetLen uint32, recipientPtr unsafe.Pointer, recipientLen uint32, holderType, holderVersion int32, amount int64) int32
