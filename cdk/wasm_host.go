package cdk

const unlinked = int32(StatusUnlinked)

// WasmHost returns the host backed by the env0/env1 imports of the running
// module. TinyGo builds install it at startup.
//
// go:wasmimport declarations may return at most one value, so only the
// imports returning nothing or a bare status are linked: argument staging,
// payments, contract calls, storage writes, transfers, burn, reissue and
// cancel_lease. Every import returning a value alongside its status answers
// StatusUnlinked.
func WasmHost() Host {
	return Host{V0: wasmV0{}, V1: wasmV1{}}
}

func flag(b Boolean) int32 {
	if b {
		return 1
	}
	return 0
}

type wasmV0 struct{}

// linked

func (wasmV0) Transfer(asset, recipient Binary, amount Integer) Status {
	ap, an := BinaryPtr(asset)
	rp, rn := BinaryPtr(recipient)
	return Status(env0Transfer(ap, an, rp, rn, amount))
}

func (wasmV0) Burn(asset Binary, amount Integer) Status {
	ap, an := BinaryPtr(asset)
	return Status(env0Burn(ap, an, amount))
}

func (wasmV0) Reissue(asset Binary, amount Integer, reissuable Boolean) Status {
	ap, an := BinaryPtr(asset)
	return Status(env0Reissue(ap, an, amount, flag(reissuable)))
}

func (wasmV0) CallArgInt(v Integer) Status {
	env0CallArgInt(v)
	return StatusOK
}

func (wasmV0) CallArgBool(v Boolean) Status {
	env0CallArgBool(flag(v))
	return StatusOK
}

func (wasmV0) CallArgBinary(v Binary) Status {
	p, n := BinaryPtr(v)
	return Status(env0CallArgBinary(p, n))
}

func (wasmV0) CallArgString(v String) Status {
	p, n := StringPtr(v)
	return Status(env0CallArgString(p, n))
}

func (wasmV0) CallPayment(asset Binary, amount Integer) Status {
	ap, an := BinaryPtr(asset)
	return Status(env0CallPayment(ap, an, amount))
}

func (wasmV0) CallContract(contract Binary, fn String) Status {
	cp, cn := BinaryPtr(contract)
	fp, fnLen := StringPtr(fn)
	return Status(env0CallContract(cp, cn, fp, fnLen))
}

func (wasmV0) CallContractParams(contract Binary, fn String, params Binary) Status {
	cp, cn := BinaryPtr(contract)
	fp, fnLen := StringPtr(fn)
	pp, pn := BinaryPtr(params)
	return Status(env0CallContractParams(cp, cn, fp, fnLen, pp, pn))
}

func (wasmV0) CancelLease(leaseID Binary) Status {
	p, n := BinaryPtr(leaseID)
	return Status(env0CancelLease(p, n))
}

func (wasmV0) SetStorageInt(key String, v Integer) Status {
	kp, kn := StringPtr(key)
	return Status(env0SetStorageInt(kp, kn, v))
}

func (wasmV0) SetStorageBool(key String, v Boolean) Status {
	kp, kn := StringPtr(key)
	return Status(env0SetStorageBool(kp, kn, flag(v)))
}

func (wasmV0) SetStorageBinary(key String, v Binary) Status {
	kp, kn := StringPtr(key)
	vp, vn := BinaryPtr(v)
	return Status(env0SetStorageBinary(kp, kn, vp, vn))
}

func (wasmV0) SetStorageString(key String, v String) Status {
	kp, kn := StringPtr(key)
	vp, vn := StringPtr(v)
	return Status(env0SetStorageString(kp, kn, vp, vn))
}

// unlinked

func (wasmV0) GetBalance(Binary, Binary) (Integer, Status) { return 0, StatusUnlinked }

func (wasmV0) Issue(String, String, Integer, int32, Boolean) (Binary, Status) {
	return nil, StatusUnlinked
}

func (wasmV0) BlockTimestamp() (Integer, Status)                  { return 0, StatusUnlinked }
func (wasmV0) BlockHeight() (Integer, Status)                     { return 0, StatusUnlinked }
func (wasmV0) FastHash(Binary) (Binary, Status)                   { return nil, StatusUnlinked }
func (wasmV0) SecureHash(Binary) (Binary, Status)                 { return nil, StatusUnlinked }
func (wasmV0) SigVerify(Binary, Binary, Binary) (Boolean, Status) { return false, StatusUnlinked }
func (wasmV0) LeaseAddress(Binary, Integer) (Binary, Status)      { return nil, StatusUnlinked }
func (wasmV0) LeaseAlias(String, Integer) (Binary, Status)        { return nil, StatusUnlinked }
func (wasmV0) GetStorageInt(Binary, String) (Integer, Status)     { return 0, StatusUnlinked }
func (wasmV0) GetStorageBool(Binary, String) (Boolean, Status)    { return false, StatusUnlinked }
func (wasmV0) GetStorageBinary(Binary, String) (Binary, Status)   { return nil, StatusUnlinked }
func (wasmV0) GetStorageString(Binary, String) (String, Status)   { return "", StatusUnlinked }
func (wasmV0) TxSender() (Binary, Status)                         { return nil, StatusUnlinked }
func (wasmV0) TxPayments() (int32, Status)                        { return 0, StatusUnlinked }
func (wasmV0) TxPaymentAssetID(int32) (Binary, Status)            { return nil, StatusUnlinked }
func (wasmV0) TxPaymentAmount(int32) (Integer, Status)            { return 0, StatusUnlinked }
func (wasmV0) Base58(String) (Binary, Status)                     { return nil, StatusUnlinked }
func (wasmV0) ToBase58String(Binary) (String, Status)             { return "", StatusUnlinked }
func (wasmV0) BinaryEquals(Binary, Binary) (Boolean, Status)      { return false, StatusUnlinked }
func (wasmV0) StringEquals(String, String) (Boolean, Status)      { return false, StatusUnlinked }
func (wasmV0) Join(Binary, Binary) (Binary, Status)               { return nil, StatusUnlinked }
func (wasmV0) ToLeBytes(Binary) (Binary, Status)                  { return nil, StatusUnlinked }
func (wasmV0) Caller() (Binary, Status)                           { return nil, StatusUnlinked }
func (wasmV0) Contains(Binary, Binary) (Boolean, Status)          { return false, StatusUnlinked }
func (wasmV0) Drop(Binary, Integer) (Binary, Status)              { return nil, StatusUnlinked }
func (wasmV0) DropRight(Binary, Integer) (Binary, Status)         { return nil, StatusUnlinked }
func (wasmV0) IndexOf(Binary, Binary) (Integer, Status)           { return 0, StatusUnlinked }
func (wasmV0) LastIndexOf(Binary, Binary) (Integer, Status)       { return 0, StatusUnlinked }
func (wasmV0) Take(Binary, Integer) (Binary, Status)              { return nil, StatusUnlinked }
func (wasmV0) TakeRight(Binary, Integer) (Binary, Status)         { return nil, StatusUnlinked }
func (wasmV0) ParseInt(String) (Integer, Status)                  { return 0, StatusUnlinked }
func (wasmV0) ParseBool(String) (Boolean, Status)                 { return false, StatusUnlinked }
func (wasmV0) ToBytes(Integer) (Binary, Status)                   { return nil, StatusUnlinked }
func (wasmV0) ToInt(Binary) (Integer, Status)                     { return 0, StatusUnlinked }
func (wasmV0) ToStringBool(Boolean) (String, Status)              { return "", StatusUnlinked }
func (wasmV0) ToStringInt(Integer) (String, Status)               { return "", StatusUnlinked }

type wasmV1 struct{}

func (wasmV1) Transfer(asset, recipient Binary, kind Holder, amount Integer) Status {
	ap, an := BinaryPtr(asset)
	rp, rn := BinaryPtr(recipient)
	return Status(env1Transfer(ap, an, rp, rn, kind.Type, kind.Version, amount))
}

func (wasmV1) GetBalance(Binary, Binary, Holder) (Integer, Status) { return 0, StatusUnlinked }

func (wasmV1) Issue(String, String, Integer, Integer, Boolean) (Binary, Status) {
	return nil, StatusUnlinked
}

func (wasmV1) TxPayments() (Integer, Status)             { return 0, StatusUnlinked }
func (wasmV1) TxPaymentAssetID(Integer) (Binary, Status) { return nil, StatusUnlinked }
func (wasmV1) TxPaymentAmount(Integer) (Integer, Status) { return 0, StatusUnlinked }
func (wasmV1) Tx(String) (Binary, Status)                { return nil, StatusUnlinked }
