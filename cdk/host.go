package cdk

// HostV0 is the env0 import surface. Every method returns the status of the
// underlying import; callers stop at the first non-zero status.
type HostV0 interface {
	// asset
	GetBalance(asset, address Binary) (Integer, Status)
	Transfer(asset, recipient Binary, amount Integer) Status
	Issue(name, description String, quantity Integer, decimals int32, reissuable Boolean) (Binary, Status)
	Burn(asset Binary, amount Integer) Status
	Reissue(asset Binary, amount Integer, reissuable Boolean) Status

	// block
	BlockTimestamp() (Integer, Status)
	BlockHeight() (Integer, Status)

	// call
	CallArgInt(v Integer) Status
	CallArgBool(v Boolean) Status
	CallArgBinary(v Binary) Status
	CallArgString(v String) Status
	CallPayment(asset Binary, amount Integer) Status
	CallContract(contract Binary, fn String) Status
	CallContractParams(contract Binary, fn String, params Binary) Status

	// crypto
	FastHash(data Binary) (Binary, Status)
	SecureHash(data Binary) (Binary, Status)
	SigVerify(message, signature, publicKey Binary) (Boolean, Status)

	// lease
	LeaseAddress(address Binary, amount Integer) (Binary, Status)
	LeaseAlias(alias String, amount Integer) (Binary, Status)
	CancelLease(leaseID Binary) Status

	// storage
	GetStorageInt(address Binary, key String) (Integer, Status)
	GetStorageBool(address Binary, key String) (Boolean, Status)
	GetStorageBinary(address Binary, key String) (Binary, Status)
	GetStorageString(address Binary, key String) (String, Status)
	SetStorageInt(key String, v Integer) Status
	SetStorageBool(key String, v Boolean) Status
	SetStorageBinary(key String, v Binary) Status
	SetStorageString(key String, v String) Status

	// tx
	TxSender() (Binary, Status)
	TxPayments() (int32, Status)
	TxPaymentAssetID(n int32) (Binary, Status)
	TxPaymentAmount(n int32) (Integer, Status)

	// utils
	Base58(s String) (Binary, Status)
	ToBase58String(b Binary) (String, Status)
	BinaryEquals(left, right Binary) (Boolean, Status)
	StringEquals(left, right String) (Boolean, Status)
	Join(left, right Binary) (Binary, Status)
	ToLeBytes(b Binary) (Binary, Status)
	Caller() (Binary, Status)

	// memory
	Contains(b, sub Binary) (Boolean, Status)
	Drop(b Binary, n Integer) (Binary, Status)
	DropRight(b Binary, n Integer) (Binary, Status)
	IndexOf(b, sub Binary) (Integer, Status)
	LastIndexOf(b, sub Binary) (Integer, Status)
	Take(b Binary, n Integer) (Binary, Status)
	TakeRight(b Binary, n Integer) (Binary, Status)

	// converts
	ParseInt(s String) (Integer, Status)
	ParseBool(s String) (Boolean, Status)
	ToBytes(v Integer) (Binary, Status)
	ToInt(b Binary) (Integer, Status)
	ToStringBool(v Boolean) (String, Status)
	ToStringInt(v Integer) (String, Status)
}

// HostV1 is the env1 import surface.
type HostV1 interface {
	GetBalance(asset, holder Binary, kind Holder) (Integer, Status)
	Transfer(asset, recipient Binary, kind Holder, amount Integer) Status
	Issue(name, description String, quantity, decimals Integer, reissuable Boolean) (Binary, Status)
	TxPayments() (Integer, Status)
	TxPaymentAssetID(n Integer) (Binary, Status)
	TxPaymentAmount(n Integer) (Integer, Status)
	Tx(field String) (Binary, Status)
}

// Host bundles both import versions. Contracts may use both at once.
type Host struct {
	V0 HostV0
	V1 HostV1
}

var current Host

// SetHost installs the host every helper and generated binding talks to.
func SetHost(h Host) {
	current = h
}

// CurrentHost returns the installed host. It panics when none is installed.
func CurrentHost() Host {
	if current.V0 == nil || current.V1 == nil {
		panic("cdk: no host installed")
	}
	return current
}
