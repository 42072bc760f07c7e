package cdk

// Integer is a signed 64-bit integer.
type Integer = int64

// Boolean is a boolean.
type Boolean = bool

// Binary is a byte array. Values received from the host are borrowed views
// that stay valid only for the current call.
type Binary = []byte

// String is a UTF-8 string.
type String = string

// Payment is an amount of an asset attached to an outgoing contract call.
// An empty AssetID names the native token.
type Payment struct {
	AssetID Binary
	Amount  Integer
}

// SystemToken names the native token wherever an asset id is expected.
var SystemToken = Binary{}

// This names the executing contract wherever an address is expected.
var This = Binary{}

// Holder selects the kind of account a balance query or transfer targets.
type Holder struct {
	Type    int32
	Version int32
}

// Holder discriminators.
var (
	AddressHolder  = Holder{Type: 0, Version: 1}
	AliasHolder    = Holder{Type: 0, Version: 2}
	ContractHolder = Holder{Type: 1, Version: 1}
)
