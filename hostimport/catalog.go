package hostimport

import "github.com/tetratelabs/wazero/api"

const (
	i32 = api.ValueTypeI32
	i64 = api.ValueTypeI64
)

// bytesOf expands a Binary or String argument into its offset/length pair.
func bytesOf(name string) []Param {
	return []Param{{Name: "offset_" + name, Type: i32}, {Name: "length_" + name, Type: i32}}
}

func scalar(name string, t api.ValueType) []Param {
	return []Param{{Name: name, Type: t}}
}

func params(groups ...[]Param) []Param {
	var out []Param
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var (
	resNone   []api.ValueType
	resStatus = []api.ValueType{i32}
	resInt    = []api.ValueType{i32, i64}
	resBool   = []api.ValueType{i32, i32}
	resBytes  = []api.ValueType{i32, i32, i32}
)

func fn(v Version, group, name string, p []Param, results []api.ValueType) Signature {
	return Signature{Version: v, Group: group, Name: name, Params: p, Results: results}
}

// v0Catalog is the published env0 surface. Order is the listing order.
func v0Catalog() []Signature {
	const v = V0
	return []Signature{
		// asset
		fn(v, "asset", "get_balance", params(bytesOf("asset_id"), bytesOf("address")), resInt),
		fn(v, "asset", "transfer", params(bytesOf("asset_id"), bytesOf("recipient"), scalar("amount", i64)), resStatus),
		fn(v, "asset", "issue", params(bytesOf("name"), bytesOf("description"), scalar("quantity", i64), scalar("decimals", i32), scalar("is_reissuable", i32)), resBytes),
		fn(v, "asset", "burn", params(bytesOf("asset_id"), scalar("amount", i64)), resStatus),
		fn(v, "asset", "reissue", params(bytesOf("asset_id"), scalar("amount", i64), scalar("is_reissuable", i32)), resStatus),

		// block
		fn(v, "block", "get_block_timestamp", nil, resInt),
		fn(v, "block", "get_block_height", nil, resInt),

		// call
		fn(v, "call", "call_arg_int", scalar("value", i64), resNone),
		fn(v, "call", "call_arg_bool", scalar("value", i32), resNone),
		fn(v, "call", "call_arg_binary", bytesOf("value"), resStatus),
		fn(v, "call", "call_arg_string", bytesOf("value"), resStatus),
		fn(v, "call", "call_payment", params(bytesOf("asset_id"), scalar("amount", i64)), resStatus),
		fn(v, "call", "call_contract", params(bytesOf("contract_id"), bytesOf("func_name")), resStatus),
		fn(v, "call", "call_contract_params", params(bytesOf("contract_id"), bytesOf("func_name"), bytesOf("params")), resStatus),

		// crypto
		fn(v, "crypto", "fast_hash", bytesOf("bytes"), resBytes),
		fn(v, "crypto", "secure_hash", bytesOf("bytes"), resBytes),
		fn(v, "crypto", "sig_verify", params(bytesOf("message"), bytesOf("signature"), bytesOf("public_key")), resBool),

		// lease
		fn(v, "lease", "lease_address", params(bytesOf("address"), scalar("amount", i64)), resBytes),
		fn(v, "lease", "lease_alias", params(bytesOf("alias"), scalar("amount", i64)), resBytes),
		fn(v, "lease", "cancel_lease", bytesOf("lease_id"), resStatus),

		// storage
		fn(v, "storage", "get_storage_int", params(bytesOf("address"), bytesOf("key")), resInt),
		fn(v, "storage", "get_storage_bool", params(bytesOf("address"), bytesOf("key")), resBool),
		fn(v, "storage", "get_storage_binary", params(bytesOf("address"), bytesOf("key")), resBytes),
		fn(v, "storage", "get_storage_string", params(bytesOf("address"), bytesOf("key")), resBytes),
		fn(v, "storage", "set_storage_int", params(bytesOf("key"), scalar("value", i64)), resStatus),
		fn(v, "storage", "set_storage_bool", params(bytesOf("key"), scalar("value", i32)), resStatus),
		fn(v, "storage", "set_storage_binary", params(bytesOf("key"), bytesOf("value")), resStatus),
		fn(v, "storage", "set_storage_string", params(bytesOf("key"), bytesOf("value")), resStatus),

		// tx
		fn(v, "tx", "get_tx_sender", nil, resBytes),
		fn(v, "tx", "get_tx_payments", nil, resBool),
		fn(v, "tx", "get_tx_payment_asset_id", scalar("number", i32), resBytes),
		fn(v, "tx", "get_tx_payment_amount", scalar("number", i32), resInt),

		// utils
		fn(v, "utils", "base_58", bytesOf("bytes"), resBytes),
		fn(v, "utils", "to_base_58_string", bytesOf("bytes"), resBytes),
		fn(v, "utils", "binary_equals", params(bytesOf("left"), bytesOf("right")), resBool),
		fn(v, "utils", "string_equals", params(bytesOf("left"), bytesOf("right")), resBool),
		fn(v, "utils", "join", params(bytesOf("left"), bytesOf("right")), resBytes),
		fn(v, "utils", "to_le_bytes", bytesOf("bytes"), resBytes),
		fn(v, "utils", "caller", nil, resBytes),

		// memory
		fn(v, "memory", "contains", params(bytesOf("bytes"), bytesOf("subbytes")), resBool),
		fn(v, "memory", "drop", params(bytesOf("bytes"), scalar("n", i64)), resBytes),
		fn(v, "memory", "drop_right", params(bytesOf("bytes"), scalar("n", i64)), resBytes),
		fn(v, "memory", "index_of", params(bytesOf("bytes"), bytesOf("subbytes")), resInt),
		fn(v, "memory", "last_index_of", params(bytesOf("bytes"), bytesOf("subbytes")), resInt),
		fn(v, "memory", "take", params(bytesOf("bytes"), scalar("n", i64)), resBytes),
		fn(v, "memory", "take_right", params(bytesOf("bytes"), scalar("n", i64)), resBytes),

		// converts
		fn(v, "converts", "parse_int", bytesOf("value"), resInt),
		fn(v, "converts", "parse_bool", bytesOf("value"), resBool),
		fn(v, "converts", "to_bytes", scalar("value", i64), resBytes),
		fn(v, "converts", "to_int", bytesOf("bytes"), resInt),
		fn(v, "converts", "to_string_bool", scalar("value", i32), resBytes),
		fn(v, "converts", "to_string_int", scalar("value", i64), resBytes),
	}
}

// v1Catalog is the published env1 surface.
func v1Catalog() []Signature {
	const v = V1
	holder := params(scalar("type", i32), scalar("version", i32))
	return []Signature{
		// asset
		fn(v, "asset", "get_balance", params(bytesOf("asset_id"), bytesOf("address"), holder), resInt),
		fn(v, "asset", "transfer", params(bytesOf("asset_id"), bytesOf("recipient"), holder, scalar("amount", i64)), resStatus),
		fn(v, "asset", "issue", params(bytesOf("name"), bytesOf("description"), scalar("quantity", i64), scalar("decimals", i64), scalar("is_reissuable", i32)), resBytes),

		// tx
		fn(v, "tx", "get_tx_payments", nil, resInt),
		fn(v, "tx", "get_tx_payment_asset_id", scalar("number", i64), resBytes),
		fn(v, "tx", "get_tx_payment_amount", scalar("number", i64), resInt),
		fn(v, "tx", "tx", bytesOf("field"), resBytes),
	}
}
