package wevmtest

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wevm-cdk/cdk"
	"github.com/wippyai/wevm-cdk/hostimport"
)

func TestHolderConstantsMatchCatalog(t *testing.T) {
	assert.Equal(t, hostimport.HolderAddress.Type, cdk.AddressHolder.Type)
	assert.Equal(t, hostimport.HolderAddress.Version, cdk.AddressHolder.Version)
	assert.Equal(t, hostimport.HolderAlias.Version, cdk.AliasHolder.Version)
	assert.Equal(t, hostimport.HolderContract.Type, cdk.ContractHolder.Type)
}

// Every import the host serves must exist in the catalog under the same name.
func TestTraceNamesAreCatalogImports(t *testing.T) {
	h := New("c")
	h.Fund(h.Self, cdk.SystemToken, 100)
	h.Store(cdk.This, "k", cdk.Integer(1))

	h.GetBalance(nil, nil)
	h.Transfer(nil, []byte("r"), 1)
	id, _ := h.Issue("n", "d", 10, 2, true)
	h.Reissue(id, 1, true)
	h.Burn(id, 1)
	h.BlockHeight()
	h.BlockTimestamp()
	h.CallArgInt(1)
	h.CallArgBool(true)
	h.CallArgBinary(nil)
	h.CallArgString("")
	h.CallPayment(nil, 1)
	h.CallContract([]byte("x"), "f")
	h.CallContractParams([]byte("x"), "f", nil)
	h.FastHash(nil)
	h.SecureHash(nil)
	h.SigVerify(nil, nil, nil)
	lease, _ := h.LeaseAddress([]byte("a"), 1)
	h.LeaseAlias("alias", 1)
	h.CancelLease(lease)
	h.GetStorageInt(nil, "k")
	h.GetStorageBool(nil, "k")
	h.GetStorageBinary(nil, "k")
	h.GetStorageString(nil, "k")
	h.SetStorageInt("k", 1)
	h.SetStorageBool("k", true)
	h.SetStorageBinary("k", nil)
	h.SetStorageString("k", "")
	h.TxSender()
	h.TxPayments()
	h.TxPaymentAssetID(0)
	h.TxPaymentAmount(0)
	h.Base58("")
	h.ToBase58String(nil)
	h.BinaryEquals(nil, nil)
	h.StringEquals("", "")
	h.Join(nil, nil)
	h.ToLeBytes(nil)
	h.Caller()
	h.Contains(nil, nil)
	h.Drop(nil, 0)
	h.DropRight(nil, 0)
	h.IndexOf(nil, nil)
	h.LastIndexOf(nil, nil)
	h.Take(nil, 0)
	h.TakeRight(nil, 0)
	h.ParseInt("1")
	h.ParseBool("true")
	h.ToBytes(1)
	h.ToInt(make([]byte, 8))
	h.ToStringBool(true)
	h.ToStringInt(1)

	v1 := h.V1()
	v1.GetBalance(nil, nil, cdk.AddressHolder)
	v1.Transfer(nil, []byte("r"), cdk.ContractHolder, 1)
	v1.Issue("n", "d", 1, 8, false)
	v1.TxPayments()
	v1.TxPaymentAssetID(0)
	v1.TxPaymentAmount(0)
	v1.Tx("sender")

	reg := hostimport.Default()
	for _, name := range h.Trace {
		_, in0 := reg.Lookup("env0", name)
		_, in1 := reg.Lookup("env1", name)
		assert.True(t, in0 || in1, "%s is not a catalog import", name)
	}
	assert.Len(t, h.Trace, 52+7)
}

func TestStorage(t *testing.T) {
	h := New("c")

	_, s := h.GetStorageInt(cdk.This, "missing")
	assert.Equal(t, cdk.StatusException, s)

	require.Equal(t, cdk.StatusOK, h.SetStorageInt("n", 7))
	v, s := h.GetStorageInt(cdk.This, "n")
	require.Equal(t, cdk.StatusOK, s)
	assert.Equal(t, cdk.Integer(7), v)

	// This and the explicit self address are the same storage
	v, s = h.GetStorageInt(h.Self, "n")
	require.Equal(t, cdk.StatusOK, s)
	assert.Equal(t, cdk.Integer(7), v)

	_, s = h.GetStorageBool(cdk.This, "n")
	assert.Equal(t, cdk.StatusException, s, "type mismatch")

	h.Store([]byte("other"), "name", "bob")
	str, s := h.GetStorageString([]byte("other"), "name")
	require.Equal(t, cdk.StatusOK, s)
	assert.Equal(t, "bob", str)
}

func TestTransfers(t *testing.T) {
	h := New("c")
	h.Fund(cdk.This, cdk.SystemToken, 10)

	assert.Equal(t, cdk.StatusException, h.Transfer(nil, []byte("r"), 11))
	require.Equal(t, cdk.StatusOK, h.V1().Transfer(nil, []byte("r"), cdk.AliasHolder, 4))
	assert.Equal(t, cdk.Integer(6), h.BalanceOf(cdk.This, nil))
	assert.Equal(t, cdk.Integer(4), h.BalanceOf([]byte("r"), nil))
	require.Len(t, h.Transfers, 1)
	assert.Equal(t, cdk.AliasHolder, h.Transfers[0].Holder)

	assert.Equal(t, cdk.StatusException, h.V1().Transfer(nil, []byte("r"), cdk.Holder{Type: 9}, 1))
}

func TestIssueBurnReissue(t *testing.T) {
	h := New("c")
	id, s := h.V1().Issue("gold", "shiny", 1000, 2, false)
	require.Equal(t, cdk.StatusOK, s)
	assert.Equal(t, cdk.Integer(1000), h.BalanceOf(cdk.This, id))

	require.Equal(t, cdk.StatusOK, h.Burn(id, 100))
	assert.Equal(t, cdk.Integer(900), h.Assets[string(id)].Quantity)
	assert.Equal(t, cdk.StatusException, h.Reissue(id, 1, true), "not reissuable")
	assert.Equal(t, cdk.StatusException, h.Burn([]byte("nope"), 1))

	_, s = h.Issue("bad", "", 1, 9, true)
	assert.Equal(t, cdk.StatusException, s)
}

func TestOutgoingCalls(t *testing.T) {
	h := New("c")
	h.Fund(cdk.This, []byte("usd"), 5)

	var got Call
	h.Contracts["remote"] = func(c Call) cdk.Status {
		got = c
		return 0
	}

	require.Equal(t, cdk.StatusOK, h.CallArgBinary([]byte{1}))
	require.Equal(t, cdk.StatusOK, h.CallArgInt(2))
	require.Equal(t, cdk.StatusOK, h.CallPayment([]byte("usd"), 5))
	require.Equal(t, cdk.StatusOK, h.CallContract([]byte("remote"), "deposit"))

	assert.Equal(t, "deposit", got.Func)
	assert.Equal(t, []Arg{{Kind: "binary", Value: cdk.Binary{1}}, {Kind: "integer", Value: cdk.Integer(2)}}, got.Args)
	assert.Equal(t, cdk.Integer(5), h.BalanceOf([]byte("remote"), []byte("usd")))
	assert.Equal(t, cdk.Integer(0), h.BalanceOf(cdk.This, []byte("usd")))

	// staging resets after each call
	require.Equal(t, cdk.StatusOK, h.CallContract([]byte("other"), "ping"))
	assert.Empty(t, h.Calls[1].Args)

	h.Contracts["broken"] = func(Call) cdk.Status { return 42 }
	assert.Equal(t, cdk.Status(42), h.CallContract([]byte("broken"), "x"))

	// payment larger than the balance
	require.Equal(t, cdk.StatusOK, h.CallPayment([]byte("usd"), 1))
	assert.Equal(t, cdk.StatusException, h.CallContract([]byte("remote"), "deposit"))
}

func TestRejectedPaymentsMoveNothing(t *testing.T) {
	h := New("c")
	h.Fund(cdk.This, []byte("usd"), 10)
	h.Fund(cdk.This, []byte("eur"), 3)

	// the first payment is covered, the second is not
	require.Equal(t, cdk.StatusOK, h.CallPayment([]byte("usd"), 10))
	require.Equal(t, cdk.StatusOK, h.CallPayment([]byte("eur"), 4))
	assert.Equal(t, cdk.StatusException, h.CallContract([]byte("remote"), "deposit"))

	assert.Equal(t, cdk.Integer(10), h.BalanceOf(cdk.This, []byte("usd")))
	assert.Equal(t, cdk.Integer(3), h.BalanceOf(cdk.This, []byte("eur")))
	assert.Equal(t, cdk.Integer(0), h.BalanceOf([]byte("remote"), []byte("usd")))
	assert.Empty(t, h.Calls)

	// two payments of one asset are checked against the balance together
	require.Equal(t, cdk.StatusOK, h.CallPayment([]byte("usd"), 6))
	require.Equal(t, cdk.StatusOK, h.CallPayment([]byte("usd"), 6))
	assert.Equal(t, cdk.StatusException, h.CallContract([]byte("remote"), "deposit"))
	assert.Equal(t, cdk.Integer(10), h.BalanceOf(cdk.This, []byte("usd")))

	require.Equal(t, cdk.StatusOK, h.CallPayment([]byte("usd"), 6))
	require.Equal(t, cdk.StatusOK, h.CallPayment([]byte("usd"), 4))
	require.Equal(t, cdk.StatusOK, h.CallContract([]byte("remote"), "deposit"))
	assert.Equal(t, cdk.Integer(0), h.BalanceOf(cdk.This, []byte("usd")))
	assert.Equal(t, cdk.Integer(10), h.BalanceOf([]byte("remote"), []byte("usd")))
}

func TestFailOn(t *testing.T) {
	h := New("c")
	h.FailOn("set_storage_int", 301)
	assert.Equal(t, cdk.Status(301), h.SetStorageInt("k", 1))
	_, ok := h.Stored(cdk.This, "k")
	assert.False(t, ok)
}

func TestCryptoAndUtils(t *testing.T) {
	h := New("c")

	sum, s := h.FastHash([]byte("abc"))
	require.Equal(t, cdk.StatusOK, s)
	assert.Len(t, sum, 32)

	sec, _ := h.SecureHash([]byte("abc"))
	assert.Len(t, sec, 32)
	assert.NotEqual(t, sum, sec)

	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	sig := ed25519.Sign(priv, []byte("msg"))
	ok, _ := h.SigVerify([]byte("msg"), sig, pub)
	assert.True(t, ok)
	ok, _ = h.SigVerify([]byte("other"), sig, pub)
	assert.False(t, ok)

	enc := base58.Encode([]byte("hello"))
	dec, s := h.Base58(enc)
	require.Equal(t, cdk.StatusOK, s)
	assert.Equal(t, []byte("hello"), []byte(dec))
	_, s = h.Base58("0OIl")
	assert.Equal(t, cdk.StatusException, s)

	str, _ := h.ToBase58String([]byte("hello"))
	assert.Equal(t, enc, str)

	le, _ := h.ToLeBytes([]byte{1, 2, 3})
	assert.Equal(t, cdk.Binary{3, 2, 1}, le)
}

func TestMemoryAndConverts(t *testing.T) {
	h := New("c")
	data := []byte{0, 1, 2, 3, 4, 5}

	b, _ := h.Drop(data, 2)
	assert.Equal(t, cdk.Binary{2, 3, 4, 5}, b)
	b, _ = h.DropRight(data, 2)
	assert.Equal(t, cdk.Binary{0, 1, 2, 3}, b)
	b, _ = h.Take(data, 10)
	assert.Equal(t, cdk.Binary(data), b)
	b, _ = h.TakeRight(data, 1)
	assert.Equal(t, cdk.Binary{5}, b)
	_, s := h.Take(data, -1)
	assert.Equal(t, cdk.StatusException, s)

	i, _ := h.IndexOf([]byte("Hello, world! world"), []byte("world"))
	assert.Equal(t, cdk.Integer(7), i)
	i, _ = h.LastIndexOf([]byte("Hello, world! world"), []byte("world"))
	assert.Equal(t, cdk.Integer(14), i)

	n, _ := h.ParseInt("31337")
	assert.Equal(t, cdk.Integer(31337), n)
	_, s = h.ParseInt("x")
	assert.Equal(t, cdk.StatusException, s)

	raw, _ := h.ToBytes(31337)
	back, s := h.ToInt(raw)
	require.Equal(t, cdk.StatusOK, s)
	assert.Equal(t, cdk.Integer(31337), back)
	_, s = h.ToInt([]byte{1})
	assert.Equal(t, cdk.StatusException, s)
}

func TestPaymentsAndFields(t *testing.T) {
	h := New("c")
	h.Payments = []cdk.Payment{{AssetID: nil, Amount: 3}, {AssetID: []byte("usd"), Amount: 9}}
	h.Fields[cdk.FieldTxID] = []byte("tx-1")

	n, _ := h.V1().TxPayments()
	assert.Equal(t, cdk.Integer(2), n)
	amount, _ := h.TxPaymentAmount(1)
	assert.Equal(t, cdk.Integer(9), amount)
	_, s := h.V1().TxPaymentAssetID(2)
	assert.Equal(t, cdk.StatusException, s)

	id, s := h.V1().Tx(cdk.FieldTxID)
	require.Equal(t, cdk.StatusOK, s)
	assert.Equal(t, cdk.Binary("tx-1"), id)
	_, s = h.V1().Tx("unknown")
	assert.Equal(t, cdk.StatusException, s)
}
