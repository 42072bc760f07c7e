package wevmtest

import (
	"bytes"
	"crypto/ed25519"
	"encoding/binary"
	"strconv"
	"sync"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/wippyai/wevm-cdk/cdk"
)

// Arg is one argument staged for an outgoing call.
type Arg struct {
	Value any
	Kind  string // "integer", "boolean", "binary" or "string"
}

// Call is an outgoing contract invocation observed by the host.
type Call struct {
	Contract cdk.Binary
	Func     string
	Args     []Arg
	Params   cdk.Binary // set for raw parameterised calls
	Payments []cdk.Payment
}

// Transfer is a completed asset movement.
type Transfer struct {
	Asset     cdk.Binary
	Recipient cdk.Binary
	Holder    cdk.Holder
	Amount    cdk.Integer
}

// Asset describes an asset issued during the test.
type Asset struct {
	ID          cdk.Binary
	Name        string
	Description string
	Quantity    cdk.Integer
	Decimals    cdk.Integer
	Reissuable  bool
}

// Lease is an active lease.
type Lease struct {
	ID        cdk.Binary
	Recipient cdk.Binary
	Amount    cdk.Integer
}

// Failure is a message an action reported through cdk.Finish.
type Failure struct {
	Message string
	Status  int32
}

// ContractFunc simulates a remote contract. A non-zero status fails the call.
type ContractFunc func(c Call) cdk.Status

// Host is an in-memory WEVM host for native tests. The zero value is not
// usable; create one with New.
type Host struct {
	Self      cdk.Binary
	Sender    cdk.Binary
	CallerID  cdk.Binary
	Height    cdk.Integer
	Timestamp cdk.Integer
	Payments  []cdk.Payment
	Fields    map[string]cdk.Binary
	Contracts map[string]ContractFunc

	// Verify checks signatures; defaults to ed25519.
	Verify func(message, signature, publicKey []byte) bool

	Calls     []Call
	Transfers []Transfer
	Assets    map[string]*Asset
	Leases    map[string]*Lease
	Failures  []Failure
	Trace     []string

	storage  map[string]map[string]any
	balances map[string]map[string]cdk.Integer
	failOn   map[string]cdk.Status
	pending  Call
	nonce    uint64
	mu       sync.Mutex
}

// New returns a host for a contract identified by self.
func New(self string) *Host {
	return &Host{
		Self:      cdk.Binary(self),
		Sender:    cdk.Binary("sender"),
		Height:    1,
		Timestamp: 1,
		Fields:    make(map[string]cdk.Binary),
		Contracts: make(map[string]ContractFunc),
		Verify: func(message, signature, publicKey []byte) bool {
			if len(publicKey) != ed25519.PublicKeySize {
				return false
			}
			return ed25519.Verify(publicKey, message, signature)
		},
		Assets:   make(map[string]*Asset),
		Leases:   make(map[string]*Lease),
		storage:  make(map[string]map[string]any),
		balances: make(map[string]map[string]cdk.Integer),
		failOn:   make(map[string]cdk.Status),
	}
}

// Install makes h the host of every cdk helper and generated binding.
func (h *Host) Install() *Host {
	cdk.SetHost(cdk.Host{V0: h, V1: v1{h}})
	return h
}

// FailOn makes every later call of the named import return status.
func (h *Host) FailOn(name string, status cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failOn[name] = status
}

// Fund credits holder with amount of asset; an empty asset is the native token.
func (h *Host) Fund(holder, asset cdk.Binary, amount cdk.Integer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.credit(holder, asset, amount)
}

// BalanceOf returns the recorded balance of holder.
func (h *Host) BalanceOf(holder, asset cdk.Binary) cdk.Integer {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.balances[string(h.resolve(holder))][string(asset)]
}

// Stored returns the raw value of key in the storage of address.
func (h *Host) Stored(address cdk.Binary, key string) (any, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, ok := h.storage[string(h.resolve(address))][key]
	return v, ok
}

// Store writes a value directly, bypassing the contract.
func (h *Host) Store(address cdk.Binary, key string, v any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.put(h.resolve(address), key, v)
}

// Fail implements cdk.MessageSink.
func (h *Host) Fail(status int32, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Failures = append(h.Failures, Failure{Status: status, Message: message})
}

func (h *Host) enter(name string) cdk.Status {
	h.Trace = append(h.Trace, name)
	return h.failOn[name]
}

func (h *Host) resolve(address cdk.Binary) cdk.Binary {
	if len(address) == 0 {
		return h.Self
	}
	return address
}

func (h *Host) credit(holder, asset cdk.Binary, amount cdk.Integer) {
	k := string(h.resolve(holder))
	if h.balances[k] == nil {
		h.balances[k] = make(map[string]cdk.Integer)
	}
	h.balances[k][string(asset)] += amount
}

func (h *Host) debit(asset cdk.Binary, amount cdk.Integer) cdk.Status {
	k := string(h.Self)
	if amount < 0 || h.balances[k][string(asset)] < amount {
		return cdk.StatusException
	}
	if amount == 0 {
		return cdk.StatusOK
	}
	h.balances[k][string(asset)] -= amount
	return cdk.StatusOK
}

// covers checks that the contract can fund all payments together, so a
// rejected call moves no balance.
func (h *Host) covers(payments []cdk.Payment) cdk.Status {
	self := h.balances[string(h.Self)]
	need := make(map[string]cdk.Integer, len(payments))
	for _, p := range payments {
		k := string(p.AssetID)
		if p.Amount < 0 || need[k] > self[k]-p.Amount {
			return cdk.StatusException
		}
		need[k] += p.Amount
	}
	return cdk.StatusOK
}

func (h *Host) put(address cdk.Binary, key string, v any) {
	k := string(address)
	if h.storage[k] == nil {
		h.storage[k] = make(map[string]any)
	}
	h.storage[k][key] = v
}

func (h *Host) id(prefix string) cdk.Binary {
	h.nonce++
	sum := blake2b.Sum256([]byte(prefix + strconv.FormatUint(h.nonce, 10)))
	return cdk.Binary(sum[:])
}

func clone(b cdk.Binary) cdk.Binary {
	return append(cdk.Binary{}, b...)
}

// asset

func (h *Host) GetBalance(asset, address cdk.Binary) (cdk.Integer, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter("get_balance"); s != 0 {
		return 0, s
	}
	return h.balances[string(h.resolve(address))][string(asset)], 0
}

func (h *Host) Transfer(asset, recipient cdk.Binary, amount cdk.Integer) cdk.Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter("transfer"); s != 0 {
		return s
	}
	return h.transfer(asset, recipient, cdk.AddressHolder, amount)
}

func (h *Host) transfer(asset, recipient cdk.Binary, kind cdk.Holder, amount cdk.Integer) cdk.Status {
	if s := h.debit(asset, amount); s != 0 {
		return s
	}
	h.credit(recipient, asset, amount)
	h.Transfers = append(h.Transfers, Transfer{
		Asset:     clone(asset),
		Recipient: clone(recipient),
		Holder:    kind,
		Amount:    amount,
	})
	return 0
}

func (h *Host) Issue(name, description cdk.String, quantity cdk.Integer, decimals int32, reissuable cdk.Boolean) (cdk.Binary, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter("issue"); s != 0 {
		return nil, s
	}
	return h.issue(name, description, quantity, cdk.Integer(decimals), reissuable)
}

func (h *Host) issue(name, description string, quantity, decimals cdk.Integer, reissuable bool) (cdk.Binary, cdk.Status) {
	if quantity < 0 || decimals < 0 || decimals > 8 {
		return nil, cdk.StatusException
	}
	id := h.id("asset:" + name)
	h.Assets[string(id)] = &Asset{
		ID:          id,
		Name:        name,
		Description: description,
		Quantity:    quantity,
		Decimals:    decimals,
		Reissuable:  reissuable,
	}
	h.credit(h.Self, id, quantity)
	return id, 0
}

func (h *Host) Burn(asset cdk.Binary, amount cdk.Integer) cdk.Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter("burn"); s != 0 {
		return s
	}
	a, ok := h.Assets[string(asset)]
	if !ok {
		return cdk.StatusException
	}
	if s := h.debit(asset, amount); s != 0 {
		return s
	}
	a.Quantity -= amount
	return 0
}

func (h *Host) Reissue(asset cdk.Binary, amount cdk.Integer, reissuable cdk.Boolean) cdk.Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter("reissue"); s != 0 {
		return s
	}
	a, ok := h.Assets[string(asset)]
	if !ok || !a.Reissuable || amount < 0 {
		return cdk.StatusException
	}
	a.Quantity += amount
	a.Reissuable = reissuable
	h.credit(h.Self, asset, amount)
	return 0
}

// block

func (h *Host) BlockTimestamp() (cdk.Integer, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.Timestamp, h.enter("get_block_timestamp")
}

func (h *Host) BlockHeight() (cdk.Integer, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.Height, h.enter("get_block_height")
}

// call

func (h *Host) stage(name, kind string, v any) cdk.Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter(name); s != 0 {
		return s
	}
	h.pending.Args = append(h.pending.Args, Arg{Kind: kind, Value: v})
	return 0
}

func (h *Host) CallArgInt(v cdk.Integer) cdk.Status {
	return h.stage("call_arg_int", "integer", v)
}

func (h *Host) CallArgBool(v cdk.Boolean) cdk.Status {
	return h.stage("call_arg_bool", "boolean", v)
}

func (h *Host) CallArgBinary(v cdk.Binary) cdk.Status {
	return h.stage("call_arg_binary", "binary", clone(v))
}

func (h *Host) CallArgString(v cdk.String) cdk.Status {
	return h.stage("call_arg_string", "string", v)
}

func (h *Host) CallPayment(asset cdk.Binary, amount cdk.Integer) cdk.Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter("call_payment"); s != 0 {
		return s
	}
	h.pending.Payments = append(h.pending.Payments, cdk.Payment{AssetID: clone(asset), Amount: amount})
	return 0
}

func (h *Host) CallContract(contract cdk.Binary, fn cdk.String) cdk.Status {
	return h.invoke("call_contract", contract, fn, nil)
}

func (h *Host) CallContractParams(contract cdk.Binary, fn cdk.String, params cdk.Binary) cdk.Status {
	return h.invoke("call_contract_params", contract, fn, clone(params))
}

func (h *Host) invoke(name string, contract cdk.Binary, fn string, params cdk.Binary) cdk.Status {
	h.mu.Lock()
	if s := h.enter(name); s != 0 {
		h.pending = Call{}
		h.mu.Unlock()
		return s
	}
	c := h.pending
	h.pending = Call{}
	c.Contract = clone(contract)
	c.Func = fn
	c.Params = params
	if s := h.covers(c.Payments); s != 0 {
		h.mu.Unlock()
		return s
	}
	for _, p := range c.Payments {
		h.debit(p.AssetID, p.Amount)
		h.credit(contract, p.AssetID, p.Amount)
	}
	h.Calls = append(h.Calls, c)
	remote := h.Contracts[string(contract)]
	h.mu.Unlock()

	if remote != nil {
		return remote(c)
	}
	return 0
}

// crypto

func (h *Host) FastHash(data cdk.Binary) (cdk.Binary, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter("fast_hash"); s != 0 {
		return nil, s
	}
	sum := blake2b.Sum256(data)
	return sum[:], 0
}

func (h *Host) SecureHash(data cdk.Binary) (cdk.Binary, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter("secure_hash"); s != 0 {
		return nil, s
	}
	return SecureHash(data), 0
}

// SecureHash is keccak256 over blake2b-256.
func SecureHash(data []byte) []byte {
	inner := blake2b.Sum256(data)
	k := sha3.NewLegacyKeccak256()
	k.Write(inner[:])
	return k.Sum(nil)
}

func (h *Host) SigVerify(message, signature, publicKey cdk.Binary) (cdk.Boolean, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter("sig_verify"); s != 0 {
		return false, s
	}
	return h.Verify(message, signature, publicKey), 0
}

// lease

func (h *Host) LeaseAddress(address cdk.Binary, amount cdk.Integer) (cdk.Binary, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter("lease_address"); s != 0 {
		return nil, s
	}
	return h.lease(address, amount)
}

func (h *Host) LeaseAlias(alias cdk.String, amount cdk.Integer) (cdk.Binary, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter("lease_alias"); s != 0 {
		return nil, s
	}
	return h.lease(cdk.Binary(alias), amount)
}

func (h *Host) lease(recipient cdk.Binary, amount cdk.Integer) (cdk.Binary, cdk.Status) {
	if amount <= 0 || h.balances[string(h.Self)][""] < amount {
		return nil, cdk.StatusException
	}
	id := h.id("lease")
	h.Leases[string(id)] = &Lease{ID: id, Recipient: clone(recipient), Amount: amount}
	return id, 0
}

func (h *Host) CancelLease(leaseID cdk.Binary) cdk.Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter("cancel_lease"); s != 0 {
		return s
	}
	if _, ok := h.Leases[string(leaseID)]; !ok {
		return cdk.StatusException
	}
	delete(h.Leases, string(leaseID))
	return 0
}

// storage

func (h *Host) get(name string, address cdk.Binary, key string) (any, cdk.Status) {
	if s := h.enter(name); s != 0 {
		return nil, s
	}
	v, ok := h.storage[string(h.resolve(address))][key]
	if !ok {
		return nil, cdk.StatusException
	}
	return v, 0
}

func (h *Host) GetStorageInt(address cdk.Binary, key cdk.String) (cdk.Integer, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, s := h.get("get_storage_int", address, key)
	if s != 0 {
		return 0, s
	}
	i, ok := v.(cdk.Integer)
	if !ok {
		return 0, cdk.StatusException
	}
	return i, 0
}

func (h *Host) GetStorageBool(address cdk.Binary, key cdk.String) (cdk.Boolean, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, s := h.get("get_storage_bool", address, key)
	if s != 0 {
		return false, s
	}
	b, ok := v.(cdk.Boolean)
	if !ok {
		return false, cdk.StatusException
	}
	return b, 0
}

func (h *Host) GetStorageBinary(address cdk.Binary, key cdk.String) (cdk.Binary, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, s := h.get("get_storage_binary", address, key)
	if s != 0 {
		return nil, s
	}
	b, ok := v.(cdk.Binary)
	if !ok {
		return nil, cdk.StatusException
	}
	return clone(b), 0
}

func (h *Host) GetStorageString(address cdk.Binary, key cdk.String) (cdk.String, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, s := h.get("get_storage_string", address, key)
	if s != 0 {
		return "", s
	}
	str, ok := v.(cdk.String)
	if !ok {
		return "", cdk.StatusException
	}
	return str, 0
}

func (h *Host) set(name, key string, v any) cdk.Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter(name); s != 0 {
		return s
	}
	h.put(h.Self, key, v)
	return 0
}

func (h *Host) SetStorageInt(key cdk.String, v cdk.Integer) cdk.Status {
	return h.set("set_storage_int", key, v)
}

func (h *Host) SetStorageBool(key cdk.String, v cdk.Boolean) cdk.Status {
	return h.set("set_storage_bool", key, v)
}

func (h *Host) SetStorageBinary(key cdk.String, v cdk.Binary) cdk.Status {
	return h.set("set_storage_binary", key, clone(v))
}

func (h *Host) SetStorageString(key cdk.String, v cdk.String) cdk.Status {
	return h.set("set_storage_string", key, v)
}

// tx

func (h *Host) TxSender() (cdk.Binary, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return clone(h.Sender), h.enter("get_tx_sender")
}

func (h *Host) TxPayments() (int32, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return int32(len(h.Payments)), h.enter("get_tx_payments")
}

func (h *Host) TxPaymentAssetID(n int32) (cdk.Binary, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.paymentAsset("get_tx_payment_asset_id", int64(n))
}

func (h *Host) TxPaymentAmount(n int32) (cdk.Integer, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.paymentAmount("get_tx_payment_amount", int64(n))
}

func (h *Host) paymentAsset(name string, n int64) (cdk.Binary, cdk.Status) {
	if s := h.enter(name); s != 0 {
		return nil, s
	}
	if n < 0 || n >= int64(len(h.Payments)) {
		return nil, cdk.StatusException
	}
	return clone(h.Payments[n].AssetID), 0
}

func (h *Host) paymentAmount(name string, n int64) (cdk.Integer, cdk.Status) {
	if s := h.enter(name); s != 0 {
		return 0, s
	}
	if n < 0 || n >= int64(len(h.Payments)) {
		return 0, cdk.StatusException
	}
	return h.Payments[n].Amount, 0
}

// utils

func (h *Host) Base58(s cdk.String) (cdk.Binary, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if st := h.enter("base_58"); st != 0 {
		return nil, st
	}
	b, err := base58.Decode(s)
	if err != nil {
		return nil, cdk.StatusException
	}
	return b, 0
}

func (h *Host) ToBase58String(b cdk.Binary) (cdk.String, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return base58.Encode(b), h.enter("to_base_58_string")
}

func (h *Host) BinaryEquals(left, right cdk.Binary) (cdk.Boolean, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return bytes.Equal(left, right), h.enter("binary_equals")
}

func (h *Host) StringEquals(left, right cdk.String) (cdk.Boolean, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return left == right, h.enter("string_equals")
}

func (h *Host) Join(left, right cdk.Binary) (cdk.Binary, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(cdk.Binary, 0, len(left)+len(right))
	return append(append(out, left...), right...), h.enter("join")
}

func (h *Host) ToLeBytes(b cdk.Binary) (cdk.Binary, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := clone(b)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, h.enter("to_le_bytes")
}

func (h *Host) Caller() (cdk.Binary, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.CallerID) > 0 {
		return clone(h.CallerID), h.enter("caller")
	}
	return clone(h.Sender), h.enter("caller")
}

// memory

func (h *Host) Contains(b, sub cdk.Binary) (cdk.Boolean, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return bytes.Contains(b, sub), h.enter("contains")
}

func (h *Host) slice(name string, b cdk.Binary, n cdk.Integer, cut func(b []byte, n int) []byte) (cdk.Binary, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter(name); s != 0 {
		return nil, s
	}
	if n < 0 {
		return nil, cdk.StatusException
	}
	k := len(b)
	if n < cdk.Integer(k) {
		k = int(n)
	}
	return clone(cut(b, k)), 0
}

func (h *Host) Drop(b cdk.Binary, n cdk.Integer) (cdk.Binary, cdk.Status) {
	return h.slice("drop", b, n, func(b []byte, k int) []byte { return b[k:] })
}

func (h *Host) DropRight(b cdk.Binary, n cdk.Integer) (cdk.Binary, cdk.Status) {
	return h.slice("drop_right", b, n, func(b []byte, k int) []byte { return b[:len(b)-k] })
}

func (h *Host) Take(b cdk.Binary, n cdk.Integer) (cdk.Binary, cdk.Status) {
	return h.slice("take", b, n, func(b []byte, k int) []byte { return b[:k] })
}

func (h *Host) TakeRight(b cdk.Binary, n cdk.Integer) (cdk.Binary, cdk.Status) {
	return h.slice("take_right", b, n, func(b []byte, k int) []byte { return b[len(b)-k:] })
}

func (h *Host) IndexOf(b, sub cdk.Binary) (cdk.Integer, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return cdk.Integer(bytes.Index(b, sub)), h.enter("index_of")
}

func (h *Host) LastIndexOf(b, sub cdk.Binary) (cdk.Integer, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return cdk.Integer(bytes.LastIndex(b, sub)), h.enter("last_index_of")
}

// converts

func (h *Host) ParseInt(s cdk.String) (cdk.Integer, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if st := h.enter("parse_int"); st != 0 {
		return 0, st
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, cdk.StatusException
	}
	return v, 0
}

func (h *Host) ParseBool(s cdk.String) (cdk.Boolean, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if st := h.enter("parse_bool"); st != 0 {
		return false, st
	}
	switch s {
	case "true":
		return true, 0
	case "false":
		return false, 0
	}
	return false, cdk.StatusException
}

func (h *Host) ToBytes(v cdk.Integer) (cdk.Binary, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return binary.BigEndian.AppendUint64(nil, uint64(v)), h.enter("to_bytes")
}

func (h *Host) ToInt(b cdk.Binary) (cdk.Integer, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter("to_int"); s != 0 {
		return 0, s
	}
	if len(b) != 8 {
		return 0, cdk.StatusException
	}
	return cdk.Integer(binary.BigEndian.Uint64(b)), 0
}

func (h *Host) ToStringBool(v cdk.Boolean) (cdk.String, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return strconv.FormatBool(v), h.enter("to_string_bool")
}

func (h *Host) ToStringInt(v cdk.Integer) (cdk.String, cdk.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return strconv.FormatInt(v, 10), h.enter("to_string_int")
}

// v1 exposes the env1 surface of a Host.
type v1 struct {
	h *Host
}

// V1 returns the env1 view of h.
func (h *Host) V1() cdk.HostV1 {
	return v1{h}
}

func (v v1) GetBalance(asset, holder cdk.Binary, kind cdk.Holder) (cdk.Integer, cdk.Status) {
	h := v.h
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter("get_balance"); s != 0 {
		return 0, s
	}
	if !knownHolder(kind) {
		return 0, cdk.StatusException
	}
	return h.balances[string(h.resolve(holder))][string(asset)], 0
}

func (v v1) Transfer(asset, recipient cdk.Binary, kind cdk.Holder, amount cdk.Integer) cdk.Status {
	h := v.h
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter("transfer"); s != 0 {
		return s
	}
	if !knownHolder(kind) {
		return cdk.StatusException
	}
	return h.transfer(asset, recipient, kind, amount)
}

func (v v1) Issue(name, description cdk.String, quantity, decimals cdk.Integer, reissuable cdk.Boolean) (cdk.Binary, cdk.Status) {
	h := v.h
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter("issue"); s != 0 {
		return nil, s
	}
	return h.issue(name, description, quantity, decimals, reissuable)
}

func (v v1) TxPayments() (cdk.Integer, cdk.Status) {
	h := v.h
	h.mu.Lock()
	defer h.mu.Unlock()
	return cdk.Integer(len(h.Payments)), h.enter("get_tx_payments")
}

func (v v1) TxPaymentAssetID(n cdk.Integer) (cdk.Binary, cdk.Status) {
	h := v.h
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.paymentAsset("get_tx_payment_asset_id", n)
}

func (v v1) TxPaymentAmount(n cdk.Integer) (cdk.Integer, cdk.Status) {
	h := v.h
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.paymentAmount("get_tx_payment_amount", n)
}

func (v v1) Tx(field cdk.String) (cdk.Binary, cdk.Status) {
	h := v.h
	h.mu.Lock()
	defer h.mu.Unlock()
	if s := h.enter("tx"); s != 0 {
		return nil, s
	}
	if b, ok := h.Fields[field]; ok {
		return clone(b), 0
	}
	if field == cdk.FieldSender {
		return clone(h.Sender), 0
	}
	return nil, cdk.StatusException
}

func knownHolder(kind cdk.Holder) bool {
	return kind == cdk.AddressHolder || kind == cdk.AliasHolder || kind == cdk.ContractHolder
}
