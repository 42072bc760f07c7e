package node

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/minio/sha256-simd"
)

// Transaction types understood by the node.
const (
	TypeCreateContract = 103
	TypeCallContract   = 104
)

// DefaultAPIVersion is the contract API version new contracts declare.
const DefaultAPIVersion = "1.0"

// StoredContract embeds compiled bytecode in a create transaction.
type StoredContract struct {
	Bytecode     string `json:"bytecode"`
	BytecodeHash string `json:"bytecodeHash"`
}

// NewStoredContract encodes bytecode as standard base64 and records the hex
// sha256 of the raw bytes.
func NewStoredContract(bytecode []byte) StoredContract {
	sum := sha256.Sum256(bytecode)
	return StoredContract{
		Bytecode:     base64.StdEncoding.EncodeToString(bytecode),
		BytecodeHash: hex.EncodeToString(sum[:]),
	}
}

// Param is a typed contract call parameter.
type Param struct {
	Key   string `json:"key"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// AtomicBadge restricts a transaction to an atomic container.
type AtomicBadge struct {
	TrustedSender string `json:"trustedSender,omitempty"`
}

// ValidationPolicy selects how contract results are validated.
type ValidationPolicy struct {
	Type string `json:"type"`
}

// CreateContract deploys a WASM contract.
type CreateContract struct {
	Type             int               `json:"type"`
	Version          int               `json:"version"`
	Sender           string            `json:"sender"`
	Password         string            `json:"password,omitempty"`
	ContractName     string            `json:"contractName"`
	StoredContract   StoredContract    `json:"storedContract"`
	Params           []Param           `json:"params"`
	Fee              int64             `json:"fee"`
	Timestamp        int64             `json:"timestamp,omitempty"`
	FeeAssetID       *string           `json:"feeAssetId"`
	AtomicBadge      *AtomicBadge      `json:"atomicBadge,omitempty"`
	Proofs           []string          `json:"proofs,omitempty"`
	ValidationPolicy *ValidationPolicy `json:"validationPolicy,omitempty"`
	APIVersion       string            `json:"apiVersion,omitempty"`
}

// Prepare fills in the transaction type, the stored bytecode and the
// fields a node rejects when absent.
func (tx *CreateContract) Prepare(bytecode []byte) {
	tx.Type = TypeCreateContract
	tx.StoredContract = NewStoredContract(bytecode)
	if tx.Params == nil {
		tx.Params = []Param{}
	}
	if tx.APIVersion == "" {
		tx.APIVersion = DefaultAPIVersion
	}
}

// CallContract invokes an action of a deployed contract.
type CallContract struct {
	Type            int          `json:"type"`
	Version         int          `json:"version"`
	Sender          string       `json:"sender"`
	Password        string       `json:"password,omitempty"`
	ContractID      string       `json:"contractId"`
	ContractVersion int          `json:"contractVersion"`
	ContractEngine  string       `json:"contractEngine,omitempty"`
	CallFunc        string       `json:"callFunc"`
	Params          []Param      `json:"params"`
	Payments        []Payment    `json:"payments,omitempty"`
	Fee             int64        `json:"fee"`
	Timestamp       int64        `json:"timestamp,omitempty"`
	FeeAssetID      *string      `json:"feeAssetId"`
	AtomicBadge     *AtomicBadge `json:"atomicBadge,omitempty"`
	Proofs          []string     `json:"proofs,omitempty"`
}

// Payment attaches an asset amount to a call. A nil AssetID is the native
// token.
type Payment struct {
	AssetID *string `json:"assetId"`
	Amount  int64   `json:"amount"`
}

// Prepare fills in the transaction type and the call target.
func (tx *CallContract) Prepare(action string, params []Param) {
	tx.Type = TypeCallContract
	tx.CallFunc = action
	tx.Params = params
	if tx.Params == nil {
		tx.Params = []Param{}
	}
	if tx.ContractEngine == "" {
		tx.ContractEngine = "wasm"
	}
}
