package node

import (
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/wippyai/wevm-cdk/errors"
)

// TxConfig is a transaction file: the node to talk to and the transaction
// template to complete and send.
type TxConfig struct {
	NodeURL     string              `json:"nodeUrl"`
	APIKey      string              `json:"apiKey"`
	Transaction jsoniter.RawMessage `json:"transaction"`
}

// LoadTxConfig reads a transaction file.
func LoadTxConfig(path string) (*TxConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IO(errors.PhaseConfig, path, err)
	}
	var cfg TxConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindMalformed, err, path)
	}
	if len(cfg.Transaction) == 0 {
		return nil, errors.New(errors.PhaseConfig, errors.KindMalformed).
			Path("transaction").
			Detail("%s has no transaction", path).
			Build()
	}
	return &cfg, nil
}

// CreateContract decodes the transaction template as a create transaction.
func (c *TxConfig) CreateContract() (*CreateContract, error) {
	var tx CreateContract
	if err := json.Unmarshal(c.Transaction, &tx); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindMalformed, err, "create transaction")
	}
	return &tx, nil
}

// CallContract decodes the transaction template as a call transaction.
func (c *TxConfig) CallContract() (*CallContract, error) {
	var tx CallContract
	if err := json.Unmarshal(c.Transaction, &tx); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindMalformed, err, "call transaction")
	}
	return &tx, nil
}

// Client returns a client for the configured node.
func (c *TxConfig) Client(opts ...Option) *Client {
	return New(c.NodeURL, c.APIKey, opts...)
}
