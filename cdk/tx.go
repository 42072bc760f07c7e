package cdk

// Transaction fields readable through TxField.
const (
	FieldTxID   = "txId"
	FieldSender = "sender"
)

// TxSender returns the address that signed the current transaction.
func TxSender() (Binary, error) {
	v, s := CurrentHost().V0.TxSender()
	return v, s.Err()
}

// TxPayments returns the number of payments attached to the current call.
func TxPayments() (Integer, error) {
	v, s := CurrentHost().V1.TxPayments()
	return v, s.Err()
}

// TxPayment returns payment n of the current call.
func TxPayment(n Integer) (Payment, error) {
	h := CurrentHost()
	asset, s := h.V1.TxPaymentAssetID(n)
	if err := s.Err(); err != nil {
		return Payment{}, err
	}
	amount, s := h.V1.TxPaymentAmount(n)
	if err := s.Err(); err != nil {
		return Payment{}, err
	}
	return Payment{AssetID: asset, Amount: amount}, nil
}

// TxField returns a raw field of the current transaction.
func TxField(name String) (Binary, error) {
	v, s := CurrentHost().V1.Tx(name)
	return v, s.Err()
}
