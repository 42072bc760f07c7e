package cdk

// CallWithParams invokes fn on contract with a pre-encoded parameter blob.
// Payments are attached first, in order.
func CallWithParams(contract Binary, fn String, params Binary, payments ...Payment) error {
	h := CurrentHost()
	if err := attach(h, payments); err != nil {
		return err
	}
	return h.V0.CallContractParams(contract, fn, params).Err()
}

func attach(h Host, payments []Payment) error {
	for _, p := range payments {
		if err := h.V0.CallPayment(p.AssetID, p.Amount).Err(); err != nil {
			return err
		}
	}
	return nil
}
