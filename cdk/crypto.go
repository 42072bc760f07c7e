package cdk

func FastHash(data Binary) (Binary, error) {
	v, s := CurrentHost().V0.FastHash(data)
	return v, s.Err()
}

func SecureHash(data Binary) (Binary, error) {
	v, s := CurrentHost().V0.SecureHash(data)
	return v, s.Err()
}

// SigVerify checks an ed25519 signature of message.
func SigVerify(message, signature, publicKey Binary) (Boolean, error) {
	v, s := CurrentHost().V0.SigVerify(message, signature, publicKey)
	return v, s.Err()
}
