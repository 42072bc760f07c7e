package cdk

// Base58 decodes a base58 string.
func Base58(s String) (Binary, error) {
	v, st := CurrentHost().V0.Base58(s)
	return v, st.Err()
}

// ToBase58String encodes b as base58.
func ToBase58String(b Binary) (String, error) {
	v, s := CurrentHost().V0.ToBase58String(b)
	return v, s.Err()
}

func BinaryEquals(left, right Binary) (Boolean, error) {
	v, s := CurrentHost().V0.BinaryEquals(left, right)
	return v, s.Err()
}

func StringEquals(left, right String) (Boolean, error) {
	v, s := CurrentHost().V0.StringEquals(left, right)
	return v, s.Err()
}

// JoinBinary concatenates values on the host, left to right.
func JoinBinary(values ...Binary) (Binary, error) {
	h := CurrentHost()
	acc := Binary{}
	for _, v := range values {
		next, s := h.V0.Join(acc, v)
		if err := s.Err(); err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

// JoinString concatenates values on the host, left to right.
func JoinString(values ...String) (String, error) {
	parts := make([]Binary, len(values))
	for i, v := range values {
		parts[i] = Binary(v)
	}
	b, err := JoinBinary(parts...)
	if err != nil {
		return "", err
	}
	return String(b), nil
}

// Caller returns the address or contract id that invoked the current action.
func Caller() (Binary, error) {
	v, s := CurrentHost().V0.Caller()
	return v, s.Err()
}
