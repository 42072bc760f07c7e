package cdk

func ParseInt(s String) (Integer, error) {
	v, st := CurrentHost().V0.ParseInt(s)
	return v, st.Err()
}

func ParseBool(s String) (Boolean, error) {
	v, st := CurrentHost().V0.ParseBool(s)
	return v, st.Err()
}

// ToBytes returns the big-endian bytes of v.
func ToBytes(v Integer) (Binary, error) {
	b, s := CurrentHost().V0.ToBytes(v)
	return b, s.Err()
}

// ToInt reads a big-endian integer.
func ToInt(b Binary) (Integer, error) {
	v, s := CurrentHost().V0.ToInt(b)
	return v, s.Err()
}

func FormatBool(v Boolean) (String, error) {
	s, st := CurrentHost().V0.ToStringBool(v)
	return s, st.Err()
}

func FormatInt(v Integer) (String, error) {
	s, st := CurrentHost().V0.ToStringInt(v)
	return s, st.Err()
}
