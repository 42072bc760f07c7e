package cdk

func Contains(b, sub Binary) (Boolean, error) {
	v, s := CurrentHost().V0.Contains(b, sub)
	return v, s.Err()
}

func Drop(b Binary, n Integer) (Binary, error) {
	v, s := CurrentHost().V0.Drop(b, n)
	return v, s.Err()
}

func DropRight(b Binary, n Integer) (Binary, error) {
	v, s := CurrentHost().V0.DropRight(b, n)
	return v, s.Err()
}

func Take(b Binary, n Integer) (Binary, error) {
	v, s := CurrentHost().V0.Take(b, n)
	return v, s.Err()
}

func TakeRight(b Binary, n Integer) (Binary, error) {
	v, s := CurrentHost().V0.TakeRight(b, n)
	return v, s.Err()
}

// IndexOf returns the first position of sub in b, or -1.
func IndexOf(b, sub Binary) (Integer, error) {
	v, s := CurrentHost().V0.IndexOf(b, sub)
	return v, s.Err()
}

// LastIndexOf returns the last position of sub in b, or -1.
func LastIndexOf(b, sub Binary) (Integer, error) {
	v, s := CurrentHost().V0.LastIndexOf(b, sub)
	return v, s.Err()
}
