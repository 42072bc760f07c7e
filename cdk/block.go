package cdk

func BlockTimestamp() (Integer, error) {
	v, s := CurrentHost().V0.BlockTimestamp()
	return v, s.Err()
}

func BlockHeight() (Integer, error) {
	v, s := CurrentHost().V0.BlockHeight()
	return v, s.Err()
}
