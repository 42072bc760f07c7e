package cdk

// LeaseToAddress leases amount to an address and returns the lease id.
func LeaseToAddress(address Binary, amount Integer) (Binary, error) {
	id, s := CurrentHost().V0.LeaseAddress(address, amount)
	return id, s.Err()
}

// LeaseToAlias leases amount to an alias and returns the lease id.
func LeaseToAlias(alias String, amount Integer) (Binary, error) {
	id, s := CurrentHost().V0.LeaseAlias(alias, amount)
	return id, s.Err()
}

func CancelLease(leaseID Binary) error {
	return CurrentHost().V0.CancelLease(leaseID).Err()
}
