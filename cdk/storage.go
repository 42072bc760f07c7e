package cdk

// GetInt reads an integer from this contract's storage.
func GetInt(key String) (Integer, error) {
	return GetIntAt(This, key)
}

// GetIntAt reads an integer from the storage of the contract at address.
func GetIntAt(address Binary, key String) (Integer, error) {
	v, s := CurrentHost().V0.GetStorageInt(address, key)
	return v, s.Err()
}

// GetBool reads a boolean from this contract's storage.
func GetBool(key String) (Boolean, error) {
	return GetBoolAt(This, key)
}

// GetBoolAt reads a boolean from the storage of the contract at address.
func GetBoolAt(address Binary, key String) (Boolean, error) {
	v, s := CurrentHost().V0.GetStorageBool(address, key)
	return v, s.Err()
}

// GetBinary reads bytes from this contract's storage.
func GetBinary(key String) (Binary, error) {
	return GetBinaryAt(This, key)
}

// GetBinaryAt reads bytes from the storage of the contract at address.
func GetBinaryAt(address Binary, key String) (Binary, error) {
	v, s := CurrentHost().V0.GetStorageBinary(address, key)
	return v, s.Err()
}

// GetString reads a string from this contract's storage.
func GetString(key String) (String, error) {
	return GetStringAt(This, key)
}

// GetStringAt reads a string from the storage of the contract at address.
func GetStringAt(address Binary, key String) (String, error) {
	v, s := CurrentHost().V0.GetStorageString(address, key)
	return v, s.Err()
}

func SetInt(key String, v Integer) error {
	return CurrentHost().V0.SetStorageInt(key, v).Err()
}

func SetBool(key String, v Boolean) error {
	return CurrentHost().V0.SetStorageBool(key, v).Err()
}

func SetBinary(key String, v Binary) error {
	return CurrentHost().V0.SetStorageBinary(key, v).Err()
}

func SetString(key String, v String) error {
	return CurrentHost().V0.SetStorageString(key, v).Err()
}
