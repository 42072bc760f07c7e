package cdk

// Balance returns this contract's balance of the native token.
func Balance() (Integer, error) {
	return BalanceOf(SystemToken)
}

// BalanceOf returns this contract's balance of asset.
func BalanceOf(asset Binary) (Integer, error) {
	v, s := CurrentHost().V0.GetBalance(asset, This)
	return v, s.Err()
}

// AddressBalance returns the balance of an account address. The asset
// defaults to the native token.
func AddressBalance(address Binary, asset ...Binary) (Integer, error) {
	return holderBalance(address, AddressHolder, asset)
}

// AliasBalance returns the balance of an account alias.
func AliasBalance(alias String, asset ...Binary) (Integer, error) {
	return holderBalance(Binary(alias), AliasHolder, asset)
}

// ContractBalance returns the balance of another contract.
func ContractBalance(contract Binary, asset ...Binary) (Integer, error) {
	return holderBalance(contract, ContractHolder, asset)
}

func holderBalance(holder Binary, kind Holder, asset []Binary) (Integer, error) {
	v, s := CurrentHost().V1.GetBalance(assetOrNative(asset), holder, kind)
	return v, s.Err()
}

// TransferToAddress sends amount to an account address.
func TransferToAddress(recipient Binary, amount Integer, asset ...Binary) error {
	return CurrentHost().V1.Transfer(assetOrNative(asset), recipient, AddressHolder, amount).Err()
}

// TransferToAlias sends amount to an account alias.
func TransferToAlias(recipient String, amount Integer, asset ...Binary) error {
	return CurrentHost().V1.Transfer(assetOrNative(asset), Binary(recipient), AliasHolder, amount).Err()
}

// TransferToContract sends amount to another contract.
func TransferToContract(recipient Binary, amount Integer, asset ...Binary) error {
	return CurrentHost().V1.Transfer(assetOrNative(asset), recipient, ContractHolder, amount).Err()
}

// Issue creates a new asset and returns its id.
func Issue(name, description String, quantity, decimals Integer, reissuable Boolean) (Binary, error) {
	id, s := CurrentHost().V1.Issue(name, description, quantity, decimals, reissuable)
	return id, s.Err()
}

func Burn(asset Binary, amount Integer) error {
	return CurrentHost().V0.Burn(asset, amount).Err()
}

func Reissue(asset Binary, amount Integer, reissuable Boolean) error {
	return CurrentHost().V0.Reissue(asset, amount, reissuable).Err()
}

func assetOrNative(asset []Binary) Binary {
	if len(asset) == 0 {
		return SystemToken
	}
	return asset[0]
}
