// Package cdk is the contract-side SDK for WEVM contracts written in Go and
// compiled to WebAssembly with TinyGo.
//
// Contracts declare actions with a directive comment and use the primitive
// aliases for their parameters:
//
//	//we:action
//	func transfer_to(recipient cdk.Binary, amount cdk.Integer) error {
//		if err := cdk.Require(amount > 0, "amount must be positive"); err != nil {
//			return err
//		}
//		return cdk.TransferToAddress(recipient, amount)
//	}
//
// `we generate` writes the exported wrappers that reconstruct arguments from
// the wire and convert the returned error into a status with Finish.
//
// Every helper talks to the host through the Host installed with SetHost and
// returns the first non-zero status it sees as an error. A contract passes
// that error up unchanged; nothing here retries or recovers. Values the host
// returns are borrowed and must not be kept past the current call.
//
// Package cdk/wevmtest provides an in-memory Host for native unit tests.
package cdk
