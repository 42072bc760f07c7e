// Package wevm is the root of the WEVM contract development kit.
//
// Contracts are ordinary Go packages compiled to WebAssembly with TinyGo.
// Functions marked with a //we:action directive become exported entry
// points of the contract; interface types marked with //we:interface become
// typed proxies for calling other contracts:
//
//	//we:interface
//	type Token interface {
//		transfer(recipient cdk.Binary, amount cdk.Integer)
//	}
//
//	//we:action
//	func transfer_to(recipient cdk.Binary, amount cdk.Integer) error {
//		return TokenProxy.transfer(tokenAddress, recipient, amount)
//	}
//
// The toolkit is organized as:
//
//	wevm/
//	├── types/       Primitive contract types and their WASM wire shapes
//	├── hostimport/  Versioned catalog of host functions (env0, env1)
//	├── cdk/         Guest SDK used by contract code
//	├── contract/    Contract source front-end
//	├── codegen/     Action wrapper and interface proxy generation
//	├── abi/         Static ABI extraction and the ABI JSON descriptor
//	├── inspect/     Compiled module conformance checks
//	├── node/        Node REST client and transaction models
//	├── project/     Scaffolding and build orchestration
//	├── wasm/        Core module model and binary encoder
//	├── wat/         WebAssembly text format compiler
//	├── errors/      Structured error types
//	└── cmd/we/      Command line tool
//
// A typical workflow:
//
//	we new flipper
//	cd flipper && we build
//	we tx create.json --send
package wevm
