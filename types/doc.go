// Package types defines the primitive types a contract may expose and their
// mapping to the flat WASM value types used on the host boundary.
//
//	Integer  -> i64
//	Boolean  -> i32
//	Binary   -> i32 pointer, i32 length
//	String   -> i32 pointer, i32 length
//	Payment  -> no parameter shape; attached to outgoing calls only
//
// Resolve is shared by the code generator and the ABI extractor so the two
// can never disagree about which declared types are acceptable.
package types
