// Package abi extracts the action surface of a contract from its source and
// reads and writes the ABI descriptor shipped next to the compiled module.
//
// The descriptor JSON has a fixed shape:
//
//	{"name":"flip","abi":[{"name":"flip","args":[]},{"name":"set","args":[{"name":"value","type":"Boolean"}]}]}
//
// Extraction shares type resolution with code generation, so a source the
// generator rejects is rejected here too.
package abi
