// Package inspect checks a compiled contract module against its ABI
// descriptor and the host import catalog before it is deployed.
//
// The module is compiled with wazero but never instantiated, so no guest
// code runs and no host functions need to be provided.
package inspect
