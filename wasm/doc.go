// Package wasm encodes the small slice of the WebAssembly binary format the
// toolkit needs: function types, function imports, exported functions with
// constant bodies, one memory and custom sections.
//
// It is used to emit link-target modules that import the whole host catalog
// and to synthesize contract-shaped modules in tests:
//
//	var m wasm.Module
//	m.AddImport("env0", "get_block_height", wasm.FuncType{
//		Results: []api.ValueType{api.ValueTypeI32, api.ValueTypeI64},
//	})
//	idx := m.AddFunc(wasm.FuncType{Results: []api.ValueType{api.ValueTypeI32}},
//		wasm.ConstBody([]api.ValueType{api.ValueTypeI32}, 0))
//	m.ExportFunc("flip", idx)
//	bin := m.Encode()
//
// Reading modules is left to wazero.
package wasm
