// Package wat assembles WebAssembly text modules into binaries.
//
// It backs `we wat2wasm`, so hand-written or disassembled contracts can be
// edited as text and turned back into deployable bytecode:
//
//	bin, err := wat.Compile(`(module
//		(import "env0" "get_block_height" (func (result i32 i64)))
//		(memory (export "memory") 1)
//		(func (export "flip") (result i32) i32.const 0))`)
//
// Functions, imports with multi-value results, memories, tables, globals,
// data and elem segments and the MVP instruction set with bulk memory,
// reference types, saturating truncation and sign extension are supported.
// SIMD, threads and exception handling are not.
package wat
