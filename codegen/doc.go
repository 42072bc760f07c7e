// Package codegen expands annotated contract sources into the glue code a
// contract needs to run on the WEVM.
//
// For every //we:action function it emits an exported wrapper whose
// parameters use the wire encoding of the declared types and which reports
// the action's error as a status code:
//
//	//export flip
//	func _we_flip() int32 {
//		flip()
//		return cdk.Finish(nil)
//	}
//
// For every //we:interface type it emits a proxy value whose methods stage
// arguments and payments with the host and invoke the remote function.
//
// Generated files carry the Header and are written next to the source with
// the FileSuffix.
package codegen
