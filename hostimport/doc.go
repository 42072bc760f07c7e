// Package hostimport describes the functions a WEVM host provides to
// contracts. There are two import modules, env0 and env1, and a contract may
// use both at once. env1 refines a few env0 operations: balance queries and
// transfers take a holder discriminator (see HolderAddress, HolderAlias and
// HolderContract), issue takes 64-bit decimals and payment numbers are 64-bit.
//
// Every import is a flat signature over i32 and i64. Binary and string
// arguments travel as an (offset, length) pair of i32 values. Results follow
// one of four shapes:
//
//	none                   call_arg_int, call_arg_bool in env0
//	status                 i32
//	status, value          i32 followed by i64, or i32 used as a boolean
//	status, pointer, len   host-owned bytes valid until the call returns
//
// A status of 0 is success. Any other status aborts the calling action with
// that status unchanged.
//
// The catalog is append-only. Names and shapes never change once published;
// new capabilities arrive as new names or as a new version.
package hostimport
