// Package project scaffolds contract projects and drives the external tools
// that turn them into deployable artifacts.
//
// A build writes two files into target/we: the compiled module and its ABI
// descriptor. External programs are started through a Runner so that tests
// can replace them.
package project
