// Package types defines the core types and interfaces used throughout splice.
// This includes the Value variant held in a Context, the Directive handler
// contract with its Invocation and Expansion records, CompiledFile, and the
// FS capability the compiler performs all I/O through.
package types
