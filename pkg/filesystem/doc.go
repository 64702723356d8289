// Package filesystem provides implementations of the types.FS capability:
// the OS filesystem used by the CLI and an afero-backed one used for
// in-memory trees in tests.
package filesystem
