// Package testutil provides helpers for testing splice components.
//
// Key components:
//   - MemoryFS: an in-memory types.FS with symlinks, error injection and
//     operation counters
//   - WriteTree / ReadTree: declare a source tree inline and read an output
//     tree back as a path to content map
//
// Test data should be defined inline, not in external files. Use MemoryFS
// (or filesystem.NewMemoryFS) unless the test is about OS behaviour.
package testutil
