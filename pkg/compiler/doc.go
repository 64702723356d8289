// Package compiler drives a whole compilation pass over a source tree.
//
// A pass has two phases. CompileTree walks the source location and expands
// every file it finds. Write then materializes the results, skipping every
// file that some other file pulled in through include. The include set is
// only known once the whole tree has been compiled, so nothing is written
// before CompileTree returns.
//
// Plugin bundles both phases behind a single Run call for hosts that own
// the output directory.
package compiler
