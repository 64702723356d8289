// Package directives tokenizes @@name(args) invocations out of text and
// provides the built-in include and show handlers.
//
// Handlers are registered in the global directive registry from init(), so
// importing this package is enough to make them available. Names that have
// no handler are left in the text untouched.
package directives
