// Package registry provides a generic, type-safe registry keyed by name.
// The directive handlers used by the expander are kept in one, and
// packages providing directives register themselves from init().
package registry
