package types

import (
	"sort"
)

// Context maps variable names to values. A Context is never mutated after
// construction; Merge and With return fresh mappings.
type Context struct {
	values map[string]Value
}

// NewContext copies values into a new Context
func NewContext(values map[string]Value) Context {
	copied := make(map[string]Value, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Context{values: copied}
}

// EmptyContext returns a context with no variables
func EmptyContext() Context {
	return Context{values: map[string]Value{}}
}

// Lookup returns the value registered under name
func (c Context) Lookup(name string) (Value, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Len returns the number of variables
func (c Context) Len() int {
	return len(c.values)
}

// Keys returns the variable names in sorted order
func (c Context) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// With returns a copy of the context with name bound to v
func (c Context) With(name string, v Value) Context {
	return Merge(c, Context{values: map[string]Value{name: v}})
}

// Merge returns a new context holding base shallow-merged with override.
// Keys present in override win.
func Merge(base, override Context) Context {
	merged := make(map[string]Value, len(base.values)+len(override.values))
	for k, v := range base.values {
		merged[k] = v
	}
	for k, v := range override.values {
		merged[k] = v
	}
	return Context{values: merged}
}
