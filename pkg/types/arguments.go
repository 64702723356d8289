package types

import (
	"github.com/zclconf/go-cty/cty"
)

// ArgumentKind identifies how a directive argument was written
type ArgumentKind int

const (
	// ArgRaw is unquoted text, treated as an identifier or expression reference
	ArgRaw ArgumentKind = iota
	// ArgLiteral is a single or double quoted string with the quotes stripped
	ArgLiteral
	// ArgObject is a {...} structured literal
	ArgObject
)

// Argument is one decoded field of a directive argument list
type Argument struct {
	Kind   ArgumentKind
	Text   string
	Object cty.Value
}

// Value converts the argument to a context value
func (a Argument) Value() Value {
	if a.Kind == ArgObject {
		return Structured(a.Object)
	}
	return String(a.Text)
}

// ArgumentList is an ordered sequence of decoded arguments
type ArgumentList []Argument

// At returns the argument at index i, if present
func (l ArgumentList) At(i int) (Argument, bool) {
	if i < 0 || i >= len(l) {
		return Argument{}, false
	}
	return l[i], true
}
