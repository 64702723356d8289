package registry

import (
	"github.com/arthur-debert/splice/pkg/types"
)

var directiveRegistry Registry[types.Directive]

func init() {
	directiveRegistry = New[types.Directive]()
}

// Directives returns the global directive registry. Compilers clone it so
// per-run additions never leak back.
func Directives() Registry[types.Directive] {
	return directiveRegistry
}

// RegisterDirective registers a directive handler under its own name
func RegisterDirective(d types.Directive) error {
	return directiveRegistry.Register(d.Name(), d)
}

// GetDirective retrieves a directive handler by name
func GetDirective(name string) (types.Directive, error) {
	return directiveRegistry.Get(name)
}
