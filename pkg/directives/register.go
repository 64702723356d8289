package directives

import (
	"github.com/arthur-debert/splice/pkg/registry"
	"github.com/arthur-debert/splice/pkg/types"
)

func init() {
	registry.MustRegister[types.Directive](registry.Directives(), IncludeName, Include{})
	registry.MustRegister[types.Directive](registry.Directives(), ShowName, Show{})
}

// Default returns a private copy of the global directive registry, which
// holds include, show and anything else registered at init time.
func Default() registry.Registry[types.Directive] {
	return registry.Directives().Clone()
}
