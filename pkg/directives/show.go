package directives

import (
	"context"

	"github.com/arthur-debert/splice/pkg/arguments"
	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/logging"
	"github.com/arthur-debert/splice/pkg/types"
)

// ShowName is the directive name for variable substitution
const ShowName = "show"

// Show substitutes the value of a context variable.
//
//	@@show(name)
//
// Deferred values are invoked. Unknown names leave the directive text in
// place and are reported as unresolved.
type Show struct{}

// Name returns the directive name
func (Show) Name() string {
	return ShowName
}

// Expand looks the variable up in the call's context
func (Show) Expand(ctx context.Context, call types.Call) (types.Expansion, error) {
	logger := logging.GetLogger("directives.show")

	args, err := arguments.Parse(call.Invocation.RawArgs, 1)
	if err != nil {
		return types.Expansion{}, err
	}

	arg, _ := args.At(0)
	name := arg.Text

	value, ok := call.Context.Lookup(name)
	if !ok || arg.Kind == types.ArgObject {
		logger.Warn().
			Str("file", call.File).
			Str("variable", name).
			Msg("undefined variable, leaving directive unexpanded")
		return types.Expansion{Keep: true, Unresolved: []string{name}}, nil
	}

	text, err := value.Resolve(ctx)
	if err != nil {
		code := errors.ErrInternal
		if value.Kind() == types.KindDeferred {
			code = errors.ErrDeferred
		}
		return types.Expansion{}, errors.Wrapf(err, code, "cannot show %q", name).
			WithDetail("file", call.File)
	}

	logger.Trace().
		Str("file", call.File).
		Str("variable", name).
		Str("kind", value.Kind().String()).
		Msg("substituted variable")

	return types.Expansion{Text: text}, nil
}
