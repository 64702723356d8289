package directives

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/splice/pkg/arguments"
	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/logging"
	"github.com/arthur-debert/splice/pkg/types"
)

// IncludeName is the directive name for file inclusion
const IncludeName = "include"

// Include splices in the expanded content of another file.
//
//	@@include(path)
//	@@include(path, {key: value})
//	@@include(path, variable)
//
// The path is resolved against the directory of the including file. The
// optional second argument is merged over the current context for the
// included file only.
type Include struct{}

// Name returns the directive name
func (Include) Name() string {
	return IncludeName
}

// Expand compiles the target file and returns its content
func (Include) Expand(ctx context.Context, call types.Call) (types.Expansion, error) {
	logger := logging.GetLogger("directives.include")

	args, err := arguments.Parse(call.Invocation.RawArgs, 2)
	if err != nil {
		return types.Expansion{}, err
	}

	target, _ := args.At(0)
	if target.Kind == types.ArgObject {
		return types.Expansion{}, errors.New(errors.ErrParse, "include path must be a string").
			WithDetail("file", call.File).
			WithDetail("directive", call.Invocation.Text)
	}

	location := target.Text
	if !filepath.IsAbs(location) {
		location = filepath.Join(filepath.Dir(call.File), location)
	}
	location = filepath.Clean(location)

	override, ignored, err := includeOverride(args, call.Context)
	if err != nil {
		return types.Expansion{}, errors.Wrapf(err, errors.ErrParse, "invalid include in %s", call.File).
			WithDetail("directive", call.Invocation.Text)
	}
	if ignored != "" {
		logger.Warn().
			Str("file", call.File).
			Str("directive", call.Invocation.Text).
			Msg(ignored)
	}

	logger.Debug().
		Str("file", call.File).
		Str("include", location).
		Int("override_keys", override.Len()).
		Msg("resolving include")

	result, err := call.Compile(ctx, location, types.Merge(call.Context, override))
	if err != nil {
		return types.Expansion{}, err
	}

	includes := make([]string, 0, len(result.Includes)+1)
	includes = append(includes, location)
	includes = append(includes, result.Includes...)

	return types.Expansion{
		Text:       result.Content,
		Includes:   includes,
		Unresolved: result.Unresolved,
	}, nil
}

// includeOverride builds the context override from the optional second
// argument. An object literal is decoded and a bare identifier naming an
// object is used as is. Anything else leaves the context unchanged and
// comes back as the reason it was ignored.
func includeOverride(args types.ArgumentList, current types.Context) (types.Context, string, error) {
	arg, ok := args.At(1)
	if !ok {
		return types.EmptyContext(), "", nil
	}

	switch arg.Kind {
	case types.ArgObject:
		override, err := arguments.ObjectContext(arg.Object)
		return override, "", err
	case types.ArgRaw:
		if arg.Text == "" {
			return types.EmptyContext(), "", nil
		}
		value, found := current.Lookup(arg.Text)
		if !found {
			return types.EmptyContext(), fmt.Sprintf("include override %q is not defined, ignoring it", arg.Text), nil
		}
		if !value.IsObject() {
			return types.EmptyContext(), fmt.Sprintf("include override %q holds a %s value, not an object, ignoring it", arg.Text, value.Kind()), nil
		}
		override, err := arguments.ObjectContext(value.Cty())
		return override, "", err
	default:
		return types.EmptyContext(), fmt.Sprintf("include override %q is a string, not an object, ignoring it", arg.Text), nil
	}
}
