// Package expander expands the directives of a single file.
//
// A file is scanned once. The output is rebuilt left to right in a fresh
// buffer: text between invocations is copied verbatim and each invocation
// is replaced by whatever its handler returns. Replacement text is never
// scanned again within the same file, so an included file's directives are
// expanded by the recursive call that produced it, and nothing else.
package expander

import (
	"context"
	"strings"

	"github.com/arthur-debert/splice/pkg/directives"
	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/logging"
	"github.com/arthur-debert/splice/pkg/registry"
	"github.com/arthur-debert/splice/pkg/types"
	"github.com/rs/zerolog"
)

// Expander compiles files through a filesystem capability using a set of
// directive handlers
type Expander struct {
	fs         types.FS
	directives registry.Registry[types.Directive]
	logger     zerolog.Logger
}

// New creates an Expander. A nil registry selects the built-in directives.
func New(fsys types.FS, handlers registry.Registry[types.Directive]) *Expander {
	if handlers == nil {
		handlers = directives.Default()
	}
	return &Expander{
		fs:         fsys,
		directives: handlers,
		logger:     logging.GetLogger("expander"),
	}
}

// CompileFile reads path and expands every directive in it using scope.
// Included files are compiled recursively, depth first, in the order their
// directives appear.
func (e *Expander) CompileFile(ctx context.Context, path string, scope types.Context) (*types.CompiledFile, error) {
	data, err := e.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot read %s", path).
			WithDetail("path", path)
	}

	content := string(data)
	invocations := directives.Scan(content)

	e.logger.Debug().
		Str("path", path).
		Int("directives", len(invocations)).
		Int("variables", scope.Len()).
		Msg("compiling file")

	result := &types.CompiledFile{Input: path}
	if len(invocations) == 0 {
		result.Content = content
		return result, nil
	}

	var out strings.Builder
	out.Grow(len(content))

	cursor := 0
	for _, inv := range invocations {
		out.WriteString(content[cursor:inv.Start])
		cursor = inv.End

		handler, ok := e.directives.Lookup(inv.Name)
		if !ok {
			e.logger.Trace().
				Str("path", path).
				Str("directive", inv.Name).
				Msg("no handler, keeping text")
			out.WriteString(inv.Text)
			continue
		}

		expansion, err := handler.Expand(ctx, types.Call{
			Invocation: inv,
			File:       path,
			Context:    scope,
			Compile:    e.CompileFile,
		})
		if err != nil {
			return nil, err
		}

		if expansion.Keep {
			out.WriteString(inv.Text)
		} else {
			out.WriteString(expansion.Text)
		}
		result.Includes = append(result.Includes, expansion.Includes...)
		result.Unresolved = append(result.Unresolved, expansion.Unresolved...)
	}
	out.WriteString(content[cursor:])

	result.Content = out.String()
	return result, nil
}
