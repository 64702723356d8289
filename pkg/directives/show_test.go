// pkg/directives/show_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test variable substitution, deferred values and misses

package directives_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/splice/pkg/directives"
	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func showCall(raw string, scope types.Context) types.Call {
	return types.Call{
		Invocation: types.Invocation{Name: directives.ShowName, RawArgs: raw, Text: "@@show(" + raw + ")"},
		File:       "/site/index.html",
		Context:    scope,
	}
}

func TestShow_Values(t *testing.T) {
	scope := types.NewContext(map[string]types.Value{
		"title":  types.String("Home"),
		"count":  types.Structured(cty.NumberIntVal(3)),
		"flag":   types.Structured(cty.True),
		"author": types.Structured(cty.ObjectVal(map[string]cty.Value{"name": cty.StringVal("ada")})),
		"later":  types.Deferred(func(context.Context) (string, error) { return "X", nil }),
	})

	tests := []struct {
		raw  string
		want string
	}{
		{"title", "Home"},
		{" title ", "Home"},
		{"count", "3"},
		{"flag", "true"},
		{"author", `{"name":"ada"}`},
		{"later", "X"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			exp, err := directives.Show{}.Expand(context.Background(), showCall(tt.raw, scope))
			require.NoError(t, err)
			assert.False(t, exp.Keep)
			assert.Equal(t, tt.want, exp.Text)
			assert.Empty(t, exp.Unresolved)
		})
	}
}

func TestShow_MissKeepsDirective(t *testing.T) {
	exp, err := directives.Show{}.Expand(context.Background(), showCall("nope", types.EmptyContext()))
	require.NoError(t, err)
	assert.True(t, exp.Keep)
	assert.Equal(t, []string{"nope"}, exp.Unresolved)
}

func TestShow_DeferredFailure(t *testing.T) {
	scope := types.EmptyContext().With("boom", types.Deferred(func(context.Context) (string, error) {
		return "", stderrors.New("exit status 1")
	}))

	_, err := directives.Show{}.Expand(context.Background(), showCall("boom", scope))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDeferred))
}

func TestShow_DeferredSeesContext(t *testing.T) {
	type key struct{}
	scope := types.EmptyContext().With("who", types.Deferred(func(ctx context.Context) (string, error) {
		return ctx.Value(key{}).(string), nil
	}))

	ctx := context.WithValue(context.Background(), key{}, "caller")
	exp, err := directives.Show{}.Expand(ctx, showCall("who", scope))
	require.NoError(t, err)
	assert.Equal(t, "caller", exp.Text)
}

func TestDefault_HasBuiltins(t *testing.T) {
	reg := directives.Default()
	assert.True(t, reg.Has(directives.IncludeName))
	assert.True(t, reg.Has(directives.ShowName))

	// the copy is independent of the global registry
	require.NoError(t, reg.Replace(directives.ShowName, directives.Include{}))
	again := directives.Default()
	d, err := again.Get(directives.ShowName)
	require.NoError(t, err)
	assert.Equal(t, directives.ShowName, d.Name())
}
