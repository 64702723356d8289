package types_test

import (
	"testing"

	"github.com/arthur-debert/splice/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestMerge_OverrideWins(t *testing.T) {
	base := types.NewContext(map[string]types.Value{
		"a": types.String("1"),
		"b": types.String("2"),
	})
	override := types.NewContext(map[string]types.Value{
		"b": types.String("3"),
	})

	merged := types.Merge(base, override)

	a, ok := merged.Lookup("a")
	assert.True(t, ok)
	text, _ := a.Text()
	assert.Equal(t, "1", text)

	b, ok := merged.Lookup("b")
	assert.True(t, ok)
	text, _ = b.Text()
	assert.Equal(t, "3", text)

	// inputs are untouched
	b, _ = base.Lookup("b")
	text, _ = b.Text()
	assert.Equal(t, "2", text)
	assert.Equal(t, 1, override.Len())
}

func TestNewContext_Copies(t *testing.T) {
	src := map[string]types.Value{"a": types.String("1")}
	ctx := types.NewContext(src)

	src["b"] = types.String("2")

	_, ok := ctx.Lookup("b")
	assert.False(t, ok)
	assert.Equal(t, []string{"a"}, ctx.Keys())
}

func TestContext_With(t *testing.T) {
	base := types.EmptyContext()
	next := base.With("name", types.String("x"))

	assert.Equal(t, 0, base.Len())
	assert.Equal(t, 1, next.Len())
}

func TestContext_ZeroValueLookup(t *testing.T) {
	var ctx types.Context
	_, ok := ctx.Lookup("missing")
	assert.False(t, ok)
	assert.Empty(t, ctx.Keys())
}
