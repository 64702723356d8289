// pkg/types/value_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test the Value variant and its textual forms

package types_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arthur-debert/splice/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestValue_Text(t *testing.T) {
	tests := []struct {
		name  string
		value types.Value
		want  string
	}{
		{
			name:  "plain string",
			value: types.String("hello"),
			want:  "hello",
		},
		{
			name:  "structured number",
			value: types.Structured(cty.NumberIntVal(1)),
			want:  "1",
		},
		{
			name:  "structured bool",
			value: types.Structured(cty.True),
			want:  "true",
		},
		{
			name:  "structured object renders as json",
			value: types.Structured(cty.ObjectVal(map[string]cty.Value{"x": cty.NumberIntVal(1)})),
			want:  `{"x":1}`,
		},
		{
			name:  "null renders empty",
			value: types.Structured(cty.NullVal(cty.String)),
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.value.Text()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValue_ResolveDeferred(t *testing.T) {
	calls := 0
	v := types.Deferred(func(ctx context.Context) (string, error) {
		calls++
		return "X", nil
	})

	assert.Equal(t, types.KindDeferred, v.Kind())

	got, err := v.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "X", got)
	assert.Equal(t, 1, calls)

	_, err = v.Text()
	assert.Error(t, err, "deferred values have no static text")
}

func TestValue_ResolveDeferredError(t *testing.T) {
	boom := errors.New("boom")
	v := types.Deferred(func(ctx context.Context) (string, error) {
		return "", boom
	})

	_, err := v.Resolve(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestFromGo(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		v, err := types.FromGo("abc")
		require.NoError(t, err)
		assert.Equal(t, types.KindString, v.Kind())
	})

	t.Run("function becomes deferred", func(t *testing.T) {
		v, err := types.FromGo(func() string { return "later" })
		require.NoError(t, err)
		assert.Equal(t, types.KindDeferred, v.Kind())

		got, err := v.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "later", got)
	})

	t.Run("map becomes structured object", func(t *testing.T) {
		v, err := types.FromGo(map[string]interface{}{"title": "Home", "count": 3})
		require.NoError(t, err)
		assert.Equal(t, types.KindStructured, v.Kind())
		assert.True(t, v.IsObject())

		attrs := v.Cty().AsValueMap()
		assert.Equal(t, "Home", attrs["title"].AsString())
	})

	t.Run("number becomes structured primitive", func(t *testing.T) {
		v, err := types.FromGo(42)
		require.NoError(t, err)
		assert.False(t, v.IsObject())

		text, err := v.Text()
		require.NoError(t, err)
		assert.Equal(t, "42", text)
	})

	t.Run("unencodable value", func(t *testing.T) {
		_, err := types.FromGo(make(chan int))
		assert.Error(t, err)
	})
}
