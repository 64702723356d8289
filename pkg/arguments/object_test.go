package arguments

import (
	"testing"

	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestParseObject_Syntaxes(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"colon bare key", "{x:1}"},
		{"equals bare key", "{x = 1}"},
		{"json style", `{"x": 1}`},
		{"multiple keys", `{x: 1, y: "two"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := ParseObject(tt.src)
			require.NoError(t, err)
			assert.True(t, obj.Type().IsObjectType())
			assertNumber(t, obj.GetAttr("x"), 1)
		})
	}
}

func TestParseObject_Empty(t *testing.T) {
	obj, err := ParseObject("{}")
	require.NoError(t, err)

	ctx, err := ObjectContext(obj)
	require.NoError(t, err)
	assert.Equal(t, 0, ctx.Len())
}

func TestParseObject_RejectsForExpression(t *testing.T) {
	_, err := ParseObject(`{for k, v in {a = 1}: k => v}`)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
}

func TestObjectContext(t *testing.T) {
	obj, err := ParseObject(`{title: "Home", count: 3, nav: {active: true}}`)
	require.NoError(t, err)

	ctx, err := ObjectContext(obj)
	require.NoError(t, err)
	assert.Equal(t, []string{"count", "nav", "title"}, ctx.Keys())

	title, _ := ctx.Lookup("title")
	assert.Equal(t, types.KindString, title.Kind())

	count, _ := ctx.Lookup("count")
	assert.Equal(t, types.KindStructured, count.Kind())
	text, err := count.Text()
	require.NoError(t, err)
	assert.Equal(t, "3", text)

	nav, _ := ctx.Lookup("nav")
	assert.True(t, nav.IsObject())
}

func TestObjectContext_NotAnObject(t *testing.T) {
	_, err := ObjectContext(cty.StringVal("nope"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
}
