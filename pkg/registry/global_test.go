package registry

import (
	"context"
	"testing"

	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upperDirective struct{}

func (upperDirective) Name() string { return "registry-test-upper" }

func (upperDirective) Expand(ctx context.Context, call types.Call) (types.Expansion, error) {
	return types.Expansion{Text: call.Invocation.RawArgs}, nil
}

func TestRegisterDirective(t *testing.T) {
	require.NoError(t, RegisterDirective(upperDirective{}))

	got, err := GetDirective("registry-test-upper")
	require.NoError(t, err)
	assert.Equal(t, "registry-test-upper", got.Name())

	err = RegisterDirective(upperDirective{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	assert.True(t, Directives().Has("registry-test-upper"))
}
