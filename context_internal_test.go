package chidi

import (
	"context"
	"testing"

	"github.com/StevanFreeborn/chidi/internal/testtypes"
	"github.com/stretchr/testify/assert"
)

// A value that is not a di.Scope can only end up under the scope key through
// the unexported key itself, so these cases live in an internal test.

func Test_scopeFromContext(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		s, err := scopeFromContext(context.Background())

		assert.Nil(t, s)
		assert.ErrorIs(t, err, ErrScopeNotFound)
	})

	t.Run("not a scope", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), scopeContextKey{}, struct{}{})

		s, err := scopeFromContext(ctx)

		assert.Nil(t, s)
		assert.ErrorIs(t, err, ErrInvalidScope)
	})
}

func Test_Resolve_InvalidSlotValue(t *testing.T) {
	ctx := context.WithValue(context.Background(), scopeContextKey{}, "not a scope")

	got, err := Resolve[testtypes.Greeter](ctx)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrInvalidScope)
	assert.NotContains(t, err.Error(), "service not registered")
}
