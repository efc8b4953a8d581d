package chidi_test

import (
	"context"
	"testing"

	"github.com/StevanFreeborn/chidi"
	"github.com/StevanFreeborn/chidi/internal/testtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A container can be configured entirely through the re-exported surface.
func Test_RegistrationPassthrough(t *testing.T) {
	c, err := chidi.NewContainer(
		chidi.WithService(testtypes.NewGreeter, chidi.WithTag("tagged")),
		chidi.WithService(testtypes.NewRequestID, chidi.Scoped),
		chidi.WithService(testtypes.NewCloseCounter, chidi.Transient),
		chidi.WithService(testtypes.NewResource, chidi.Scoped,
			chidi.WithCloseFunc(func(_ context.Context, r *testtypes.Resource) error {
				r.Release()
				return nil
			}),
		),
	)
	require.NoError(t, err)

	scope, err := c.NewScope()
	require.NoError(t, err)

	ctx := chidi.WithScope(context.Background(), scope)

	g, err := chidi.Resolve[testtypes.Greeter](ctx, chidi.WithTag("tagged"))
	require.NoError(t, err)
	assert.Equal(t, "hello alias", g.Greet("alias"))

	id, err := chidi.Resolve[*testtypes.RequestID](ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, id.Value)

	res, err := chidi.Resolve[*testtypes.Resource](ctx)
	require.NoError(t, err)
	assert.False(t, res.Released())

	err = scope.Close(ctx)
	require.NoError(t, err)

	// The close func registered through the pass-through surface ran when the
	// scope closed.
	assert.True(t, res.Released())
}
