package resolver

import (
	"context"
	"testing"

	"gemini-nlp/internal/auth/credentials"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountResolver(t *testing.T) {
	ctx := context.Background()
	svc := credentials.NewService(credentials.NewMemoryStore(), nil)
	require.NoError(t, svc.Register(ctx, "Ann", "a@x.com", "p1"))

	r := NewAccountResolver(svc)

	identity, err := r.Resolve(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", identity.Name)
	assert.Equal(t, "a@x.com", identity.Email)

	_, err = r.Resolve(ctx, "b@x.com")
	assert.ErrorIs(t, err, credentials.ErrNotFound)

	_, err = r.Resolve(ctx, "")
	assert.Error(t, err)
}
