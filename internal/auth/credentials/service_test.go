package credentials

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type failingStore struct{ err error }

func (f failingStore) Create(context.Context, Account) error { return f.err }

func (f failingStore) FindByEmail(context.Context, string) (Account, error) {
	return Account{}, f.err
}

func TestRegisterThenAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore(), nil)

	require.NoError(t, svc.Register(ctx, "Ann", "a@x.com", "p1"))

	a, err := svc.Authenticate(ctx, "a@x.com", "p1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", a.Name)
	assert.False(t, a.CreatedAt.IsZero())

	_, err = svc.Authenticate(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@x.com", "p1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore(), nil)

	require.NoError(t, svc.Register(ctx, "Bob", "b@x.com", "pw"))
	assert.ErrorIs(t, svc.Register(ctx, "Bob2", "b@x.com", "pw2"), ErrAlreadyExists)

	_, err := svc.Authenticate(ctx, "b@x.com", "pw2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	a, err := svc.Authenticate(ctx, "b@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Bob", a.Name)
}

func TestRegisterAcceptsAnyInput(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore(), nil)

	require.NoError(t, svc.Register(ctx, "", "not-an-email", ""))

	_, err := svc.Authenticate(ctx, "not-an-email", "")
	assert.NoError(t, err)
}

func TestBcryptServiceStoresHash(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewService(store, Bcrypt{Cost: bcrypt.MinCost})

	require.NoError(t, svc.Register(ctx, "Ann", "a@x.com", "p1"))

	raw, err := store.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "p1", raw.Password)

	_, err = svc.Authenticate(ctx, "a@x.com", "p1")
	assert.NoError(t, err)
}

func TestAuthenticateStoreFailureIsNotHidden(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewService(failingStore{err: boom}, nil)

	_, err := svc.Authenticate(context.Background(), "a@x.com", "p1")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterLongPasswordWithBcrypt(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewService(store, Bcrypt{Cost: bcrypt.MinCost})

	err := svc.Register(ctx, "Ann", "a@x.com", strings.Repeat("x", 100))
	require.ErrorIs(t, err, ErrPasswordTooLong)
	assert.Equal(t, 0, store.Len())
}
