package credentials

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("account not found")

// Store holds the account mapping keyed by email.
type Store interface {
	// Create inserts the account. It returns ErrAlreadyExists when the email
	// is taken and never overwrites the existing record.
	Create(ctx context.Context, a Account) error

	// FindByEmail returns ErrNotFound when no account has the email.
	FindByEmail(ctx context.Context, email string) (Account, error)
}
