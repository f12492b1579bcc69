package credentials

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyExists      = errors.New("account already exists")

	// ErrPasswordTooLong is returned by Register when the matcher cannot
	// store the password.
	ErrPasswordTooLong = errors.New("password too long")
)

type Service struct {
	store   Store
	matcher PasswordMatcher
	now     func() time.Time
}

func NewService(store Store, matcher PasswordMatcher) *Service {
	if matcher == nil {
		matcher = Plaintext{}
	}
	return &Service{
		store:   store,
		matcher: matcher,
		now:     time.Now,
	}
}

// Register stores a new account. Name, email and password are taken as
// given; there is no format or strength validation.
func (s *Service) Register(
	ctx context.Context,
	name string,
	email string,
	password string,
) error {

	stored, err := s.matcher.Prepare(password)
	if err != nil {
		return err
	}

	return s.store.Create(ctx, Account{
		Name:      name,
		Email:     email,
		Password:  stored,
		CreatedAt: s.now(),
	})
}

// Authenticate returns the account when email and password match.
func (s *Service) Authenticate(
	ctx context.Context,
	email string,
	password string,
) (Account, error) {

	a, err := s.store.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		// hide whether the account exists
		return Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return Account{}, err
	}

	if !s.matcher.Match(a.Password, password) {
		return Account{}, ErrInvalidCredentials
	}

	return a, nil
}

// Lookup returns the account for an email.
func (s *Service) Lookup(ctx context.Context, email string) (Account, error) {
	return s.store.FindByEmail(ctx, email)
}
