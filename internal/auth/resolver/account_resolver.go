package resolver

import (
	"context"
	"errors"

	"gemini-nlp/internal/auth"
	"gemini-nlp/internal/auth/credentials"
)

// AccountLookup is the subset of the credentials service the resolver needs.
type AccountLookup interface {
	Lookup(ctx context.Context, email string) (credentials.Account, error)
}

// AccountResolver resolves identities from the account store, whichever
// backend it uses. It is the only place email-to-identity mapping lives.
type AccountResolver struct {
	accounts AccountLookup
}

func NewAccountResolver(accounts AccountLookup) *AccountResolver {
	return &AccountResolver{accounts: accounts}
}

func (r *AccountResolver) Resolve(
	ctx context.Context,
	email string,
) (*auth.Identity, error) {

	if email == "" {
		return nil, errors.New("resolver: email is empty")
	}

	account, err := r.accounts.Lookup(ctx, email)
	if err != nil {
		return nil, err
	}

	return &auth.Identity{
		Email: account.Email,
		Name:  account.Name,
	}, nil
}

var _ auth.Resolver = (*AccountResolver)(nil)
