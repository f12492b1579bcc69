package credentials

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	SchemePlaintext = "plaintext"
	SchemeBcrypt    = "bcrypt"
)

// PasswordMatcher isolates how passwords are stored and compared.
type PasswordMatcher interface {
	// Scheme names the storage format.
	Scheme() string

	// Prepare turns a password into its stored form.
	Prepare(password string) (string, error)

	// Match reports whether candidate matches the stored form.
	Match(stored, candidate string) bool
}

// NewMatcher returns the matcher for a scheme name.
func NewMatcher(scheme string) (PasswordMatcher, error) {
	switch scheme {
	case SchemePlaintext, "":
		return Plaintext{}, nil
	case SchemeBcrypt:
		return Bcrypt{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, errors.New("credentials: unknown password scheme " + scheme)
	}
}

// Plaintext stores the password as given and compares it exactly.
// It is not safe for anything beyond a demo.
type Plaintext struct{}

func (Plaintext) Scheme() string { return SchemePlaintext }

func (Plaintext) Prepare(password string) (string, error) {
	return password, nil
}

func (Plaintext) Match(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// BcryptMaxPassword is the longest password bcrypt accepts, in bytes.
const BcryptMaxPassword = 72

// Bcrypt hashes passwords with bcrypt. Prepare returns ErrPasswordTooLong
// for passwords over BcryptMaxPassword bytes.
type Bcrypt struct {
	Cost int
}

func (Bcrypt) Scheme() string { return SchemeBcrypt }

func (b Bcrypt) Prepare(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	if len(password) > BcryptMaxPassword {
		return "", ErrPasswordTooLong
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (Bcrypt) Match(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
