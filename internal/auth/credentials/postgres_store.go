package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gemini-nlp/internal/db"

	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

type PostgresStore struct {
	db     *db.DB
	scheme string
}

func NewPostgresStore(db *db.DB, scheme string) *PostgresStore {
	return &PostgresStore{db: db, scheme: scheme}
}

func (s *PostgresStore) Create(ctx context.Context, a Account) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts (email, name, password, password_scheme)
		VALUES ($1, $2, $3, $4)
	`, a.Email, a.Name, a.Password, s.scheme)
	return insertError(err)
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (Account, error) {
	var a Account
	err := s.db.QueryRowContext(ctx, `
		SELECT email, name, password, created_at
		FROM accounts
		WHERE email = $1
	`, email).Scan(&a.Email, &a.Name, &a.Password, &a.CreatedAt)
	if err := findError(err); err != nil {
		return Account{}, err
	}
	return a, nil
}

// insertError maps a unique violation on the email key to ErrAlreadyExists.
func insertError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return ErrAlreadyExists
	}
	return fmt.Errorf("credentials: insert account: %w", err)
}

func findError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	default:
		return fmt.Errorf("credentials: find account: %w", err)
	}
}
