package db

import (
	"context"
	"database/sql"
)

// Email is compared byte-for-byte, same as the in-memory mapping.
const accountsMigration = `
CREATE TABLE IF NOT EXISTS accounts (
    email text PRIMARY KEY,
    name text NOT NULL,
    password text NOT NULL,
    password_scheme text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);
`

func RunAccountsMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, accountsMigration)
	return err
}
