package credentials

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestInsertError(t *testing.T) {
	assert.NoError(t, insertError(nil))

	dup := &pq.Error{Code: uniqueViolation, Constraint: "accounts_pkey"}
	assert.ErrorIs(t, insertError(dup), ErrAlreadyExists)
	assert.ErrorIs(t, insertError(fmt.Errorf("exec: %w", dup)), ErrAlreadyExists)

	other := &pq.Error{Code: "23502"} // not_null_violation
	err := insertError(other)
	assert.NotErrorIs(t, err, ErrAlreadyExists)
	assert.ErrorIs(t, err, other)

	down := errors.New("connection reset")
	assert.ErrorIs(t, insertError(down), down)
}

func TestFindError(t *testing.T) {
	assert.NoError(t, findError(nil))
	assert.ErrorIs(t, findError(sql.ErrNoRows), ErrNotFound)

	down := errors.New("connection reset")
	err := findError(down)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, down)
}
