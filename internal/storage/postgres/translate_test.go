package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/hongminglow/guard-reports-be/internal/storage"
)

func TestTranslate(t *testing.T) {
	assert.ErrorIs(t, translate(pgx.ErrNoRows), storage.ErrNotFound)
	assert.ErrorIs(t, translate(fmt.Errorf("scan: %w", pgx.ErrNoRows)), storage.ErrNotFound)
	assert.ErrorIs(t, translate(&pgconn.PgError{Code: "23505"}), storage.ErrAlreadyExists)

	other := &pgconn.PgError{Code: "42P01"}
	assert.Same(t, other, translate(other))

	plain := errors.New("boom")
	assert.Equal(t, plain, translate(plain))
}
