package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_referrals_personal_id"}

	assert.True(t, isDuplicateKeyError(dup, "personal_id"))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("create referral: %w", dup), "personal_id"))
	assert.False(t, isDuplicateKeyError(dup, "email"))
	assert.False(t, isDuplicateKeyError(errors.New("connection refused"), "personal_id"))
	assert.False(t, isDuplicateKeyError(nil, "personal_id"))
}

func TestIsForeignKeyError(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_tourniquet_trainings_soldier"}

	assert.True(t, isForeignKeyError(fk, "soldier"))
	assert.True(t, isForeignKeyError(fmt.Errorf("insert training: %w", fk), "soldier"))
	assert.False(t, isForeignKeyError(fk, "medic"))

	// A unique violation on the same constraint name is not a FK failure
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "fk_tourniquet_trainings_soldier"}
	assert.False(t, isForeignKeyError(dup, "soldier"))
	assert.False(t, isForeignKeyError(errors.New("connection refused"), "soldier"))
}
