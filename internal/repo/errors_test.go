package repo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsForeignKeyViolation(t *testing.T) {
	assert.False(t, IsForeignKeyViolation(nil))
	assert.False(t, IsForeignKeyViolation(errors.New("duplicate key value")))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))

	assert.True(t, IsForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"})))
	assert.True(t, IsForeignKeyViolation(errors.New("constraint failed: FOREIGN KEY constraint failed (787)")))
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	pg := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
	err := translateError(pg)
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)

	other := errors.New("connection reset")
	assert.Same(t, other, translateError(other))
}
