package repo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgForeignKeyViolation: SQLSTATE нарушения внешнего ключа в Postgres.
const pgForeignKeyViolation = "23503"

// IsForeignKeyViolation распознаёт нарушение внешнего ключа у Postgres и SQLite.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// translateError приводит ошибки драйверов к gorm.ErrForeignKeyViolated.
func translateError(err error) error {
	if err == nil || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return err
	}
	if IsForeignKeyViolation(err) {
		return fmt.Errorf("%w: %v", gorm.ErrForeignKeyViolated, err)
	}
	return err
}
