package repo

import (
	"testing"
	"time"

	"ShoppingList/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB поднимает in-memory SQLite (modernc.org/sqlite) с внешними ключами и схемой сервиса.
func newTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := OpenSQLite("file::memory:")
	require.NoError(t, err, "failed to open sqlite (modernc)")
	require.NoError(t, db.AutoMigrate(), "failed to automigrate")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// gormOf возвращает соединение без транзакции, для проверок в тестах.
func gormOf(db *Database) *gorm.DB {
	return db.db
}

func mustCreateStore(t *testing.T, db *Database, name string) model.Store {
	t.Helper()
	s := model.Store{Name: name, Color: model.DefaultStoreColor, Icon: model.DefaultStoreIcon}
	require.NoError(t, NewStoreRepository(gormOf(db)).Create(t.Context(), &s))
	return s
}

// setCreatedAt переписывает created_at позиции в формате, который пишет DEFAULT SQLite.
func setCreatedAt(t *testing.T, db *Database, id int64, at time.Time) {
	t.Helper()
	err := gormOf(db).Exec("UPDATE shopping_items SET created_at = ? WHERE id = ?",
		at.UTC().Format("2006-01-02 15:04:05.000"), id).Error
	require.NoError(t, err)
}
