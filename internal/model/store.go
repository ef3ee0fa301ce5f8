package model

import "time"

// Значения по умолчанию для новых записей.
const (
	DefaultStoreColor = "#6366f1"
	DefaultStoreIcon  = "🏪"
	DefaultQuantity   = "1"
)

// Store: магазин, по которому группируются покупки.
type Store struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null"`
	Color string `gorm:"not null"`
	Icon  string `gorm:"not null"`

	// Время ставит БД: DEFAULT при вставке (тег для AutoMigrate, в Postgres
	// default задаёт миграция). updated_at пишется только в UPDATE через repo.withTouch.
	CreatedAt time.Time `gorm:"->;not null;default:(strftime('%Y-%m-%d %H:%M:%f','now'))"`
	UpdatedAt time.Time `gorm:"<-:update;not null;default:(strftime('%Y-%m-%d %H:%M:%f','now'))"`
}

func (Store) TableName() string { return "stores" }
