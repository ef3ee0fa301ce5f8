package model

import "time"

// ShoppingItem: позиция списка покупок, всегда привязана к одному магазину.
type ShoppingItem struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"not null"`
	Quantity string `gorm:"not null"` // строка: "2 lbs", "1 dozen"

	StoreID int64  `gorm:"not null;index"` // ссылка на stores.id
	Store   *Store `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	NeedByDate *Date `gorm:"type:date"`
	IsChecked  bool  `gorm:"not null"`

	// Время ставит БД: DEFAULT при вставке (тег для AutoMigrate, в Postgres
	// default задаёт миграция). updated_at пишется только в UPDATE через repo.withTouch.
	CreatedAt time.Time `gorm:"->;not null;default:(strftime('%Y-%m-%d %H:%M:%f','now'))"`
	UpdatedAt time.Time `gorm:"<-:update;not null;default:(strftime('%Y-%m-%d %H:%M:%f','now'))"`
}

func (ShoppingItem) TableName() string { return "shopping_items" }
