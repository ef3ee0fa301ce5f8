package repo

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sqliteNow: текущее время с миллисекундами в формате, который драйвер SQLite
// читает как datetime. CURRENT_TIMESTAMP даёт только секунды.
const sqliteNow = "strftime('%Y-%m-%d %H:%M:%f','now')"

// nowExpr возвращает выражение «сейчас» на стороне БД для диалекта db.
func nowExpr(db *gorm.DB) clause.Expr {
	if db.Dialector.Name() == "sqlite" {
		return gorm.Expr(sqliteNow)
	}
	return gorm.Expr("now()")
}

// withTouch копирует набор колонок и добавляет updated_at = время БД.
// Исходная карта вызывающего не меняется.
func withTouch(db *gorm.DB, updates map[string]any) map[string]any {
	out := make(map[string]any, len(updates)+1)
	for k, v := range updates {
		out[k] = v
	}
	out["updated_at"] = nowExpr(db)
	return out
}
