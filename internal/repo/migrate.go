package repo

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"ShoppingList/internal/config"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// Migrate выполняет команду goose (up|down|status|version|...) в схеме schema.
// Схема создаётся, если её нет; search_path соединений уже указывает на неё.
func Migrate(ctx context.Context, d *Database, schema, command string, args ...string) error {
	if !d.Configured() {
		return ErrDatabaseURLMissing
	}
	if err := config.ValidateSchemaName(schema); err != nil {
		return err
	}
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	if _, err := sqlDB.ExecContext(ctx, fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS "%s"`, schema)); err != nil {
		return fmt.Errorf("create schema %s: %w", schema, err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.RunContext(ctx, command, sqlDB, migrationsDir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

var migrationFileRe = regexp.MustCompile(`^(\d{14})_[a-z0-9_]+\.sql$`)

// ValidateMigrations проверяет имена и goose-заголовки встроенных миграций.
func ValidateMigrations() error {
	entries, err := fs.ReadDir(migrations, migrationsDir)
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	seen := map[string]string{} // version -> filename
	for _, e := range entries {
		name := e.Name()
		m := migrationFileRe.FindStringSubmatch(name)
		if m == nil {
			return fmt.Errorf("invalid migration filename %q (expected YYYYMMDDHHMMSS_name.sql)", name)
		}
		if prev, ok := seen[m[1]]; ok {
			return fmt.Errorf("duplicate migration version %s in %q and %q", m[1], prev, name)
		}
		seen[m[1]] = name

		b, err := fs.ReadFile(migrations, migrationsDir+"/"+name)
		if err != nil {
			return err
		}
		txt := string(b)
		if !strings.Contains(txt, "-- +goose Up") || !strings.Contains(txt, "-- +goose Down") {
			return fmt.Errorf("migration %q must contain goose Up and Down sections", name)
		}
	}
	return nil
}
