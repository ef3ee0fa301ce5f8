package repo

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"ShoppingList/internal/config"
	"ShoppingList/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// ErrDatabaseURLMissing: БД не сконфигурирована (DATABASE_URL пуст).
var ErrDatabaseURLMissing = errors.New("DATABASE_URL environment variable is not set")

// Session: единица работы одного запроса: репозитории, привязанные к одной транзакции.
type Session interface {
	Stores() StoreRepository
	Items() ItemRepository
}

// Database владеет пулом соединений и выдаёт транзакционные сессии.
type Database struct {
	db *gorm.DB
}

// Connect открывает пул Postgres. Каждое новое физическое соединение сразу
// переключается на схему cfg.Schema, а перед повторной выдачей из пула пингуется.
func Connect(ctx context.Context, cfg config.DBConfig, logger *zap.SugaredLogger) (*Database, error) {
	if cfg.URL == "" {
		return nil, ErrDatabaseURLMissing
	}
	if err := config.ValidateSchemaName(cfg.Schema); err != nil {
		return nil, err
	}

	connCfg, err := pgx.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	// простой протокол, чтобы работать через pgbouncer-подобные пулеры
	connCfg.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	// имя схемы уже провалидировано, кавычки на случай зарезервированных слов
	searchPath := fmt.Sprintf(`SET search_path TO "%s"`, cfg.Schema)

	sqlDB := stdlib.OpenDB(*connCfg,
		stdlib.OptionAfterConnect(func(ctx context.Context, conn *pgx.Conn) error {
			_, err := conn.Exec(ctx, searchPath)
			return err
		}),
		stdlib.OptionResetSession(func(ctx context.Context, conn *pgx.Conn) error {
			if err := conn.Ping(ctx); err != nil {
				return driver.ErrBadConn
			}
			return nil
		}),
	)
	applyPoolSettings(sqlDB, cfg)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig())
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("opening db connection: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if logger != nil {
		logger.Infow("database connection established", "schema", cfg.Schema)
	}
	return &Database{db: gdb}, nil
}

// OpenSQLite открывает БД SQLite (modernc.org/sqlite) с включёнными внешними ключами.
// Используется в тестах и для локального запуска без Postgres.
func OpenSQLite(dsn string) (*Database, error) {
	if !strings.Contains(dsn, "foreign_keys") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_pragma=foreign_keys(1)"
	}
	gdb, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	// одно соединение: in-memory БД живёт внутри него
	sqlDB.SetMaxOpenConns(1)
	return &Database{db: gdb}, nil
}

// Unconfigured возвращает Database без пула: любая сессия завершается ErrDatabaseURLMissing.
func Unconfigured() *Database {
	return &Database{}
}

// Configured сообщает, есть ли за Database реальный пул.
func (d *Database) Configured() bool {
	return d != nil && d.db != nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.New(
			log.New(io.Discard, "", log.LstdFlags),
			gormlogger.Config{LogLevel: gormlogger.Silent},
		),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	}
}

func applyPoolSettings(sqlDB *sql.DB, cfg config.DBConfig) {
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}
}

// WithSession выполняет fn в одной транзакции: commit при nil, rollback при ошибке или панике.
func (d *Database) WithSession(ctx context.Context, fn func(s Session) error) error {
	if !d.Configured() {
		return ErrDatabaseURLMissing
	}
	tx := d.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(newSession(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// Ping проверяет доступность БД.
func (d *Database) Ping(ctx context.Context) error {
	if !d.Configured() {
		return ErrDatabaseURLMissing
	}
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close закрывает пул соединений.
func (d *Database) Close() error {
	if !d.Configured() {
		return nil
	}
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate создаёт таблицы средствами gorm (SQLite). Для Postgres есть Migrate.
func (d *Database) AutoMigrate() error {
	if !d.Configured() {
		return ErrDatabaseURLMissing
	}
	return d.db.AutoMigrate(&model.Store{}, &model.ShoppingItem{})
}

type txSession struct {
	stores StoreRepository
	items  ItemRepository
}

func newSession(tx *gorm.DB) *txSession {
	return &txSession{
		stores: NewStoreRepository(tx),
		items:  NewItemRepository(tx),
	}
}

func (s *txSession) Stores() StoreRepository { return s.stores }
func (s *txSession) Items() ItemRepository { return s.items }
