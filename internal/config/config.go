package config

import (
	"flag"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// schemaNameRe: допустимое имя схемы Postgres: строчные буквы, цифры и _, до 63 символов.
// Имя подставляется в SET search_path, поэтому всё остальное отвергаем.
var schemaNameRe = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

// hostPortRe: BASE_URL в виде "address:port" (без схемы и пути).
var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)

const (
	defaultBaseURL = "localhost:8000"
	defaultSchema  = "public"
)

// DBConfig: настройки подключения к БД.
type DBConfig struct {
	URL    string `env:"DATABASE_URL"`
	Schema string `env:"SCHEMA_NAME" envDefault:"public"`

	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

type Config struct {
	// Server-side settings
	DB          DBConfig
	AutoMigrate bool   `env:"AUTO_MIGRATE"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Dev         bool   `env:"DEV"`

	// Shared settings
	BaseURL string `env:"BASE_URL"`

	// Client-side settings
	ServerURL string `env:"SERVER_URL"`
	Version   bool   `env:"-"` // show version and exit (flag only)
}

// ValidateSchemaName проверяет имя схемы до любого подключения к БД.
func ValidateSchemaName(name string) error {
	if !schemaNameRe.MatchString(name) {
		return fmt.Errorf("invalid SCHEMA_NAME %q: must be lowercase alphanumeric with underscores, starting with letter or underscore", name)
	}
	return nil
}

// NewConfig собирает конфигурацию из .env, окружения и флагов.
// Отсутствие DATABASE_URL здесь не ошибка: без БД сервер отвечает только на health-пробы.
// Невалидное имя схемы сразу даёт ошибку.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// флаги по умолчанию берут значения из env и перекрывают их
	// Server flags
	flag.StringVar(&cfg.DB.URL, "d", cfg.DB.URL, "строка подключения к БД")
	flag.StringVar(&cfg.DB.Schema, "schema", cfg.DB.Schema, "схема Postgres для таблиц сервиса")
	flag.BoolVar(&cfg.AutoMigrate, "migrate", cfg.AutoMigrate, "apply migrations on start")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")
	// Shared flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "listen address of the server (host:port)")
	// Client flags
	flag.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "API URL for the client (e.g. http://localhost:8000)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	if cfg.DB.Schema == "" {
		cfg.DB.Schema = defaultSchema
	}
	if err := ValidateSchemaName(cfg.DB.Schema); err != nil {
		return nil, err
	}

	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.ServerURL == "" {
		host := cfg.BaseURL
		if strings.HasPrefix(host, ":") {
			host = "localhost" + host
		}
		cfg.ServerURL = "http://" + host
	}
	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")

	return cfg, nil
}
