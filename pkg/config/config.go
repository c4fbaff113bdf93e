// Файл: pkg/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type DatabaseConfig struct {
	Driver string
	// Path - файл SQLite, используется при Driver == "sqlite".
	Path string
	// DSN для PostgreSQL, используется при Driver == "postgres".
	DSN string
}

type LogConfig struct {
	Level string
	File  string
}

type ReportConfig struct {
	// Пустой XLSXPath - выгрузка в Excel отключена.
	XLSXPath string
}

type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	Report   ReportConfig
}

// New читает .env (если он есть) и собирает конфиг из окружения.
// Отсутствие .env не ошибка: значения по умолчанию дают обычный запуск на supermaids.db.
func New() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv собирает конфиг только из текущего окружения процесса.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			Driver: strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			Path:   getEnv("SQLITE_PATH", "supermaids.db"),
			DSN:    getEnv("DATABASE_URL", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
		Report: ReportConfig{
			XLSXPath: getEnv("REPORT_XLSX_PATH", ""),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("SQLITE_PATH не может быть пустым")
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("DATABASE_URL обязателен при DB_DRIVER=%s", DriverPostgres)
		}
	default:
		return fmt.Errorf("неподдерживаемый DB_DRIVER %q: допустимо %s или %s", c.Database.Driver, DriverSQLite, DriverPostgres)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
