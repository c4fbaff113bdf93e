package database

import (
	"context"
	"database/sql"

	"supermaids/pkg/config"
	"supermaids/pkg/database/postgresql"
	"supermaids/pkg/database/sqlite"
	apperrors "supermaids/pkg/errors"
)

type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// Store - единственный дескриптор хранилища, который передаётся по всему конвейеру.
type Store struct {
	DB      *sql.DB
	Dialect Dialect
}

func (s *Store) Close() error {
	return s.DB.Close()
}

// Open подключается к хранилищу, выбранному в конфиге.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.ConnectDB(ctx, cfg.Path)
		if err != nil {
			return nil, apperrors.Setup("%w", err)
		}
		return &Store{DB: db, Dialect: SQLite}, nil
	case config.DriverPostgres:
		db, err := postgresql.ConnectDB(ctx, cfg.DSN)
		if err != nil {
			return nil, apperrors.Setup("%w", err)
		}
		return &Store{DB: db, Dialect: Postgres}, nil
	default:
		return nil, apperrors.Setup("неподдерживаемый драйвер %q", cfg.Driver)
	}
}
