// Package migrations создаёт схему базы: шесть таблиц с ограничениями.
// Повторный запуск ничего не меняет - goose помнит применённые версии,
// а сами таблицы создаются через IF NOT EXISTS.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"supermaids/pkg/database"
	apperrors "supermaids/pkg/errors"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

func dialectFS(d database.Dialect) (goose.Dialect, fs.FS, error) {
	switch d {
	case database.SQLite:
		sub, err := fs.Sub(embedMigrations, "sqlite")
		return goose.DialectSQLite3, sub, err
	case database.Postgres:
		sub, err := fs.Sub(embedMigrations, "postgres")
		return goose.DialectPostgres, sub, err
	default:
		return "", nil, fmt.Errorf("нет миграций для диалекта %q", d)
	}
}

// Apply применяет все ещё не применённые миграции.
func Apply(ctx context.Context, store *database.Store, log *zap.Logger) error {
	dialect, fsys, err := dialectFS(store.Dialect)
	if err != nil {
		return apperrors.Setup("%w", err)
	}

	provider, err := goose.NewProvider(dialect, store.DB, fsys)
	if err != nil {
		return apperrors.Setup("не удалось создать провайдер миграций: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return apperrors.Setup("ошибка применения миграций: %w", err)
	}

	for _, r := range results {
		log.Info("Миграция применена",
			zap.Int64("version", r.Source.Version),
			zap.String("file", r.Source.Path),
			zap.Duration("took", r.Duration),
		)
	}
	if len(results) == 0 {
		log.Debug("Схема уже актуальна")
	}
	return nil
}
