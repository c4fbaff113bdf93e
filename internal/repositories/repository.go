package repositories

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"supermaids/internal/entities"
	db "supermaids/internal/infrastructure/bd"
	"supermaids/pkg/database"
	apperrors "supermaids/pkg/errors"
)

// baseRepository - общее для всех репозиториев: соединение и билдер нужного диалекта.
type baseRepository struct {
	storage *sql.DB
	psql    sq.StatementBuilderType
}

func newBase(store *database.Store) baseRepository {
	return baseRepository{storage: store.DB, psql: db.StatementBuilder(store.Dialect)}
}

// getQuerier - возвращает транзакцию или соединение
func (r baseRepository) getQuerier(tx *sql.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

func (r baseRepository) exec(ctx context.Context, tx *sql.Tx, builder sq.Sqlizer, what string) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки SQL (%s): %w", what, err)
	}
	if _, err := r.getQuerier(tx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", what, apperrors.FromStore(err))
	}
	return nil
}

// deleteAll очищает таблицу целиком. Имя проверяется по белому списку.
func (r baseRepository) deleteAll(ctx context.Context, tx *sql.Tx, table string) error {
	if !isKnownTable(table) {
		return fmt.Errorf("%w: неизвестная таблица %q", apperrors.ErrIO, table)
	}
	return r.exec(ctx, tx, r.psql.Delete(table), "очистка таблицы "+table)
}

func isKnownTable(table string) bool {
	for _, t := range entities.Tables {
		if t == table {
			return true
		}
	}
	return false
}
