package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"supermaids/internal/entities"
	"supermaids/pkg/database"
	apperrors "supermaids/pkg/errors"
)

type TableRepositoryInterface interface {
	// Snapshot читает все строки и колонки таблицы (SELECT *).
	Snapshot(ctx context.Context, tx *sql.Tx, table string) (*entities.TableSnapshot, error)
	Count(ctx context.Context, tx *sql.Tx, table string) (uint64, error)
}

type tableRepository struct {
	baseRepository
}

func NewTableRepository(store *database.Store) TableRepositoryInterface {
	return &tableRepository{baseRepository: newBase(store)}
}

func (r *tableRepository) Snapshot(ctx context.Context, tx *sql.Tx, table string) (*entities.TableSnapshot, error) {
	if !isKnownTable(table) {
		return nil, fmt.Errorf("%w: неизвестная таблица %q", apperrors.ErrIO, table)
	}

	query, args, err := r.psql.Select("*").From(table).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для Snapshot: %w", err)
	}

	rows, err := r.getQuerier(tx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения таблицы %s: %w", table, apperrors.FromStore(err))
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения колонок %s: %w", table, apperrors.FromStore(err))
	}

	snapshot := &entities.TableSnapshot{Name: table, Columns: columns, Rows: make([][]interface{}, 0)}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки %s: %w", table, err)
		}
		snapshot.Rows = append(snapshot.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.FromStore(err)
	}
	return snapshot, nil
}

func (r *tableRepository) Count(ctx context.Context, tx *sql.Tx, table string) (uint64, error) {
	if !isKnownTable(table) {
		return 0, fmt.Errorf("%w: неизвестная таблица %q", apperrors.ErrIO, table)
	}

	query, args, err := r.psql.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки COUNT-запроса: %w", err)
	}

	var total uint64
	if err := r.getQuerier(tx).QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("ошибка выполнения COUNT-запроса: %w", apperrors.FromStore(err))
	}
	return total, nil
}
