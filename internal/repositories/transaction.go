package repositories

import (
	"context"
	"database/sql"
)

type TxManagerInterface interface {
	RunInTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error
}

type TxManager struct {
	db *sql.DB
}

func NewTxManager(db *sql.DB) TxManagerInterface {
	return &TxManager{db: db}
}

// RunInTransaction выполняет функцию `fn` в рамках одной транзакции.
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return WithTx(ctx, m.db, fn)
}
