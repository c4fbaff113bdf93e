// Package testutil собирает временное хранилище для тестов других пакетов.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"supermaids/internal/migrations"
	"supermaids/pkg/config"
	"supermaids/pkg/database"
)

// NewStore открывает SQLite во временном каталоге теста и применяет схему.
func NewStore(t *testing.T) *database.Store {
	t.Helper()
	store, err := database.Open(context.Background(), config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "supermaids.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, migrations.Apply(context.Background(), store, zap.NewNop()))
	return store
}

// Count возвращает число строк в таблице.
func Count(t *testing.T, store *database.Store, table string) int {
	t.Helper()
	var n int
	require.NoError(t, store.DB.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
