package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supermaids/pkg/config"
	apperrors "supermaids/pkg/errors"
)

func TestOpen_SQLiteEnablesForeignKeys(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "supermaids.db"),
	})
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, SQLite, store.Dialect)

	var enabled int
	require.NoError(t, store.DB.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.DatabaseConfig{Driver: "oracle"})
	assert.ErrorIs(t, err, apperrors.ErrSetup)
}
