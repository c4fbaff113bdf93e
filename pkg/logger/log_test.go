package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := NewLogger("debug", path)
	require.NoError(t, err)
	log.Info("seed finished")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "seed finished")
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, err := NewLogger("loud", "")
	assert.Error(t, err)
}
