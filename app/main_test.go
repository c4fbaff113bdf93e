package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"supermaids/internal/entities"
	"supermaids/internal/testutil"
	"supermaids/pkg/config"
	"supermaids/pkg/database"
	apperrors "supermaids/pkg/errors"
)

func setupEnv(t *testing.T) (dbPath, xlsxPath string) {
	t.Helper()
	dir := t.TempDir()
	dbPath = filepath.Join(dir, "supermaids.db")
	xlsxPath = filepath.Join(dir, "supermaids.xlsx")
	t.Setenv("DB_DRIVER", config.DriverSQLite)
	t.Setenv("SQLITE_PATH", dbPath)
	t.Setenv("REPORT_XLSX_PATH", xlsxPath)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FILE", "")
	return dbPath, xlsxPath
}

func openStore(t *testing.T, path string) *database.Store {
	t.Helper()
	store, err := database.Open(context.Background(), config.DatabaseConfig{Driver: config.DriverSQLite, Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRun_FullPipeline(t *testing.T) {
	dbPath, xlsxPath := setupEnv(t)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), &stdout, &stderr)
	require.Equal(t, apperrors.ExitOK, code, stderr.String())

	out := stdout.String()
	for _, want := range []string{
		"SUPERMAIDS CLEANING COMPANY - DATABASE IMPLEMENTATION",
		"Sample data inserted",
		"1. Add a new client to the system",
		"   Added client 1007: Lisa Garcia",
		"   Added service requirement 2007 for client 1007",
		"   Assigned employee 5002 to requirement 2007",
		"4. Retrieve service requirements for client 1001",
		"5. Retrieve all service requirements assigned to employee 5001",
		"All Table Contents",
		"PROJECT PART 3 COMPLETED SUCCESSFULLY!",
	} {
		assert.Contains(t, out, want)
	}
	for _, table := range entities.Tables {
		assert.Contains(t, out, "\n"+table+":\n")
	}
	// разделы идут в порядке конвейера
	assert.Less(t, strings.Index(out, "Sample data inserted"), strings.Index(out, "1. Add a new client"))
	assert.Less(t, strings.Index(out, "5. Retrieve"), strings.Index(out, "All Table Contents"))
	assert.Less(t, strings.Index(out, "Requirement_Equipment:"), strings.Index(out, "PROJECT PART 3"))

	store := openStore(t, dbPath)
	assert.Equal(t, 7, testutil.Count(t, store, entities.TableClient))
	assert.Equal(t, 6, testutil.Count(t, store, entities.TableEmployee))
	assert.Equal(t, 7, testutil.Count(t, store, entities.TableServiceRequirement))
	assert.Equal(t, 6, testutil.Count(t, store, entities.TableEquipment))
	assert.Equal(t, 8, testutil.Count(t, store, entities.TableAssignment))
	assert.Equal(t, 7, testutil.Count(t, store, entities.TableRequirementEquipment))

	f, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, entities.Tables, f.GetSheetList())
}

func TestRun_SecondRunOnSameFile(t *testing.T) {
	dbPath, _ := setupEnv(t)

	var first bytes.Buffer
	require.Equal(t, apperrors.ExitOK, run(context.Background(), &first, &bytes.Buffer{}))

	// повторный запуск пересевает данные, поэтому вставки запросов 1-3 не конфликтуют
	var second, stderr bytes.Buffer
	require.Equal(t, apperrors.ExitOK, run(context.Background(), &second, &stderr), stderr.String())
	assert.Equal(t, first.String(), second.String())

	store := openStore(t, dbPath)
	assert.Equal(t, 7, testutil.Count(t, store, entities.TableClient))
	assert.Equal(t, 8, testutil.Count(t, store, entities.TableAssignment))
}

func TestRun_QueryOutputTables(t *testing.T) {
	setupEnv(t)
	t.Setenv("REPORT_XLSX_PATH", "")

	var stdout bytes.Buffer
	require.Equal(t, apperrors.ExitOK, run(context.Background(), &stdout, &bytes.Buffer{}))

	out := stdout.String()
	q4 := out[strings.Index(out, "4. Retrieve"):strings.Index(out, "5. Retrieve")]
	assert.Contains(t, q4, "requirementId")
	assert.Contains(t, q4, "2001")
	assert.Contains(t, q4, "Evening cleaning")
	assert.NotContains(t, q4, "2003")

	q5 := out[strings.Index(out, "5. Retrieve"):strings.Index(out, "All Table Contents")]
	assert.Contains(t, q5, "firstName")
	assert.Contains(t, q5, "2006")
	assert.Contains(t, q5, "Doe")
	assert.NotContains(t, q5, "2002")
}

func TestRun_SetupFailures(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		setupEnv(t)
		t.Setenv("DB_DRIVER", "oracle")

		var stdout, stderr bytes.Buffer
		assert.Equal(t, apperrors.ExitSetup, run(context.Background(), &stdout, &stderr))
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "supermaids:")
	})

	t.Run("unreachable database file", func(t *testing.T) {
		setupEnv(t)
		t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "missing", "dir", "supermaids.db"))

		var stdout, stderr bytes.Buffer
		assert.Equal(t, apperrors.ExitSetup, run(context.Background(), &stdout, &stderr))
		assert.NotContains(t, stdout.String(), "Sample data inserted")
	})
}
