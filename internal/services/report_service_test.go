package services

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"supermaids/internal/entities"
)

func TestReportService_Snapshots(t *testing.T) {
	_, repos := seededStore(t)
	svc := NewReportService(repos.Tables, zap.NewNop())

	snaps, err := svc.Snapshots(context.Background())
	require.NoError(t, err)
	require.Len(t, snaps, len(entities.Tables))

	for i, snap := range snaps {
		assert.Equal(t, entities.Tables[i], snap.Name)
	}
	assert.Equal(t, []string{"clientNumber", "firstName", "lastName", "street", "city", "postCode", "telephoneNumber"}, snaps[0].Columns)
	assert.Len(t, snaps[0].Rows, 6)
	assert.Equal(t, []string{"requirementId", "equipmentId", "quantity"}, snaps[5].Columns)
	assert.Len(t, snaps[5].Rows, 7)
}

func TestReportService_SnapshotTableRendering(t *testing.T) {
	_, repos := seededStore(t)
	svc := NewReportService(repos.Tables, zap.NewNop())

	snaps, err := svc.Snapshots(context.Background())
	require.NoError(t, err)

	// Employee: заголовок + 6 строк, зарплаты с двумя знаками
	out := SnapshotTable(snaps[1]).Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "staffNumber")
	assert.Contains(t, out, "45000.00")
	assert.Contains(t, out, "Wilson")
}

func TestReportService_ExportXLSX(t *testing.T) {
	_, repos := seededStore(t)
	svc := NewReportService(repos.Tables, zap.NewNop())

	snaps, err := svc.Snapshots(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "supermaids.xlsx")
	require.NoError(t, svc.ExportXLSX(snaps, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, entities.Tables, f.GetSheetList())

	rows, err := f.GetRows(entities.TableAssignment)
	require.NoError(t, err)
	require.Len(t, rows, 8)
	assert.Equal(t, []string{"staffNumber", "requirementId"}, rows[0])

	clients, err := f.GetRows(entities.TableClient)
	require.NoError(t, err)
	var names []string
	for _, r := range clients[1:] {
		names = append(names, r[1]+" "+r[2])
	}
	assert.Contains(t, names, "John Doe")
}
