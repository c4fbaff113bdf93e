package tablefmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Empty(t *testing.T) {
	assert.Equal(t, "", New().Render())
}

func TestTable_HeaderOnly(t *testing.T) {
	got := New("requirementId", "comments").Render()
	assert.Equal(t, "requirementId comments\n", got)
}

func TestTable_RightAligned(t *testing.T) {
	tbl := New("requirementId", "duration", "comments")
	tbl.AddRow(int64(2001), 120, null.StringFrom("Morning cleaning"))
	tbl.AddRow(int64(2002), 90, null.String{})

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "requirementId duration         comments", lines[0])
	assert.Equal(t, "         2001      120 Morning cleaning", lines[1])
	assert.Equal(t, "         2002       90             NULL", lines[2])

	for _, line := range lines[1:] {
		assert.Equal(t, len(lines[0]), len(line), "все строки одной ширины")
	}
}

func TestTable_WriteTo(t *testing.T) {
	tbl := New("staffNumber", "requirementId")
	tbl.AddRow(int64(5001), int64(2001))

	var buf bytes.Buffer
	n, err := tbl.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Contains(t, buf.String(), "5001")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "NULL", FormatValue(nil))
	assert.Equal(t, "45000.00", FormatValue(45000.0))
	assert.Equal(t, "1200.50", FormatValue(1200.5))
	assert.Equal(t, "02101", FormatValue([]byte("02101")))
	assert.Equal(t, "7", FormatValue(int64(7)))
	assert.Equal(t, "Boston", FormatValue(null.StringFrom("Boston")))
}
