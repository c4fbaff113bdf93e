// Package tablefmt печатает результат выборки как текстовую таблицу:
// строка заголовков, затем строки данных, все ячейки выровнены вправо, без колонки индекса.
package tablefmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/mattn/go-runewidth"
)

const NullText = "NULL"

type Table struct {
	Columns []string
	Rows    [][]string
}

func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// AddRow добавляет строку; значения приводятся к тексту через FormatValue.
func (t *Table) AddRow(values ...interface{}) {
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = FormatValue(v)
	}
	t.Rows = append(t.Rows, row)
}

// Render возвращает таблицу целиком. Пустая таблица без колонок даёт пустую строку.
func (t *Table) Render() string {
	if len(t.Columns) == 0 {
		return ""
	}

	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = runewidth.StringWidth(c)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeLine(&b, t.Columns, widths)
	for _, row := range t.Rows {
		writeLine(&b, row, widths)
	}
	return b.String()
}

// WriteTo печатает таблицу в w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.Render())
	return int64(n), err
}

func writeLine(b *strings.Builder, cells []string, widths []int) {
	for i, width := range widths {
		if i > 0 {
			b.WriteByte(' ')
		}
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(runewidth.FillLeft(cell, width))
	}
	b.WriteByte('\n')
}

// FormatValue приводит значение, прочитанное из базы, к тексту ячейки.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return NullText
	case string:
		return val
	case []byte:
		return string(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', 2, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', 2, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339)
	case null.String:
		if !val.Valid {
			return NullText
		}
		return val.String
	default:
		return fmt.Sprint(val)
	}
}
