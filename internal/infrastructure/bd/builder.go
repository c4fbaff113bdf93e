package db

import (
	sq "github.com/Masterminds/squirrel"

	"supermaids/pkg/database"
)

// StatementBuilder возвращает squirrel-билдер с плейсхолдерами нужного диалекта:
// "?" для SQLite, "$N" для PostgreSQL.
func StatementBuilder(d database.Dialect) sq.StatementBuilderType {
	if d == database.Postgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
