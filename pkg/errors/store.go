package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// FromStore переводит ошибку драйвера в одну из наших категорий.
// Уже классифицированные ошибки возвращаются как есть.
func FromStore(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrSetup) || errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrConstraintViolation) || errors.Is(err, ErrIO) {
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		if liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			return &ConstraintError{Kind: sqliteConstraintKind(liteErr), Err: err}
		}
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.HasPrefix(pgErr.Code, "23") {
			return &ConstraintError{Kind: postgresConstraintKind(pgErr.Code), Err: err}
		}
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return fmt.Errorf("%w: %w", ErrIO, err)
}

func sqliteConstraintKind(e *sqlite.Error) ConstraintKind {
	switch e.Code() {
	case sqlite3.SQLITE_CONSTRAINT_CHECK:
		return ConstraintCheck
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return ConstraintForeignKey
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return ConstraintPrimaryKey
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return ConstraintUnique
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return ConstraintNotNull
	}

	// без расширенных кодов остаётся только текст движка
	msg := e.Error()
	switch {
	case strings.Contains(msg, "CHECK constraint"):
		return ConstraintCheck
	case strings.Contains(msg, "FOREIGN KEY constraint"):
		return ConstraintForeignKey
	case strings.Contains(msg, "UNIQUE constraint"):
		return ConstraintUnique
	case strings.Contains(msg, "NOT NULL constraint"):
		return ConstraintNotNull
	}
	return ConstraintOther
}

func postgresConstraintKind(code string) ConstraintKind {
	switch code {
	case "23514":
		return ConstraintCheck
	case "23503":
		return ConstraintForeignKey
	case "23505":
		return ConstraintUnique
	case "23502":
		return ConstraintNotNull
	}
	return ConstraintOther
}
