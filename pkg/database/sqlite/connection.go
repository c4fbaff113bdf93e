package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DSN добавляет к пути прагмы, которые должны действовать на каждом соединении.
// Без foreign_keys(1) SQLite молча пропускает ссылки на несуществующие строки.
func DSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
}

// ConnectDB открывает (или создаёт) файл базы и проверяет соединение.
func ConnectDB(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия SQLite %s: %w", path, err)
	}
	// один сеанс на весь процесс
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("не удалось пинговать SQLite %s: %w", path, err)
	}
	return db, nil
}
