package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

// SQLiteStore хранит значения в таблице kv файла SQLite
type SQLiteStore struct {
	conn *sql.DB
}

// OpenSQLite открывает (или создает) базу
func OpenSQLite(path string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite: %v", ErrUnavailable, err)
	}
	if _, err := conn.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: sqlite migrate: %v", ErrUnavailable, err)
	}
	return &SQLiteStore{conn: conn}, nil
}

// Close закрывает соединение
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

func (s *SQLiteStore) Get(key string) (string, bool) {
	var value string
	err := s.conn.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("[Storage] sqlite read %s: %v", key, err)
		}
		return "", false
	}
	return value, true
}

func (s *SQLiteStore) Set(key, value string) error {
	_, err := s.conn.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
