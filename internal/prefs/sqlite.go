package prefs

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/model"
)

// SQLite is a Store backed by an embedded sqlite database.
type SQLite struct {
	db *sql.DB
}

// Open opens (creating if needed) the preference database at path. Use
// ":memory:" for an ephemeral database.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open preference db: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS preferences (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init preference db: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Theme() (model.Theme, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, ThemeKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return model.NormalizeTheme(value), true, nil
}

func (s *SQLite) SaveTheme(t model.Theme) error {
	_, err := s.db.Exec(
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		ThemeKey, string(t),
	)
	return err
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
