// Package prefs persists user preferences in a sqlite key/value table.
package prefs

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Preference keys.
const (
	KeyCipherKeyMask = "CipherKeyMask"
	KeyPRNGSeedMask  = "PRNGSeedMask"
	KeyConfirmExit   = "ConfirmExit"
	KeyBrute         = "Brute"
)

// defaults are seeded the first time a store is created.
var defaults = [][2]string{
	{KeyCipherKeyMask, "*"},
	{KeyPRNGSeedMask, "*"},
	{KeyConfirmExit, "1"},
	{KeyBrute, "0"},
}

// Store is a sqlite-backed preference store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the preferences database at path and seeds the
// defaults on first run. Existing values are never overwritten.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open preferences: %w", err)
	}
	// Create fails when the table already exists; only a fresh table is
	// seeded.
	if _, err := db.Exec(`CREATE TABLE prefs(k TEXT PRIMARY KEY, v TEXT NOT NULL)`); err == nil {
		for _, kv := range defaults {
			if _, err := db.Exec(`INSERT INTO prefs(k, v) VALUES(?, ?)`, kv[0], kv[1]); err != nil {
				db.Close()
				return nil, fmt.Errorf("seed preferences: %w", err)
			}
		}
	}
	return &Store{db: db}, nil
}

// Get returns the stored value for key.
func (s *Store) Get(key string) (string, error) {
	var v string
	if err := s.db.QueryRow(`SELECT v FROM prefs WHERE k = ?`, key).Scan(&v); err != nil {
		return "", fmt.Errorf("get %q: %w", key, err)
	}
	return v, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO prefs(k, v) VALUES(?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// All returns every stored preference.
func (s *Store) All() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT k, v FROM prefs`)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("list preferences: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
