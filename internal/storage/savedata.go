package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a key has no stored data.
var ErrNotFound = errors.New("storage: not found")

// Put stores data under key, replacing any previous value.
func (s *Store) Put(key string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO save_data (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %q: %w", key, err)
	}
	return nil
}

// Get loads the data stored under key. Returns ErrNotFound if there is none.
func (s *Store) Get(key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM save_data WHERE key = ?", key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load %q: %w", key, err)
	}
	return data, nil
}

// Delete removes the data stored under key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM save_data WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", key, err)
	}
	return nil
}
