// This file implements the generic key-value sub-store. Settings persist
// their whole record under one key here; the weather and notification glue
// store their scheduled-notification IDs and last-alert dates through the
// same primitives. Values are opaque text to this layer.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/pottingshed/gardenlog/pkg/types"
)

// GetValue returns the stored value for key, or ErrNotFound.
func (s *Store) GetValue(key string) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	var value string
	err = db.QueryRow("SELECT value FROM kv_store WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", types.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("getting key %s: %w", key, err)
	}
	return value, nil
}

// SetValue stores value under key, overwriting any existing value. Upsert
// semantics: no separate existence check is needed or performed.
func (s *Store) SetValue(key, value string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.Exec(
		"INSERT INTO kv_store (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	); err != nil {
		return fmt.Errorf("setting key %s: %w", key, err)
	}
	return nil
}

// DeleteValue removes key. No-op if the key is absent.
func (s *Store) DeleteValue(key string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM kv_store WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting key %s: %w", key, err)
	}
	return nil
}
