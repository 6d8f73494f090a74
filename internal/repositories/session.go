package repositories

import (
	"database/sql"
	"fmt"
	"time"
)

// SessionEntry is a single persisted key/value pair.
type SessionEntry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// SessionRepository persists session entries in the session_entries table.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new [SessionRepository] with the given database connection
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Get returns the value stored under key. The boolean is false when the key is absent.
func (r *SessionRepository) Get(key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM session_entries WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query session entry: %w", err)
	}
	return value, true, nil
}

// All returns every stored entry ordered by key.
func (r *SessionRepository) All() ([]SessionEntry, error) {
	rows, err := r.db.Query("SELECT key, value, updated_at FROM session_entries ORDER BY key ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query session entries: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		if err := rows.Scan(&e.Key, &e.Value, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return entries, nil
}

// SetMany upserts all entries in a single transaction.
func (r *SessionRepository) SetMany(values map[string]string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO session_entries (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	now := time.Now()
	for k, v := range values {
		if _, err := tx.Exec(query, k, v, now); err != nil {
			return fmt.Errorf("failed to upsert session entry %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session entries: %w", err)
	}
	return nil
}

// Set upserts a single entry.
func (r *SessionRepository) Set(key, value string) error {
	return r.SetMany(map[string]string{key: value})
}

// Delete removes the given keys. Missing keys are not an error.
func (r *SessionRepository) Delete(keys ...string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, k := range keys {
		if _, err := tx.Exec("DELETE FROM session_entries WHERE key = ?", k); err != nil {
			return fmt.Errorf("failed to delete session entry %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session delete: %w", err)
	}
	return nil
}
