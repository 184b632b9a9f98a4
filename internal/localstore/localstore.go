// Package localstore provides a small embedded key-value store persisted in
// SQLite. Values are opaque JSON blobs addressed by fixed string keys; a
// configurable quota bounds the size of a single value, mirroring the limits
// of browser-local storage the app is designed around.
package localstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultQuota bounds a single persisted value.
const DefaultQuota = 16 << 20 // 16 MiB

var (
	// ErrQuotaExceeded is returned when a write would exceed the value
	// quota. The previously persisted value is left untouched.
	ErrQuotaExceeded = errors.New("localstore: quota exceeded")

	ErrClosed = errors.New("localstore: store is closed")
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at INTEGER NOT NULL
);
`

type Store struct {
	db    *sql.DB
	quota int64
}

type Option func(*Store)

// WithQuota overrides the per-value size quota.
func WithQuota(quota int64) Option {
	return func(s *Store) {
		s.quota = quota
	}
}

// Open opens (creating if necessary) the store at path. Use ":memory:" for
// an ephemeral store in tests.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// A single writer keeps last-writer-wins semantics simple.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("applying pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	s := &Store{
		db:    db,
		quota: DefaultQuota,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Get returns the value stored under key, or ok=false if the key is absent.
func (s *Store) Get(ctx context.Context, key string) (value []byte, ok bool, err error) {
	if s.db == nil {
		return nil, false, ErrClosed
	}

	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	if err := row.Scan(&value); errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value. A value larger
// than the quota is rejected up front so the stored state never changes on
// failure.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if s.db == nil {
		return ErrClosed
	}
	if int64(len(value)) > s.quota {
		return fmt.Errorf("writing key %q (%d bytes): %w", key, len(value), ErrQuotaExceeded)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if s.db == nil {
		return ErrClosed
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}
