package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// MySQLKV persists blobs in a single app_state table:
//
//	CREATE TABLE IF NOT EXISTS app_state (
//	    k VARCHAR(191) PRIMARY KEY,
//	    v MEDIUMTEXT NOT NULL,
//	    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
//	)
//
// Each Set is an upsert, so concurrent writers follow the same
// last-write-wins semantics as the Redis backend.
type MySQLKV struct {
	db *sql.DB
}

// NewMySQLKV returns a MySQLKV bound to the given database and ensures the
// backing table exists.
func NewMySQLKV(ctx context.Context, db *sql.DB) (*MySQLKV, error) {
	if db == nil {
		panic("nil db passed to NewMySQLKV")
	}
	const ddl = `CREATE TABLE IF NOT EXISTS app_state (
        k VARCHAR(191) PRIMARY KEY,
        v MEDIUMTEXT NOT NULL,
        updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
    )`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("create app_state table: %w", err)
	}
	return &MySQLKV{db: db}, nil
}

// Get returns the blob stored under key.  sql.ErrNoRows maps to
// ErrKeyNotFound.
func (s *MySQLKV) Get(ctx context.Context, key string) (string, error) {
	const q = `SELECT v FROM app_state WHERE k = ?`
	var val string
	err := s.db.QueryRowContext(ctx, q, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("mysql get %s: %w", key, err)
	}
	return val, nil
}

// Set upserts the blob under key.
func (s *MySQLKV) Set(ctx context.Context, key, value string) error {
	const q = `INSERT INTO app_state (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)`
	if _, err := s.db.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("mysql set %s: %w", key, err)
	}
	return nil
}
