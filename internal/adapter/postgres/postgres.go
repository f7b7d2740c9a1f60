// Package postgres implements the blob store using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"weightledger/internal/domain"

	_ "github.com/lib/pq"
)

// Store keeps each blob as one row in a blobs table. Put upserts, which
// makes this the only variant with an atomic replace.
type Store struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and creates the blobs table.
func Open(connStr string) (*Store, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	st := &Store{sql: s}
	if err := st.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return st, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.sql.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	stmt := `CREATE TABLE IF NOT EXISTS blobs (
		key TEXT PRIMARY KEY,
		body BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);`
	if _, err := s.sql.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

var _ domain.BlobStore = (*Store)(nil)

// Get returns the blob body stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var body []byte
	err := s.sql.QueryRowContext(ctx,
		"SELECT body FROM blobs WHERE key = $1", key,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", key, domain.ErrBlobNotFound)
	}
	if err != nil {
		return nil, err
	}
	return body, nil
}

// Put upserts the blob body under key.
func (s *Store) Put(ctx context.Context, key string, body []byte) error {
	_, err := s.sql.ExecContext(ctx,
		`INSERT INTO blobs (key, body, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`,
		key, body, time.Now(),
	)
	return err
}
