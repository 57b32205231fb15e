// Package storage persists series documents and their derived analytics
// bundles. The primary backend is a local SQLite file; a Redis backend
// (redis.go) covers deployments where bundles live in a shared cache. Both
// store bundles as JSON documents keyed by series ID.
package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"

	"scoutahead/internal/model"
)

//go:embed schema.sql
var schemaSQL string

// DB wraps a sql.DB for the scouting store.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database at the given path and applies
// the schema.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// BundleWriter is the keyed put both backends implement.
type BundleWriter interface {
	PutBundle(ctx context.Context, bundle *model.SeriesAnalytics) error
}

// TeeStore writes a bundle to every backend, stopping at the first failure.
type TeeStore []BundleWriter

// PutBundle implements BundleWriter over all members.
func (t TeeStore) PutBundle(ctx context.Context, bundle *model.SeriesAnalytics) error {
	for _, w := range t {
		if err := w.PutBundle(ctx, bundle); err != nil {
			return err
		}
	}
	return nil
}
