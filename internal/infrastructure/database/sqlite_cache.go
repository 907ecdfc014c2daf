// Package database provides the local SQLite file backing the entity
// stores' blob cache. It is a best-effort cache, not a source of truth:
// the stores keep running on in-memory state when it misbehaves.
package database

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"

	"github.com/linneanarhi/internal-dashboard/internal/adapter/persistence/store"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteCache is a key/value blob cache on a local SQLite file.
type SQLiteCache struct {
	db  *sql.DB
	log *slog.Logger
}

var _ store.BlobCache = (*SQLiteCache)(nil)

// Open creates or opens the cache database at the given path and
// applies pragmas and the schema. Idempotent.
func Open(path string, log *slog.Logger) (*SQLiteCache, error) {
	if log == nil {
		log = slog.Default()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to cache database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent store mutations.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply cache schema: %w", err)
	}

	return &SQLiteCache{db: db, log: log}, nil
}

// Load returns the blob stored under key. Read errors are logged and
// reported as a miss so callers degrade to an empty collection.
func (c *SQLiteCache) Load(key string) ([]byte, bool) {
	var blob []byte
	err := c.db.QueryRow(`SELECT value FROM blobs WHERE key = ?`, key).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		c.log.Warn("cache read failed", "key", key, "error", err)
		return nil, false
	}
	return blob, true
}

// Store writes the blob under key, replacing any previous value.
func (c *SQLiteCache) Store(key string, blob []byte) error {
	_, err := c.db.Exec(`
		INSERT INTO blobs (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, blob)
	return err
}

// Close closes the underlying database.
func (c *SQLiteCache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
