// Package storage provides the persistent key-value blob store backing the
// category memory. The application treats persistence as an opaque store of
// JSON blobs under fixed keys; a single-table SQLite database serves that.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/finsift/finsift/internal/common"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// CategoryMemoryKey is the fixed, versionless key the category memory blob
// lives under.
const CategoryMemoryKey = "category-memory"

// SQLiteStore implements a key-value blob store on SQLite.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (creating if needed) the blob store at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db, dbPath: dbPath}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS blobs (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create blobs table: %w", err)
	}
	return nil
}

// Get returns the blob stored under key, or (nil, nil) when absent.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(key, "key"); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM blobs WHERE key = ?
	`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blob %q: %w", key, err)
	}
	return value, nil
}

// Set writes the blob under key, replacing any previous value.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}
	if value == nil {
		return common.NewUserError("cannot store a nil blob", nil)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blobs (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set blob %q: %w", key, err)
	}
	return nil
}

// Keyed returns a view of the store bound to a single key, satisfying the
// memory.Store interface.
func (s *SQLiteStore) Keyed(key string) *KeyedStore {
	return &KeyedStore{store: s, key: key}
}

// KeyedStore binds a SQLiteStore to one fixed key.
type KeyedStore struct {
	store *SQLiteStore
	key   string
}

// Load reads the bound blob; nil when nothing has been stored yet.
func (k *KeyedStore) Load(ctx context.Context) ([]byte, error) {
	return k.store.Get(ctx, k.key)
}

// Save writes the bound blob.
func (k *KeyedStore) Save(ctx context.Context, data []byte) error {
	return k.store.Set(ctx, k.key, data)
}
