/*
Package sqlite provides a SQLite-backed implementation of generic.RecordStore.

PURPOSE:
  Persists saved forecast plans. A plan is the raw form draft (JSON), never
  a computed result: results depend on "today" and are recomputed on
  every read.

KEY TABLES:
  records: One row per (kind, id). payload_json holds the draft.

VERSIONING:
  Saving an existing (kind, id) replaces the payload and increments
  version. created_at is kept from the first save.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety on top of SQLite's own locking.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) so readers don't block
  the single writer.

USAGE:
  store, err := sqlite.New("./data/forecast.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New().

SEE ALSO:
  - generic/store.go: Interface definition
  - generic/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/jade-forecast/generic"
)

// Store implements generic.RecordStore using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbPath == ":memory:" {
		// Every pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		kind TEXT NOT NULL,
		id TEXT NOT NULL,
		name TEXT NOT NULL,
		payload_json TEXT NOT NULL,
		version INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (kind, id)
	);

	CREATE INDEX IF NOT EXISTS idx_records_kind_name
		ON records(kind, name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// RECORDS
// =============================================================================

// SaveRecord inserts a record or replaces its payload, bumping the version.
func (s *Store) SaveRecord(ctx context.Context, r generic.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO records (kind, id, name, payload_json, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, 1, ?, ?)
		ON CONFLICT(kind, id) DO UPDATE SET
			name = excluded.name,
			payload_json = excluded.payload_json,
			version = records.version + 1,
			updated_at = excluded.updated_at
	`

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, query, r.Kind, r.ID, r.Name, r.PayloadJSON, now, now)
	if err != nil {
		return fmt.Errorf("save %s %s: %w", r.Kind, r.ID, err)
	}
	return nil
}

// GetRecord retrieves a record by kind and ID.
func (s *Store) GetRecord(ctx context.Context, kind, id string) (*generic.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT kind, id, name, payload_json, version, created_at, updated_at FROM records WHERE kind = ? AND id = ?",
		kind, id,
	)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, generic.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListRecords returns all records of a kind ordered by name.
func (s *Store) ListRecords(ctx context.Context, kind string) ([]generic.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT kind, id, name, payload_json, version, created_at, updated_at FROM records WHERE kind = ? ORDER BY name, id",
		kind,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []generic.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// DeleteRecord removes a record.
func (s *Store) DeleteRecord(ctx context.Context, kind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE kind = ? AND id = ?", kind, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return generic.ErrRecordNotFound
	}
	return nil
}

// Reset deletes every record. Used by tests.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM records")
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (generic.Record, error) {
	var r generic.Record
	var createdAt, updatedAt string
	if err := sc.Scan(&r.Kind, &r.ID, &r.Name, &r.PayloadJSON, &r.Version, &createdAt, &updatedAt); err != nil {
		return generic.Record{}, err
	}
	r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	r.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return r, nil
}

// Compile-time check
var _ generic.RecordStore = (*Store)(nil)
