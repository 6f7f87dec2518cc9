/*
store.go - Persistence interface for saved records

PURPOSE:
  Defines the interface between the HTTP layer and the database. The
  forecast engine itself is pure and persists nothing; what IS stored are
  user drafts (raw form values) so a plan can be re-forecast later against
  a fresh "today".

KEY INTERFACES:
  RecordStore: Save/get/list/delete opaque JSON records by kind

VERSIONING:
  Saving an existing ID replaces its payload and bumps Version.

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go: SQLite
  - generic/store/memory.go: In-memory for testing

SEE ALSO:
  - api/plans.go: Saved plan endpoints
*/
package generic

import (
	"context"
	"time"
)

// Record is a stored JSON document.
type Record struct {
	ID          string
	Kind        string // e.g., "plan"
	Name        string
	PayloadJSON string
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecordStore persists records.
type RecordStore interface {
	// SaveRecord inserts or replaces a record by ID.
	SaveRecord(ctx context.Context, r Record) error

	// GetRecord returns the record, or ErrRecordNotFound.
	GetRecord(ctx context.Context, kind, id string) (*Record, error)

	// ListRecords returns all records of a kind ordered by name.
	ListRecords(ctx context.Context, kind string) ([]Record, error)

	// DeleteRecord removes a record. Returns ErrRecordNotFound if absent.
	DeleteRecord(ctx context.Context, kind, id string) error
}
