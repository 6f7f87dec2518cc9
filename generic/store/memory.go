// Package store provides RecordStore implementations.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/warp/jade-forecast/generic"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu      sync.RWMutex
	records map[key]generic.Record
	now     func() time.Time
}

type key struct {
	Kind string
	ID   string
}

func NewMemory() *Memory {
	return &Memory{
		records: make(map[key]generic.Record),
		now:     time.Now,
	}
}

// SaveRecord inserts or replaces a record, bumping its version.
func (m *Memory) SaveRecord(_ context.Context, r generic.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key{Kind: r.Kind, ID: r.ID}
	now := m.now().UTC()
	if existing, ok := m.records[k]; ok {
		r.Version = existing.Version + 1
		r.CreatedAt = existing.CreatedAt
	} else {
		r.Version = 1
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	m.records[k] = r
	return nil
}

func (m *Memory) GetRecord(_ context.Context, kind, id string) (*generic.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.records[key{Kind: kind, ID: id}]
	if !ok {
		return nil, generic.ErrRecordNotFound
	}
	return &r, nil
}

func (m *Memory) ListRecords(_ context.Context, kind string) ([]generic.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []generic.Record
	for k, r := range m.records {
		if k.Kind == kind {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *Memory) DeleteRecord(_ context.Context, kind, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key{Kind: kind, ID: id}
	if _, ok := m.records[k]; !ok {
		return generic.ErrRecordNotFound
	}
	delete(m.records, k)
	return nil
}

// Compile-time check
var _ generic.RecordStore = (*Memory)(nil)
