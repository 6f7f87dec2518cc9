package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/jade-forecast/generic"
	"github.com/warp/jade-forecast/generic/store"
)

func TestMemory_SaveBumpsVersion(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	// GIVEN: A saved plan
	require.NoError(t, m.SaveRecord(ctx, generic.Record{ID: "p1", Kind: "plan", Name: "summer", PayloadJSON: `{"a":1}`}))
	first, err := m.GetRecord(ctx, "plan", "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Version)

	// WHEN: Saving it again with a new payload
	require.NoError(t, m.SaveRecord(ctx, generic.Record{ID: "p1", Kind: "plan", Name: "summer", PayloadJSON: `{"a":2}`}))

	// THEN: The version goes up and the creation time is kept
	second, err := m.GetRecord(ctx, "plan", "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Version)
	assert.Equal(t, `{"a":2}`, second.PayloadJSON)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestMemory_ListByKindOrderedByName(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	require.NoError(t, m.SaveRecord(ctx, generic.Record{ID: "2", Kind: "plan", Name: "zeta"}))
	require.NoError(t, m.SaveRecord(ctx, generic.Record{ID: "1", Kind: "plan", Name: "alpha"}))
	require.NoError(t, m.SaveRecord(ctx, generic.Record{ID: "3", Kind: "other", Name: "beta"}))

	got, err := m.ListRecords(ctx, "plan")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alpha", got[0].Name)
	assert.Equal(t, "zeta", got[1].Name)
}

func TestMemory_MissingRecord(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	_, err := m.GetRecord(ctx, "plan", "nope")
	assert.True(t, generic.IsNotFound(err))

	err = m.DeleteRecord(ctx, "plan", "nope")
	assert.ErrorIs(t, err, generic.ErrRecordNotFound)
}

func TestMemory_Delete(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	require.NoError(t, m.SaveRecord(ctx, generic.Record{ID: "p1", Kind: "plan", Name: "x"}))

	require.NoError(t, m.DeleteRecord(ctx, "plan", "p1"))

	_, err := m.GetRecord(ctx, "plan", "p1")
	assert.ErrorIs(t, err, generic.ErrRecordNotFound)
}
