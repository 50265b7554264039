package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T, ttl time.Duration) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "nested", "cache.db"), ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func day(s string) time.Time {
	d, err := time.Parse(dayLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSQLiteStorage_SaveAndGet(t *testing.T) {
	store := createTestStorage(t, 0)
	ctx := context.Background()

	_, ok, err := store.GetSittingDate(ctx, day("2016-05-21"))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SaveSittingDate(ctx, day("2016-05-21"), day("2016-05-23")))

	got, ok, err := store.GetSittingDate(ctx, day("2016-05-21"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, day("2016-05-23"), got)

	// overwrite
	require.NoError(t, store.SaveSittingDate(ctx, day("2016-05-21"), day("2016-05-24")))
	got, _, err = store.GetSittingDate(ctx, day("2016-05-21"))
	require.NoError(t, err)
	assert.Equal(t, day("2016-05-24"), got)

	n, err := store.CountSittingDates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSQLiteStorage_TTL(t *testing.T) {
	store := createTestStorage(t, time.Hour)
	ctx := context.Background()

	now := time.Date(2017, 2, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.SaveSittingDate(ctx, day("2017-01-28"), day("2017-01-30")))

	_, ok, err := store.GetSittingDate(ctx, day("2017-01-28"))
	require.NoError(t, err)
	assert.True(t, ok)

	now = now.Add(2 * time.Hour)
	_, ok, err = store.GetSittingDate(ctx, day("2017-01-28"))
	require.NoError(t, err)
	assert.False(t, ok, "expired entries are treated as missing")
}

func TestSQLiteStorage_Clear(t *testing.T) {
	store := createTestStorage(t, 0)
	ctx := context.Background()

	require.NoError(t, store.SaveSittingDate(ctx, day("2016-05-21"), day("2016-05-23")))
	require.NoError(t, store.SaveSittingDate(ctx, day("2016-05-22"), day("2016-05-23")))
	require.NoError(t, store.ClearSittingDates(ctx))

	n, err := store.CountSittingDates(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSQLiteStorage_RejectsInvalidDates(t *testing.T) {
	store := createTestStorage(t, 0)
	ctx := context.Background()

	assert.ErrorIs(t, store.SaveSittingDate(ctx, time.Time{}, day("2016-05-23")), ErrInvalidDate)
	assert.ErrorIs(t, store.SaveSittingDate(ctx, day("2016-05-23"), day("2016-05-20")), ErrInvalidDate)
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage(" ", 0)
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestMigrate_Idempotent(t *testing.T) {
	store := createTestStorage(t, 0)
	ctx := context.Background()

	require.NoError(t, store.Migrate(ctx))

	var version int
	require.NoError(t, store.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
	assert.Equal(t, ExpectedSchemaVersion, version)

	var indexCount int
	require.NoError(t, store.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='index' AND name='idx_sitting_dates_cached_at'
	`).Scan(&indexCount))
	assert.Equal(t, 1, indexCount)
}
