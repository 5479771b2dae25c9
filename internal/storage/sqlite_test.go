package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte(`[["A","B"]]`)))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[["A","B"]]`), got)
}

func TestSQLiteStoreMissingKey(t *testing.T) {
	store := createTestStore(t)

	got, err := store.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, got, "absent keys are not an error")
}

func TestSQLiteStoreOverwrite(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("first")))
	require.NoError(t, store.Set(ctx, "k", []byte("second")))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestSQLiteStoreValidation(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "")
	assert.Error(t, err)
	assert.Error(t, store.Set(ctx, "", []byte("x")))
	assert.Error(t, store.Set(ctx, "k", nil))
}

func TestSQLiteStoreCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "test.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Set(context.Background(), "k", []byte("v")))
}

func TestKeyedStore(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	keyed := store.Keyed(CategoryMemoryKey)

	got, err := keyed.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, keyed.Save(ctx, []byte(`[["TESCO","Groceries"]]`)))

	got, err = keyed.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[["TESCO","Groceries"]]`), got)
}
