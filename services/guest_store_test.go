package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"wedding_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileGuestStoreInitializesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guests.json")
	store := &FileGuestStore{Path: path}

	guests, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, guests)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFileGuestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guests.json")
	store := &FileGuestStore{Path: path}
	ctx := context.Background()

	in := []models.Guest{
		{ID: 1, Name: "Ann", Email: "ann@x.com", Address1: "1 Rd", City: "X", State: "CA", Zip: "90210", CreatedAt: "2026-01-01T00:00:00Z"},
		{ID: 2, Name: "Bob", Email: "bob@x.com", UpdatedAt: "2026-02-01T00:00:00Z"},
	}
	require.NoError(t, store.Save(ctx, in))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFileGuestStoreWritesPrettyPrintedArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guests.json")
	store := &FileGuestStore{Path: path}

	require.NoError(t, store.Save(context.Background(), []models.Guest{{ID: 1, Name: "Ann"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {")
	assert.Contains(t, string(data), `"id": 1`)
}

func TestFileGuestStoreSaveNilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guests.json")
	store := &FileGuestStore{Path: path}

	require.NoError(t, store.Save(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFileGuestStorePropagatesParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guests.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	store := &FileGuestStore{Path: path}

	_, err := store.Load(context.Background())
	assert.Error(t, err)
}
