package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moto-tn/catalog-service/internal/port/storage"
)

func TestStorage_RoundTrip(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), "catalog:favorites", []byte(`{"listings":[1]}`)))

	data, err := s.Load(context.Background(), "catalog:favorites")
	require.NoError(t, err)
	assert.JSONEq(t, `{"listings":[1]}`, string(data))
}

func TestStorage_LoadMissingKey(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Load(context.Background(), "catalog:favorites")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_SaveOverwrites(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), "k", []byte(`1`)))
	require.NoError(t, s.Save(context.Background(), "k", []byte(`2`)))

	data, err := s.Load(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`2`), data)
}

func TestStorage_KeyMapsToFlatFilename(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStorage(dir)
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), "catalog:ads", []byte(`[]`)))

	_, err = os.Stat(filepath.Join(dir, "catalog_ads.json"))
	assert.NoError(t, err)
}

func TestNewStorage_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := NewStorage(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
