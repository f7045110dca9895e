package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFavorites(backend *memStorage) *FavoritesStore {
	return NewFavoritesStore(context.Background(), backend, zap.NewNop())
}

func TestFavorites_ToggleParity(t *testing.T) {
	f := newTestFavorites(newMemStorage())

	assert.True(t, f.Toggle(context.Background(), KindListing, 12))
	assert.True(t, f.IsFavorite(KindListing, 12))

	assert.False(t, f.Toggle(context.Background(), KindListing, 12))
	assert.False(t, f.IsFavorite(KindListing, 12))
}

func TestFavorites_KindsAreIndependent(t *testing.T) {
	f := newTestFavorites(newMemStorage())

	f.Toggle(context.Background(), KindListing, 5)

	assert.True(t, f.IsFavorite(KindListing, 5))
	assert.False(t, f.IsFavorite(KindGarage, 5))
}

func TestFavorites_CountSpansKinds(t *testing.T) {
	f := newTestFavorites(newMemStorage())

	f.Toggle(context.Background(), KindListing, 1)
	f.Toggle(context.Background(), KindListing, 2)
	f.Toggle(context.Background(), KindGarage, 1)

	assert.Equal(t, 3, f.Count())

	f.Toggle(context.Background(), KindListing, 2)
	assert.Equal(t, 2, f.Count())
}

func TestFavorites_IDsSorted(t *testing.T) {
	f := newTestFavorites(newMemStorage())

	f.Toggle(context.Background(), KindListing, 30)
	f.Toggle(context.Background(), KindListing, 10)
	f.Toggle(context.Background(), KindListing, 20)

	assert.Equal(t, []int64{10, 20, 30}, f.IDs(KindListing))
	assert.Empty(t, f.IDs(KindGarage))
}

func TestFavorites_UnknownKindIsNoOp(t *testing.T) {
	f := newTestFavorites(newMemStorage())

	assert.False(t, f.Toggle(context.Background(), Kind("bogus"), 1))
	assert.False(t, f.IsFavorite(Kind("bogus"), 1))
	assert.Nil(t, f.IDs(Kind("bogus")))
	assert.Equal(t, 0, f.Count())
}

func TestFavorites_PersistedDocumentLayout(t *testing.T) {
	backend := newMemStorage()
	f := newTestFavorites(backend)

	f.Toggle(context.Background(), KindListing, 9)
	f.Toggle(context.Background(), KindListing, 3)
	f.Toggle(context.Background(), KindGarage, 7)

	require.Contains(t, backend.data, "catalog:favorites")
	assert.JSONEq(t, `{"listings":[3,9],"garages":[7]}`, string(backend.data["catalog:favorites"]))
}

func TestFavorites_RestoresFromStorage(t *testing.T) {
	backend := newMemStorage()
	backend.data["catalog:favorites"] = []byte(`{"listings":[4,8],"garages":[2]}`)

	f := newTestFavorites(backend)

	assert.True(t, f.IsFavorite(KindListing, 4))
	assert.True(t, f.IsFavorite(KindListing, 8))
	assert.True(t, f.IsFavorite(KindGarage, 2))
	assert.Equal(t, 3, f.Count())
}

func TestFavorites_SubscriberSeesNewState(t *testing.T) {
	f := newTestFavorites(newMemStorage())

	var last FavoritesState
	f.Subscribe(func(s FavoritesState) { last = s })

	f.Toggle(context.Background(), KindGarage, 11)

	require.NotNil(t, last.Garages)
	assert.Contains(t, last.Garages, int64(11))
}
