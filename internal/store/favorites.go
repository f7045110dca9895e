package store

import (
	"context"
	"encoding/json"
	"sort"

	"go.uber.org/zap"

	"github.com/moto-tn/catalog-service/internal/port/storage"
)

// Kind identifies which catalog entity a favorite points at.
type Kind string

const (
	KindListing Kind = "listing"
	KindGarage  Kind = "garage"
)

const favoritesKey = "catalog:favorites"

// FavoritesState is the favorites document: one id set per entity kind.
// It persists as {"listings":[...],"garages":[...]} with sorted id arrays.
type FavoritesState struct {
	Listings map[int64]struct{}
	Garages  map[int64]struct{}
}

type favoritesDocument struct {
	Listings []int64 `json:"listings"`
	Garages  []int64 `json:"garages"`
}

func (s FavoritesState) MarshalJSON() ([]byte, error) {
	return json.Marshal(favoritesDocument{
		Listings: sortedIDs(s.Listings),
		Garages:  sortedIDs(s.Garages),
	})
}

func (s *FavoritesState) UnmarshalJSON(data []byte) error {
	var doc favoritesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	s.Listings = make(map[int64]struct{}, len(doc.Listings))
	for _, id := range doc.Listings {
		s.Listings[id] = struct{}{}
	}
	s.Garages = make(map[int64]struct{}, len(doc.Garages))
	for _, id := range doc.Garages {
		s.Garages[id] = struct{}{}
	}
	return nil
}

func sortedIDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func emptyFavorites() FavoritesState {
	return FavoritesState{
		Listings: make(map[int64]struct{}),
		Garages:  make(map[int64]struct{}),
	}
}

func (s FavoritesState) clone() FavoritesState {
	out := emptyFavorites()
	for id := range s.Listings {
		out.Listings[id] = struct{}{}
	}
	for id := range s.Garages {
		out.Garages[id] = struct{}{}
	}
	return out
}

func (s FavoritesState) set(kind Kind) map[int64]struct{} {
	switch kind {
	case KindListing:
		return s.Listings
	case KindGarage:
		return s.Garages
	}
	return nil
}

// FavoritesStore tracks favorited entity ids per kind. No operation can fail
// from the caller's perspective; storage errors are absorbed by the inner
// store.
type FavoritesStore struct {
	inner *Store[FavoritesState]
}

func NewFavoritesStore(ctx context.Context, backend storage.Store, logger *zap.Logger) *FavoritesStore {
	return &FavoritesStore{
		inner: New(ctx, backend, favoritesKey, emptyFavorites(), logger),
	}
}

// Toggle adds id to the kind's set if absent, removes it if present, and
// returns whether the id is a favorite afterwards. Toggling twice restores
// the original membership.
func (f *FavoritesStore) Toggle(ctx context.Context, kind Kind, id int64) bool {
	var nowFavorite bool
	f.inner.Update(ctx, func(s FavoritesState) FavoritesState {
		next := s.clone()
		set := next.set(kind)
		if set == nil {
			return next
		}
		if _, ok := set[id]; ok {
			delete(set, id)
		} else {
			set[id] = struct{}{}
			nowFavorite = true
		}
		return next
	})
	return nowFavorite
}

func (f *FavoritesStore) IsFavorite(kind Kind, id int64) bool {
	set := f.inner.Get().set(kind)
	if set == nil {
		return false
	}
	_, ok := set[id]
	return ok
}

// Count is the total number of favorites across both kinds.
func (f *FavoritesStore) Count() int {
	s := f.inner.Get()
	return len(s.Listings) + len(s.Garages)
}

// IDs returns the favorited ids for kind in ascending order.
func (f *FavoritesStore) IDs(kind Kind) []int64 {
	set := f.inner.Get().set(kind)
	if set == nil {
		return nil
	}
	return sortedIDs(set)
}

func (f *FavoritesStore) Subscribe(fn func(FavoritesState)) func() {
	return f.inner.Subscribe(fn)
}
