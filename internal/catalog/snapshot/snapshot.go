// Package snapshot keeps the full listing and garage collections in memory
// so the query engine can run as a pure function over slices. The snapshot
// is replaced wholesale on refresh; readers always see a consistent set.
package snapshot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/moto-tn/catalog-service/internal/catalog/domain"
)

type Snapshot struct {
	listingRepo domain.ListingRepository
	garageRepo  domain.GarageRepository
	logger      *zap.Logger

	mu        sync.RWMutex
	listings  []domain.Listing
	garages   []domain.Garage
	refreshed time.Time
}

func New(listingRepo domain.ListingRepository, garageRepo domain.GarageRepository, logger *zap.Logger) *Snapshot {
	return &Snapshot{
		listingRepo: listingRepo,
		garageRepo:  garageRepo,
		logger:      logger,
	}
}

// Refresh reloads both collections. On failure the previous snapshot stays
// in place.
func (s *Snapshot) Refresh(ctx context.Context) error {
	listings, err := s.listingRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("Snapshot.Refresh: listings: %w", err)
	}
	garages, err := s.garageRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("Snapshot.Refresh: garages: %w", err)
	}

	s.mu.Lock()
	s.listings = listings
	s.garages = garages
	s.refreshed = time.Now()
	s.mu.Unlock()

	s.logger.Info("Catalog snapshot refreshed",
		zap.Int("listings", len(listings)), zap.Int("garages", len(garages)))
	return nil
}

// Listings returns the current listing set. The slice is replaced, never
// mutated, so callers may hold it across a refresh.
func (s *Snapshot) Listings() []domain.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listings
}

func (s *Snapshot) Garages() []domain.Garage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.garages
}

// ListingItems adapts the listing set to the engine's item interface.
func (s *Snapshot) ListingItems() []domain.Item {
	listings := s.Listings()
	items := make([]domain.Item, len(listings))
	for i, l := range listings {
		items[i] = l
	}
	return items
}

func (s *Snapshot) GarageItems() []domain.Item {
	garages := s.Garages()
	items := make([]domain.Item, len(garages))
	for i, g := range garages {
		items[i] = g
	}
	return items
}

func (s *Snapshot) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshed
}
