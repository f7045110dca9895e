package snapshot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/moto-tn/catalog-service/internal/catalog/domain"
)

type stubListingRepo struct {
	listings []domain.Listing
	err      error
}

func (r *stubListingRepo) FindAll(context.Context) ([]domain.Listing, error) {
	return r.listings, r.err
}

func (r *stubListingRepo) FindByID(context.Context, int64) (*domain.Listing, error) {
	return nil, domain.ErrListingNotFound
}

type stubGarageRepo struct {
	garages []domain.Garage
	err     error
}

func (r *stubGarageRepo) FindAll(context.Context) ([]domain.Garage, error) {
	return r.garages, r.err
}

func (r *stubGarageRepo) FindByID(context.Context, int64) (*domain.Garage, error) {
	return nil, domain.ErrGarageNotFound
}

func (r *stubGarageRepo) Create(context.Context, *domain.Garage) (int64, error) { return 0, nil }
func (r *stubGarageRepo) Update(context.Context, *domain.Garage) error          { return nil }
func (r *stubGarageRepo) Delete(context.Context, int64) error                   { return nil }

func TestSnapshot_Refresh(t *testing.T) {
	listingRepo := &stubListingRepo{listings: []domain.Listing{{ID: 1}, {ID: 2}}}
	garageRepo := &stubGarageRepo{garages: []domain.Garage{{ID: 10}}}
	s := New(listingRepo, garageRepo, zap.NewNop())

	assert.Empty(t, s.Listings())
	assert.True(t, s.RefreshedAt().IsZero())

	require.NoError(t, s.Refresh(context.Background()))

	assert.Len(t, s.Listings(), 2)
	assert.Len(t, s.Garages(), 1)
	assert.False(t, s.RefreshedAt().IsZero())
}

func TestSnapshot_RefreshFailureKeepsPreviousData(t *testing.T) {
	listingRepo := &stubListingRepo{listings: []domain.Listing{{ID: 1}}}
	garageRepo := &stubGarageRepo{}
	s := New(listingRepo, garageRepo, zap.NewNop())
	require.NoError(t, s.Refresh(context.Background()))

	listingRepo.err = errors.New("mongo down")
	err := s.Refresh(context.Background())

	assert.Error(t, err)
	assert.Len(t, s.Listings(), 1)
}

func TestSnapshot_ItemAdapters(t *testing.T) {
	listingRepo := &stubListingRepo{listings: []domain.Listing{{ID: 1, Title: "Honda CB"}}}
	garageRepo := &stubGarageRepo{garages: []domain.Garage{{ID: 10, Name: "Garage Slim"}}}
	s := New(listingRepo, garageRepo, zap.NewNop())
	require.NoError(t, s.Refresh(context.Background()))

	items := s.ListingItems()
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ItemID())
	assert.Equal(t, "Honda CB", items[0].ItemTitle())

	garages := s.GarageItems()
	require.Len(t, garages, 1)
	assert.Equal(t, "Garage Slim", garages[0].ItemTitle())
}
