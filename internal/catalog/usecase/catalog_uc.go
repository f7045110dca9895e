package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/moto-tn/catalog-service/internal/catalog/domain"
	"github.com/moto-tn/catalog-service/internal/catalog/engine"
	"github.com/moto-tn/catalog-service/internal/catalog/snapshot"
	"github.com/moto-tn/catalog-service/internal/platform/metrics"
	"github.com/moto-tn/catalog-service/internal/store"
)

// CatalogUsecase runs every catalog view through the one query engine so
// search, the garage directory and favorites-derived lists share identical
// filter/sort semantics.
type CatalogUsecase struct {
	snap      *snapshot.Snapshot
	engine    *engine.Engine
	favorites *store.FavoritesStore
	metrics   *metrics.Metrics
	logger    *zap.Logger
	tracer    trace.Tracer
}

func NewCatalogUsecase(
	snap *snapshot.Snapshot,
	eng *engine.Engine,
	favorites *store.FavoritesStore,
	m *metrics.Metrics,
	log *zap.Logger,
) *CatalogUsecase {
	return &CatalogUsecase{
		snap:      snap,
		engine:    eng,
		favorites: favorites,
		metrics:   m,
		logger:    log,
		tracer:    otel.Tracer("catalog-usecase"),
	}
}

func (uc *CatalogUsecase) SearchListings(ctx context.Context, spec domain.FilterSpec, sortBy domain.SortSpec, loc *domain.Coordinates) []engine.Result {
	_, span := uc.tracer.Start(ctx, "CatalogUsecase.SearchListings")
	defer span.End()

	results := uc.engine.Query(uc.snap.ListingItems(), spec, sortBy, loc)
	span.SetAttributes(attribute.Int("results", len(results)))
	uc.metrics.QueriesTotal.WithLabelValues("listings").Inc()
	return results
}

func (uc *CatalogUsecase) SearchGarages(ctx context.Context, spec domain.FilterSpec, sortBy domain.SortSpec, loc *domain.Coordinates) []engine.Result {
	_, span := uc.tracer.Start(ctx, "CatalogUsecase.SearchGarages")
	defer span.End()

	results := uc.engine.Query(uc.snap.GarageItems(), spec, sortBy, loc)
	span.SetAttributes(attribute.Int("results", len(results)))
	uc.metrics.QueriesTotal.WithLabelValues("garages").Inc()
	return results
}

func (uc *CatalogUsecase) GetListing(ctx context.Context, id int64) (*domain.Listing, error) {
	_, span := uc.tracer.Start(ctx, "CatalogUsecase.GetListing")
	defer span.End()

	for _, l := range uc.snap.Listings() {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, domain.ErrListingNotFound
}

func (uc *CatalogUsecase) GetGarage(ctx context.Context, id int64) (*domain.Garage, error) {
	_, span := uc.tracer.Start(ctx, "CatalogUsecase.GetGarage")
	defer span.End()

	for _, g := range uc.snap.Garages() {
		if g.ID == id {
			return &g, nil
		}
	}
	return nil, domain.ErrGarageNotFound
}

// FavoriteListings returns the user's favorited listings, re-sorted through
// the engine like any other view. Favorites pointing at listings that left
// the catalog are silently skipped.
func (uc *CatalogUsecase) FavoriteListings(ctx context.Context, loc *domain.Coordinates) []engine.Result {
	_, span := uc.tracer.Start(ctx, "CatalogUsecase.FavoriteListings")
	defer span.End()

	items := make([]domain.Item, 0)
	for _, l := range uc.snap.Listings() {
		if uc.favorites.IsFavorite(store.KindListing, l.ID) {
			items = append(items, l)
		}
	}
	return uc.engine.Query(items, domain.DefaultFilterSpec(), domain.DefaultSort(loc != nil), loc)
}

func (uc *CatalogUsecase) FavoriteGarages(ctx context.Context, loc *domain.Coordinates) []engine.Result {
	_, span := uc.tracer.Start(ctx, "CatalogUsecase.FavoriteGarages")
	defer span.End()

	items := make([]domain.Item, 0)
	for _, g := range uc.snap.Garages() {
		if uc.favorites.IsFavorite(store.KindGarage, g.ID) {
			items = append(items, g)
		}
	}
	return uc.engine.Query(items, domain.DefaultFilterSpec(), domain.DefaultSort(loc != nil), loc)
}
