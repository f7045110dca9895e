package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	natsadapter "github.com/moto-tn/catalog-service/internal/adapter/messaging/nats"
	"github.com/moto-tn/catalog-service/internal/catalog/usecase"
	"github.com/moto-tn/catalog-service/internal/geo"
	"github.com/moto-tn/catalog-service/internal/platform/metrics"
	"github.com/moto-tn/catalog-service/internal/store"
)

// EventPublisher is the slice of the NATS publisher the handlers need.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
}

type FavoritesHandler struct {
	favorites *store.FavoritesStore
	catalog   *usecase.CatalogUsecase
	publisher EventPublisher
	metrics   *metrics.Metrics
	locator   geo.Locator
	logger    *zap.Logger
}

func NewFavoritesHandler(
	favorites *store.FavoritesStore,
	catalog *usecase.CatalogUsecase,
	publisher EventPublisher,
	m *metrics.Metrics,
	locator geo.Locator,
	logger *zap.Logger,
) *FavoritesHandler {
	return &FavoritesHandler{
		favorites: favorites,
		catalog:   catalog,
		publisher: publisher,
		metrics:   m,
		locator:   locator,
		logger:    logger,
	}
}

type toggleFavoriteRequest struct {
	Kind store.Kind `json:"kind"`
	ID   int64      `json:"id"`
}

func (h *FavoritesHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	var req toggleFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Kind != store.KindListing && req.Kind != store.KindGarage {
		respondError(w, http.StatusBadRequest, "kind must be 'listing' or 'garage'")
		return
	}

	nowFavorite := h.favorites.Toggle(r.Context(), req.Kind, req.ID)
	h.metrics.FavoriteTogglesTotal.WithLabelValues(string(req.Kind)).Inc()

	if h.publisher != nil {
		event := map[string]interface{}{"kind": req.Kind, "id": req.ID, "favorite": nowFavorite}
		if err := h.publisher.Publish(r.Context(), natsadapter.SubjectFavoriteToggled, event); err != nil {
			h.logger.Warn("Failed to publish favorite toggle event", zap.Error(err))
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"kind":     req.Kind,
		"id":       req.ID,
		"favorite": nowFavorite,
		"count":    h.favorites.Count(),
	})
}

func (h *FavoritesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"listings": h.favorites.IDs(store.KindListing),
		"garages":  h.favorites.IDs(store.KindGarage),
		"count":    h.favorites.Count(),
	})
}

// HandleListings serves the favorites page: the favorited listings resolved
// against the catalog, distance-annotated when the client sent a location.
func (h *FavoritesHandler) HandleListings(w http.ResponseWriter, r *http.Request) {
	loc := resolveLocation(r, h.locator)
	results := h.catalog.FavoriteListings(r.Context(), loc)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"total":   len(results),
		"results": results,
	})
}

func (h *FavoritesHandler) HandleGarages(w http.ResponseWriter, r *http.Request) {
	loc := resolveLocation(r, h.locator)
	results := h.catalog.FavoriteGarages(r.Context(), loc)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"total":   len(results),
		"results": results,
	})
}
