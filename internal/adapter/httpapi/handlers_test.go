package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/moto-tn/catalog-service/internal/platform/metrics"
	"github.com/moto-tn/catalog-service/internal/port/storage"
	"github.com/moto-tn/catalog-service/internal/store"
)

// memStorage is an in-memory storage.Store so handler tests run without a
// real backend.
type memStorage struct {
	data map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{data: make(map[string][]byte)}
}

func (m *memStorage) Load(_ context.Context, key string) ([]byte, error) {
	data, ok := m.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

func (m *memStorage) Save(_ context.Context, key string, data []byte) error {
	m.data[key] = data
	return nil
}

type capturingPublisher struct {
	subjects []string
}

func (p *capturingPublisher) Publish(_ context.Context, subject string, _ interface{}) error {
	p.subjects = append(p.subjects, subject)
	return nil
}

func testMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

func adsRouter(h *AdsHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/ads/{zone}", h.HandleGetForZone)
	r.Post("/api/ads/{id}/click", h.HandleClick)
	return r
}

func TestAdsHandler_GetForZone_NoFill(t *testing.T) {
	ads := store.NewAdsStore(context.Background(), newMemStorage(), zap.NewNop())
	h := NewAdsHandler(ads, nil, testMetrics(), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/ads/sidebar", nil)
	rec := httptest.NewRecorder()
	adsRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdsHandler_GetForZone_ServesAndCountsView(t *testing.T) {
	ads := store.NewAdsStore(context.Background(), newMemStorage(), zap.NewNop())
	ads.Add(context.Background(), store.CampaignInput{
		Zone: store.ZoneSidebar, IsActive: true, Client: "Moto Import TN", Title: "Promo",
	})
	publisher := &capturingPublisher{}
	h := NewAdsHandler(ads, publisher, testMetrics(), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/ads/sidebar", nil)
	rec := httptest.NewRecorder()
	adsRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Promo"`)
	assert.Equal(t, uint64(1), ads.List()[0].Views)
	assert.Len(t, publisher.subjects, 1)
}

func TestAdsHandler_GetForZone_UnknownZone(t *testing.T) {
	ads := store.NewAdsStore(context.Background(), newMemStorage(), zap.NewNop())
	h := NewAdsHandler(ads, nil, testMetrics(), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/ads/footer", nil)
	rec := httptest.NewRecorder()
	adsRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdsHandler_Click(t *testing.T) {
	ads := store.NewAdsStore(context.Background(), newMemStorage(), zap.NewNop())
	c := ads.Add(context.Background(), store.CampaignInput{
		Zone: store.ZoneFeed, IsActive: true, Client: "X", Title: "Y",
	})
	h := NewAdsHandler(ads, nil, testMetrics(), zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/ads/%d/click", c.ID), nil)
	rec := httptest.NewRecorder()
	adsRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, ads.List(), 1)
	assert.Equal(t, uint64(1), ads.List()[0].Clicks)
}

func TestFavoritesHandler_Toggle(t *testing.T) {
	favorites := store.NewFavoritesStore(context.Background(), newMemStorage(), zap.NewNop())
	publisher := &capturingPublisher{}
	h := NewFavoritesHandler(favorites, nil, publisher, testMetrics(), nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/favorites/toggle",
		strings.NewReader(`{"kind":"listing","id":12}`))
	rec := httptest.NewRecorder()
	h.HandleToggle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"favorite":true`)
	assert.Contains(t, rec.Body.String(), `"count":1`)
	assert.True(t, favorites.IsFavorite(store.KindListing, 12))
	assert.Len(t, publisher.subjects, 1)
}

func TestFavoritesHandler_Toggle_InvalidKind(t *testing.T) {
	favorites := store.NewFavoritesStore(context.Background(), newMemStorage(), zap.NewNop())
	h := NewFavoritesHandler(favorites, nil, nil, testMetrics(), nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/favorites/toggle",
		strings.NewReader(`{"kind":"user","id":12}`))
	rec := httptest.NewRecorder()
	h.HandleToggle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, favorites.Count())
}

func TestFavoritesHandler_Toggle_BadBody(t *testing.T) {
	favorites := store.NewFavoritesStore(context.Background(), newMemStorage(), zap.NewNop())
	h := NewFavoritesHandler(favorites, nil, nil, testMetrics(), nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/favorites/toggle", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	h.HandleToggle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFavoritesHandler_List(t *testing.T) {
	favorites := store.NewFavoritesStore(context.Background(), newMemStorage(), zap.NewNop())
	favorites.Toggle(context.Background(), store.KindListing, 3)
	favorites.Toggle(context.Background(), store.KindGarage, 7)
	h := NewFavoritesHandler(favorites, nil, nil, testMetrics(), nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"listings":[3],"garages":[7],"count":2}`, rec.Body.String())
}
