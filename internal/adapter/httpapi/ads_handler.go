package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	natsadapter "github.com/moto-tn/catalog-service/internal/adapter/messaging/nats"
	"github.com/moto-tn/catalog-service/internal/platform/metrics"
	"github.com/moto-tn/catalog-service/internal/store"
)

type AdsHandler struct {
	ads       *store.AdsStore
	publisher EventPublisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

func NewAdsHandler(ads *store.AdsStore, publisher EventPublisher, m *metrics.Metrics, logger *zap.Logger) *AdsHandler {
	return &AdsHandler{ads: ads, publisher: publisher, metrics: m, logger: logger}
}

// HandleGetForZone serves one rotation pick for the zone and counts the
// view. 204 means the zone has no active campaign and the client renders
// nothing.
func (h *AdsHandler) HandleGetForZone(w http.ResponseWriter, r *http.Request) {
	zone, err := store.ParseZone(chi.URLParam(r, "zone"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ad := h.ads.AdForZone(zone)
	if ad == nil {
		h.metrics.AdsNoFillTotal.WithLabelValues(string(zone)).Inc()
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.ads.TrackView(r.Context(), ad.ID)
	h.metrics.AdsServedTotal.WithLabelValues(string(zone)).Inc()
	h.publishTracking(r, natsadapter.SubjectAdViewed, ad.ID, zone)

	respondJSON(w, http.StatusOK, ad)
}

func (h *AdsHandler) HandleClick(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	// Unknown ids are absorbed; the click endpoint never fails the client.
	h.ads.TrackClick(r.Context(), id)
	h.publishTracking(r, natsadapter.SubjectAdClicked, id, "")

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdsHandler) publishTracking(r *http.Request, subject string, id int64, zone store.Zone) {
	if h.publisher == nil {
		return
	}
	event := map[string]interface{}{"campaign_id": id}
	if zone != "" {
		event["zone"] = zone
	}
	if err := h.publisher.Publish(r.Context(), subject, event); err != nil {
		h.logger.Warn("Failed to publish ad tracking event",
			zap.String("subject", subject), zap.Error(err))
	}
}
