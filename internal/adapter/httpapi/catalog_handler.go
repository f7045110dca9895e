package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/moto-tn/catalog-service/internal/catalog/domain"
	"github.com/moto-tn/catalog-service/internal/catalog/usecase"
	"github.com/moto-tn/catalog-service/internal/geo"
)

type CatalogHandler struct {
	uc      *usecase.CatalogUsecase
	brands  domain.BrandRepository
	locator geo.Locator
	logger  *zap.Logger
}

func NewCatalogHandler(uc *usecase.CatalogUsecase, brands domain.BrandRepository, locator geo.Locator, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, brands: brands, locator: locator, logger: logger}
}

func (h *CatalogHandler) HandleSearchListings(w http.ResponseWriter, r *http.Request) {
	loc := resolveLocation(r, h.locator)
	spec := filterFromQuery(r)
	sortBy := sortFromQuery(r, loc != nil)

	results := h.uc.SearchListings(r.Context(), spec, sortBy, loc)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"total":   len(results),
		"sort":    sortBy,
		"results": results,
	})
}

func (h *CatalogHandler) HandleGetListing(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid listing id")
		return
	}
	listing, err := h.uc.GetListing(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			respondError(w, http.StatusNotFound, "listing not found")
			return
		}
		h.logger.Error("Failed to get listing", zap.Int64("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to get listing")
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

func (h *CatalogHandler) HandleSearchGarages(w http.ResponseWriter, r *http.Request) {
	loc := resolveLocation(r, h.locator)
	spec := filterFromQuery(r)
	sortBy := sortFromQuery(r, loc != nil)

	results := h.uc.SearchGarages(r.Context(), spec, sortBy, loc)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"total":   len(results),
		"sort":    sortBy,
		"results": results,
	})
}

func (h *CatalogHandler) HandleGetGarage(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid garage id")
		return
	}
	garage, err := h.uc.GetGarage(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrGarageNotFound) {
			respondError(w, http.StatusNotFound, "garage not found")
			return
		}
		h.logger.Error("Failed to get garage", zap.Int64("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to get garage")
		return
	}
	respondJSON(w, http.StatusOK, garage)
}

func (h *CatalogHandler) HandleListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brands.FindAll(r.Context())
	if err != nil {
		h.logger.Error("Failed to list brands", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to list brands")
		return
	}
	respondJSON(w, http.StatusOK, brands)
}
