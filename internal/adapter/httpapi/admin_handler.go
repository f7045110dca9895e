package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/moto-tn/catalog-service/internal/catalog/domain"
	"github.com/moto-tn/catalog-service/internal/catalog/snapshot"
	"github.com/moto-tn/catalog-service/internal/store"
)

// AdminHandler is the back-office surface: garages, brand reference data and
// ad campaigns. Mutations to garages refresh the catalog snapshot so the
// public views pick them up immediately.
type AdminHandler struct {
	garages domain.GarageRepository
	brands  domain.BrandRepository
	ads     *store.AdsStore
	snap    *snapshot.Snapshot
	logger  *zap.Logger
}

func NewAdminHandler(
	garages domain.GarageRepository,
	brands domain.BrandRepository,
	ads *store.AdsStore,
	snap *snapshot.Snapshot,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{garages: garages, brands: brands, ads: ads, snap: snap, logger: logger}
}

// --- Garages ---

func (h *AdminHandler) HandleCreateGarage(w http.ResponseWriter, r *http.Request) {
	var garage domain.Garage
	if err := json.NewDecoder(r.Body).Decode(&garage); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if garage.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	if _, err := h.garages.Create(r.Context(), &garage); err != nil {
		h.logger.Error("Failed to create garage", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to create garage")
		return
	}
	h.refreshSnapshot(r)
	respondJSON(w, http.StatusCreated, garage)
}

func (h *AdminHandler) HandleUpdateGarage(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid garage id")
		return
	}
	var garage domain.Garage
	if err := json.NewDecoder(r.Body).Decode(&garage); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	garage.ID = id

	if err := h.garages.Update(r.Context(), &garage); err != nil {
		if errors.Is(err, domain.ErrGarageNotFound) {
			respondError(w, http.StatusNotFound, "garage not found")
			return
		}
		h.logger.Error("Failed to update garage", zap.Int64("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to update garage")
		return
	}
	h.refreshSnapshot(r)
	respondJSON(w, http.StatusOK, garage)
}

func (h *AdminHandler) HandleDeleteGarage(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid garage id")
		return
	}
	if err := h.garages.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrGarageNotFound) {
			respondError(w, http.StatusNotFound, "garage not found")
			return
		}
		h.logger.Error("Failed to delete garage", zap.Int64("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to delete garage")
		return
	}
	h.refreshSnapshot(r)
	w.WriteHeader(http.StatusNoContent)
}

// --- Brands ---

func (h *AdminHandler) HandleCreateBrand(w http.ResponseWriter, r *http.Request) {
	var brand domain.Brand
	if err := json.NewDecoder(r.Body).Decode(&brand); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if brand.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	if _, err := h.brands.Create(r.Context(), &brand); err != nil {
		h.logger.Error("Failed to create brand", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to create brand")
		return
	}
	respondJSON(w, http.StatusCreated, brand)
}

func (h *AdminHandler) HandleUpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid brand id")
		return
	}
	var brand domain.Brand
	if err := json.NewDecoder(r.Body).Decode(&brand); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	brand.ID = id

	if err := h.brands.Update(r.Context(), &brand); err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			respondError(w, http.StatusNotFound, "brand not found")
			return
		}
		h.logger.Error("Failed to update brand", zap.Int64("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to update brand")
		return
	}
	respondJSON(w, http.StatusOK, brand)
}

func (h *AdminHandler) HandleDeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid brand id")
		return
	}
	if err := h.brands.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			respondError(w, http.StatusNotFound, "brand not found")
			return
		}
		h.logger.Error("Failed to delete brand", zap.Int64("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to delete brand")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Ad campaigns ---

func (h *AdminHandler) HandleListCampaigns(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.ads.List())
}

func (h *AdminHandler) HandleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var input store.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := store.ParseZone(string(input.Zone)); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	campaign := h.ads.Add(r.Context(), input)
	respondJSON(w, http.StatusCreated, campaign)
}

func (h *AdminHandler) HandleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	var patch store.CampaignPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	campaign, err := h.ads.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrCampaignNotFound) {
			respondError(w, http.StatusNotFound, "ad campaign not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to update ad campaign")
		return
	}
	respondJSON(w, http.StatusOK, campaign)
}

func (h *AdminHandler) HandleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	if err := h.ads.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrCampaignNotFound) {
			respondError(w, http.StatusNotFound, "ad campaign not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to delete ad campaign")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) refreshSnapshot(r *http.Request) {
	if err := h.snap.Refresh(r.Context()); err != nil {
		h.logger.Warn("Snapshot refresh after admin mutation failed", zap.Error(err))
	}
}
