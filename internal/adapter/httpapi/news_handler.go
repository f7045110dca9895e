package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/moto-tn/catalog-service/internal/news/domain"
	"github.com/moto-tn/catalog-service/internal/news/usecase"
)

type NewsHandler struct {
	uc     *usecase.NewsUseCase
	logger *zap.Logger
}

func NewNewsHandler(uc *usecase.NewsUseCase, logger *zap.Logger) *NewsHandler {
	return &NewsHandler{uc: uc, logger: logger}
}

func (h *NewsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := intParam(q.Get("page"))
	pageSize := intParam(q.Get("page_size"))
	category := domain.Category(q.Get("category"))

	items, total, err := h.uc.ListNews(r.Context(), page, pageSize, category)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list news")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"total": total,
		"items": items,
	})
}

func (h *NewsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	news, err := h.uc.GetNewsByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNewsNotFound) {
			respondError(w, http.StatusNotFound, "news article not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to get news article")
		return
	}
	respondJSON(w, http.StatusOK, news)
}

type createNewsRequest struct {
	Title    string          `json:"title"`
	Content  string          `json:"content"`
	Category domain.Category `json:"category"`
	AuthorID string          `json:"author_id"`
	ImageURL string          `json:"image_url"`
}

func (h *NewsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" {
		respondError(w, http.StatusBadRequest, "title and content are required")
		return
	}
	if req.Category == "" {
		req.Category = domain.CategoryNews
	}

	news, err := h.uc.CreateNews(r.Context(), usecase.CreateNewsInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		AuthorID: req.AuthorID,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create news article")
		return
	}
	respondJSON(w, http.StatusCreated, news)
}

type updateNewsRequest struct {
	Title    *string          `json:"title"`
	Content  *string          `json:"content"`
	Category *domain.Category `json:"category"`
	ImageURL *string          `json:"image_url"`
}

func (h *NewsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req updateNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	news, err := h.uc.UpdateNews(r.Context(), usecase.UpdateNewsInput{
		ID:       id,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNewsNotFound) {
			respondError(w, http.StatusNotFound, "news article not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to update news article")
		return
	}
	respondJSON(w, http.StatusOK, news)
}

func (h *NewsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.uc.DeleteNews(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNewsNotFound) {
			respondError(w, http.StatusNotFound, "news article not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to delete news article")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
