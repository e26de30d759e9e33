package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/suar-net/food-relay/internal/model"
	"github.com/suar-net/food-relay/internal/service"
)

const foodNotFound = "Food not found"

// CatalogService is the contract of the mock food catalog.
type CatalogService interface {
	Search(ctx context.Context, query string) ([]model.Food, error)
	GetByID(ctx context.Context, id string) (*model.Food, error)
}

type FoodHandler struct {
	service CatalogService
	logger  *log.Logger
}

func NewFoodHandler(s CatalogService, l *log.Logger) *FoodHandler {
	return &FoodHandler{
		service: s,
		logger:  l,
	}
}

// Search handles GET /v1/foods?q=.
func (h *FoodHandler) Search(w http.ResponseWriter, r *http.Request) {
	dto := model.DTOFoodSearchRequest{Query: r.URL.Query().Get("q")}
	if err := validate.Struct(&dto); err != nil {
		respondWithError(w, http.StatusBadRequest, ValidationError(err))
		return
	}

	foods, err := h.service.Search(r.Context(), dto.Query)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}

	respondWithJson(w, http.StatusOK, foods)
}

// GetByID handles GET /v1/foods/{id}.
func (h *FoodHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	food, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}

	respondWithJson(w, http.StatusOK, food)
}

func (h *FoodHandler) respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondWithError(w, http.StatusNotFound, foodNotFound)
	case errors.Is(err, service.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
