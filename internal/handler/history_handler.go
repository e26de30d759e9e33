package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/suar-net/food-relay/internal/model"
	"github.com/suar-net/food-relay/internal/service"
)

type HistoryService interface {
	History(ctx context.Context, dto *model.DTOHistoryRequest) ([]*model.RelayRecord, error)
}

type HistoryHandler struct {
	service HistoryService
	logger  *log.Logger
}

func NewHistoryHandler(s HistoryService, l *log.Logger) *HistoryHandler {
	return &HistoryHandler{
		service: s,
		logger:  l,
	}
}

// List handles GET /history?caller_id=&limit=.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	limit, err := queryInt(values, "limit", 50)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	dto := model.DTOHistoryRequest{
		CallerID: values.Get("caller_id"),
		Limit:    limit,
	}
	if err := validate.Struct(&dto); err != nil {
		respondWithError(w, http.StatusBadRequest, ValidationError(err))
		return
	}

	records, err := h.service.History(r.Context(), &dto)
	if err != nil {
		if errors.Is(err, service.ErrHistoryDisabled) {
			respondWithError(w, http.StatusServiceUnavailable, "Relay history is not enabled")
			return
		}
		h.logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "An internal error occurred")
		return
	}

	respondWithJson(w, http.StatusOK, records)
}
