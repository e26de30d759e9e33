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

const (
	userIDHeader  = "X-User-ID"
	relayIDHeader = "X-Relay-ID"

	productNotFound   = "Product not found in Open Food Facts"
	productRedirected = "Product redirected by Open Food Facts"
	upstreamFailed    = "Open Food Facts API error"
)

// RelayService is the contract of the search and lookup relays.
type RelayService interface {
	SearchProducts(ctx context.Context, dto *model.DTOProductSearchRequest) (*model.DTOUpstreamResponse, error)
	LookupProduct(ctx context.Context, dto *model.DTOProductLookupRequest) (*model.DTOUpstreamResponse, error)
}

type ProductHandler struct {
	service RelayService
	logger  *log.Logger
}

func NewProductHandler(s RelayService, l *log.Logger) *ProductHandler {
	return &ProductHandler{
		service: s,
		logger:  l,
	}
}

// Search handles GET /products and relays the query to the upstream search.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	page, err := queryInt(values, "page", 1)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	pageSize, err := queryInt(values, "page_size", 20)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	dto := model.DTOProductSearchRequest{
		SearchTerms: values.Get("search_terms"),
		Page:        page,
		PageSize:    pageSize,
		SortBy:      values.Get("sort_by"),
		NoCache:     queryString(values, "nocache", "1"),
		CallerID:    callerID(r),
	}
	if err := validate.Struct(&dto); err != nil {
		respondWithError(w, http.StatusBadRequest, ValidationError(err))
		return
	}

	resp, err := h.service.SearchProducts(r.Context(), &dto)
	if err != nil {
		h.respondWithRelayError(w, err)
		return
	}

	w.Header().Set(relayIDHeader, resp.RelayID)
	respondWithRawJson(w, http.StatusOK, resp.Body)
}

// GetByBarcode handles GET /products/{barcode}.
func (h *ProductHandler) GetByBarcode(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	dto := model.DTOProductLookupRequest{
		Barcode:     chi.URLParam(r, "barcode"),
		ProductType: queryString(values, "product_type", "all"),
		Fields:      values.Get("fields"),
		CallerID:    callerID(r),
	}
	if err := validate.Struct(&dto); err != nil {
		respondWithError(w, http.StatusBadRequest, ValidationError(err))
		return
	}

	resp, err := h.service.LookupProduct(r.Context(), &dto)
	if err != nil {
		h.respondWithRelayError(w, err)
		return
	}

	w.Header().Set(relayIDHeader, resp.RelayID)
	respondWithRawJson(w, http.StatusOK, resp.Body)
}

func (h *ProductHandler) respondWithRelayError(w http.ResponseWriter, err error) {
	h.logger.Printf("ERROR: %v", err)

	var upstreamErr *service.UpstreamError
	switch {
	case errors.As(err, &upstreamErr) && errors.Is(err, service.ErrRedirect):
		if upstreamErr.Location != "" {
			w.Header().Set("Location", upstreamErr.Location)
		}
		respondWithError(w, http.StatusFound, productRedirected)
	case errors.Is(err, service.ErrNotFound):
		respondWithError(w, http.StatusNotFound, productNotFound)
	case errors.As(err, &upstreamErr):
		// 1xx, 204 and 304 cannot carry the detail body.
		if !bodyAllowed(upstreamErr.StatusCode) {
			respondWithError(w, http.StatusBadGateway, upstreamFailed)
			return
		}
		respondWithError(w, upstreamErr.StatusCode, upstreamFailed)
	case errors.Is(err, service.ErrRequestTimeout):
		respondWithError(w, http.StatusGatewayTimeout, "Open Food Facts did not respond in time")
	case errors.Is(err, service.ErrBadUpstreamPayload):
		respondWithError(w, http.StatusBadGateway, "Open Food Facts returned an invalid response")
	default:
		respondWithError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}

// callerID returns the X-User-ID header, or the default caller when absent.
func callerID(r *http.Request) string {
	if id := r.Header.Get(userIDHeader); id != "" {
		return id
	}
	return model.DefaultCallerID
}

func bodyAllowed(code int) bool {
	switch {
	case code < http.StatusOK:
		return false
	case code == http.StatusNoContent, code == http.StatusNotModified:
		return false
	}
	return true
}
