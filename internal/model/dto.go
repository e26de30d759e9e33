package model

import (
	"encoding/json"
)

const DefaultCallerID = "default-user"

// DTOFoodSearchRequest holds the query of the mock catalog search.
type DTOFoodSearchRequest struct {
	Query string `query:"q" validate:"required"`
}

// DTOProductSearchRequest holds the parameters forwarded to the upstream search.
// Only search_terms is checked here; paging and nocache are the upstream's
// business and are passed through as given.
type DTOProductSearchRequest struct {
	SearchTerms string `query:"search_terms" validate:"required"`
	Page        int    `query:"page"`
	PageSize    int    `query:"page_size"`
	SortBy      string `query:"sort_by"`
	NoCache     string `query:"nocache"`
	CallerID    string
}

// DTOProductLookupRequest holds the parameters of a per-barcode lookup.
type DTOProductLookupRequest struct {
	Barcode     string `query:"barcode" validate:"required"`
	ProductType string `query:"product_type"`
	Fields      string `query:"fields"`
	CallerID    string
}

// DTOUpstreamResponse is the opaque upstream JSON body handed back to the caller.
type DTOUpstreamResponse struct {
	RelayID string
	Body    json.RawMessage
}

type DTOHistoryRequest struct {
	CallerID string `query:"caller_id" validate:"required"`
	Limit    int    `query:"limit" validate:"gte=1,lte=200"`
}
