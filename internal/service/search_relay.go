package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/suar-net/food-relay/internal/model"
)

// SearchProducts forwards a product search upstream. nocache is passed
// through as-is; nothing is cached here.
func (s *RelayService) SearchProducts(ctx context.Context, dto *model.DTOProductSearchRequest) (*model.DTOUpstreamResponse, error) {
	target, err := url.Parse(s.cfg.SearchURL)
	if err != nil {
		return nil, fmt.Errorf("invalid search endpoint: %w", err)
	}

	params := target.Query()
	params.Set("search_terms", dto.SearchTerms)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page", strconv.Itoa(dto.Page))
	params.Set("page_size", strconv.Itoa(dto.PageSize))
	if dto.SortBy != "" {
		params.Set("sort_by", dto.SortBy)
	}
	params.Set("nocache", dto.NoCache)
	target.RawQuery = params.Encode()

	resp, relayID, err := s.execute(ctx, model.RelayKindSearch, dto.CallerID, target)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Err: ErrUpstream}
	}
	return upstreamBody(resp, relayID)
}
