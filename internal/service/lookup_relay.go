package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/suar-net/food-relay/internal/model"
)

// LookupProduct fetches a single product by barcode.
//
// Upstream 302 and 404 become ErrRedirect and ErrNotFound; every other status
// but 200 becomes ErrUpstream.
func (s *RelayService) LookupProduct(ctx context.Context, dto *model.DTOProductLookupRequest) (*model.DTOUpstreamResponse, error) {
	base, err := url.Parse(s.cfg.ProductURL)
	if err != nil {
		return nil, fmt.Errorf("invalid product endpoint: %w", err)
	}
	target := base.JoinPath(dto.Barcode)

	params := target.Query()
	params.Set("product_type", dto.ProductType)
	if dto.Fields != "" {
		params.Set("fields", dto.Fields)
	}
	target.RawQuery = params.Encode()

	resp, relayID, err := s.execute(ctx, model.RelayKindLookup, dto.CallerID, target)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return upstreamBody(resp, relayID)
	case http.StatusFound:
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Location:   resp.Headers.Get("Location"),
			Err:        ErrRedirect,
		}
	case http.StatusNotFound:
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Err: ErrNotFound}
	default:
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Err: ErrUpstream}
	}
}
