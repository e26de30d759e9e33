package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/suar-net/food-relay/internal/config"
	"github.com/suar-net/food-relay/internal/model"
	"github.com/suar-net/food-relay/internal/proxy"
	"github.com/suar-net/food-relay/internal/repository"
)

// Upstream sends one GET request to the food-product API.
type Upstream interface {
	Get(ctx context.Context, req *proxy.OutboundRequest) (*proxy.Response, error)
}

// RelayService forwards product searches and barcode lookups to the upstream
// API and hands the JSON body back untouched.
type RelayService struct {
	upstream Upstream
	history  repository.IRelayRepository
	cfg      config.UpstreamConfig
	logger   *log.Logger
	newID    func() string
}

// NewRelayService wires the relays. history may be nil, in which case relay
// calls are not recorded.
func NewRelayService(upstream Upstream, history repository.IRelayRepository, cfg config.UpstreamConfig, logger *log.Logger) *RelayService {
	return &RelayService{
		upstream: upstream,
		history:  history,
		cfg:      cfg,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// UserAgent builds the identification string sent upstream for a caller.
func (s *RelayService) UserAgent(callerID string) string {
	if callerID == "" {
		callerID = model.DefaultCallerID
	}
	return fmt.Sprintf("%s - User %s", s.cfg.AppName, callerID)
}

// execute issues the upstream call and records it. The returned relay ID is
// set even when the call fails.
func (s *RelayService) execute(ctx context.Context, kind model.RelayKind, callerID string, target *url.URL) (*proxy.Response, string, error) {
	relayID := s.newID()
	startTime := time.Now()

	headers := make(http.Header)
	headers.Set("User-Agent", s.UserAgent(callerID))
	headers.Set("Accept", "application/json")

	resp, err := s.upstream.Get(ctx, &proxy.OutboundRequest{
		URL:     target,
		Headers: headers,
		Timeout: s.cfg.Timeout,
	})

	record := &model.RelayRecord{
		ID:          relayID,
		Kind:        kind,
		CallerID:    callerID,
		UpstreamURL: target.String(),
		DurationMs:  time.Since(startTime).Milliseconds(),
		ExecutedAt:  startTime.UTC(),
	}
	if err != nil {
		record.Error = err.Error()
	} else {
		statusCode := resp.StatusCode
		record.UpstreamStatusCode = &statusCode
	}
	s.record(ctx, record)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, relayID, fmt.Errorf("%w: %v", ErrRequestTimeout, err)
		}
		return nil, relayID, err
	}
	return resp, relayID, nil
}

// record stores the relay call. Failures are logged and otherwise ignored.
func (s *RelayService) record(ctx context.Context, record *model.RelayRecord) {
	if s.history == nil {
		return
	}
	storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	if err := s.history.Create(storeCtx, record); err != nil {
		s.logger.Printf("ERROR: failed to record relay %s: %v", record.ID, err)
	}
}

func (s *RelayService) History(ctx context.Context, dto *model.DTOHistoryRequest) ([]*model.RelayRecord, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	records, err := s.history.GetByCallerID(ctx, dto.CallerID, dto.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load relay history: %w", err)
	}
	return records, nil
}

// upstreamBody checks that a successful upstream body is complete JSON.
func upstreamBody(resp *proxy.Response, relayID string) (*model.DTOUpstreamResponse, error) {
	if resp.Truncated {
		return nil, fmt.Errorf("%w: response body exceeds size limit", ErrBadUpstreamPayload)
	}
	if !json.Valid(resp.Body) {
		return nil, fmt.Errorf("%w: response body is not valid JSON", ErrBadUpstreamPayload)
	}
	return &model.DTOUpstreamResponse{
		RelayID: relayID,
		Body:    json.RawMessage(resp.Body),
	}, nil
}
