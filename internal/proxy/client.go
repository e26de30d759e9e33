package proxy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	maxResponseBodySize   = 10 * 1024 * 1024 // 10 MB
	defaultRequestTimeout = 30 * time.Second
)

// OutboundRequest represents a GET request to be sent to an upstream service.
type OutboundRequest struct {
	URL     *url.URL
	Headers http.Header
	Timeout time.Duration
}

// Response is the upstream answer, read fully into memory.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Truncated  bool
	Duration   time.Duration
}

type Client struct {
	httpClient *http.Client
}

// NewClient returns a Client that never follows redirects, so the caller
// sees the upstream 3xx status as-is.
func NewClient() *Client {
	// Create a custom transport with pooled connections to the upstream.
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			// Hand the 3xx back instead of following it.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Get issues exactly one GET request. Transport failures, including an
// expired deadline, are returned wrapped so errors.Is works on them.
func (c *Client) Get(ctx context.Context, outboundRequest *OutboundRequest) (*Response, error) {
	startTime := time.Now()

	// Timeout: fall back to the default when none was configured.
	timeout := outboundRequest.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpRequest, err := http.NewRequestWithContext(reqCtx, http.MethodGet, outboundRequest.URL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	for key, values := range outboundRequest.Headers {
		httpRequest.Header[key] = values
	}

	// reqCtx carries the deadline, so an expired timeout surfaces here as
	// context.DeadlineExceeded.
	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request to upstream: %w", err)
	}
	defer httpResponse.Body.Close()

	// Read one byte past the limit to tell a body of exactly the limit apart
	// from a truncated one.
	limitedReader := &io.LimitedReader{R: httpResponse.Body, N: maxResponseBodySize + 1}
	bodyBytes, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response body: %w", err)
	}

	response := &Response{
		StatusCode: httpResponse.StatusCode,
		Headers:    httpResponse.Header.Clone(),
		Body:       bodyBytes,
		Duration:   time.Since(startTime),
	}
	// Check if the response was truncated
	if len(bodyBytes) > maxResponseBodySize {
		response.Body = bodyBytes[:maxResponseBodySize]
		response.Truncated = true
	}

	return response, nil
}
