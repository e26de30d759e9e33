package proxy

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestClientGetForwardsHeadersAndBody(t *testing.T) {
	var gotAgent, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[]}`))
	}))
	defer server.Close()

	headers := make(http.Header)
	headers.Set("User-Agent", "FoodRelay/1.0 - User alice")

	resp, err := NewClient().Get(context.Background(), &OutboundRequest{
		URL:     mustParse(t, server.URL),
		Headers: headers,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "FoodRelay/1.0 - User alice", gotAgent)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"products":[]}`, string(resp.Body))
	assert.False(t, resp.Truncated)
}

func TestClientGetDoesNotFollowRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	defer server.Close()

	resp, err := NewClient().Get(context.Background(), &OutboundRequest{URL: mustParse(t, server.URL)})
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/elsewhere", resp.Headers.Get("Location"))
}

func TestClientGetTruncatesLargeBodies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("a", maxResponseBodySize+10)))
	}))
	defer server.Close()

	resp, err := NewClient().Get(context.Background(), &OutboundRequest{URL: mustParse(t, server.URL)})
	require.NoError(t, err)

	assert.True(t, resp.Truncated)
	assert.Len(t, resp.Body, maxResponseBodySize)
}

func TestClientGetTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := NewClient().Get(context.Background(), &OutboundRequest{
		URL:     mustParse(t, server.URL),
		Timeout: 50 * time.Millisecond,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
