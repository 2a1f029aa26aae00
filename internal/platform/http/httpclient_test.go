package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Timeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		timeout  time.Duration
		expected time.Duration
	}{
		{name: "positive timeout kept", timeout: 30 * time.Second, expected: 30 * time.Second},
		{name: "zero means no timeout", timeout: 0, expected: 0},
		{name: "negative clamps to zero", timeout: -time.Second, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewHTTPClient(tt.timeout, "test")
			assert.Equal(t, tt.expected, c.Timeout)
			assert.IsType(t, &tracingTransport{}, c.Transport)
		})
	}
}

func TestTracingTransport_PassesThrough(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/responses", r.URL.Path)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewHTTPClient(5*time.Second, "test")
	resp, err := c.Post(srv.URL+"/v1/responses", "application/json", nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

type failingRoundTripper struct{ err error }

func (f failingRoundTripper) RoundTrip(*http.Request) (*http.Response, error) { return nil, f.err }

func TestTracingTransport_PropagatesError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("connection refused")
	tr := &tracingTransport{next: failingRoundTripper{err: sentinel}, component: "test"}

	req := httptest.NewRequest(http.MethodGet, "http://example.invalid/x", nil)
	resp, err := tr.RoundTrip(req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, sentinel)
}
