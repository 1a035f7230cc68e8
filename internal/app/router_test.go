package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/inventory-api/internal/observability"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func testRouter(pool Pinger) http.Handler {
	return NewRouter(RouterParams{
		Logger:  slog.New(slog.DiscardHandler),
		Config:  &Config{},
		Pool:    pool,
		Metrics: observability.NewMetrics(),
	})
}

func TestHealthz(t *testing.T) {
	rr := httptest.NewRecorder()
	testRouter(fakePinger{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	testRouter(fakePinger{err: errors.New("connection refused")}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "unavailable", body["status"])
}

func TestUnknownRouteIsProblem(t *testing.T) {
	rr := httptest.NewRecorder()
	testRouter(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/warehouses", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
}

func TestMetricsEndpoint(t *testing.T) {
	rr := httptest.NewRecorder()
	testRouter(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "go_goroutines")
}

func TestContainerHandlerMountsResources(t *testing.T) {
	cfg := &Config{}
	logger := slog.New(slog.DiscardHandler)
	c := &Container{Config: cfg, Logger: logger, Services: NewServices(nil, nil, cfg, logger, nil)}
	h := c.Handler()
	require.NotNil(t, c.Metrics)

	for _, path := range []string{"/api/categories/abc", "/api/suppliers/abc", "/api/products/abc", "/api/orders/abc", "/api/roles/abc", "/api/users/abc"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusBadRequest, rr.Code, path)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/api/categories", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
