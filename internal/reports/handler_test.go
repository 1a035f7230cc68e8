package reports

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/inventory-api/internal/platform/httpx"
	"github.com/odyssey-erp/inventory-api/internal/shared"
)

func serveReport(t *testing.T, repo Repository) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Route("/api/reports", NewHandler(nil, NewService(repo, nil, nil)).MountRoutes)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/reports/inventoryreport", nil))
	return rr
}

func TestHandlerInventoryReport(t *testing.T) {
	rr := serveReport(t, &mockRepo{rows: []Row{acmeRow}})

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `[{"supplier_id":1,"supplier_name":"Acme","product_id":10,"stock_level":5,"reorder_level":2,"quantity":3}]`, rr.Body.String())
}

func TestHandlerInventoryReportEmpty(t *testing.T) {
	rr := serveReport(t, &mockRepo{})

	require.Equal(t, http.StatusNotFound, rr.Code)
	var problem httpx.ProblemDetail
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &problem))
	require.Equal(t, "No report data available.", problem.Detail)
}

func TestHandlerInventoryReportStorageFailure(t *testing.T) {
	rr := serveReport(t, &mockRepo{err: &shared.StorageError{Op: "report", Entity: "inventory", Err: errors.New("boom")}})

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var problem httpx.ProblemDetail
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &problem))
	require.NotEmpty(t, problem.IncidentID)
	require.NotContains(t, rr.Body.String(), "boom")
}
