package categories

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/inventory-api/internal/platform/httpx"
)

func newTestRouter(repo Repository) http.Handler {
	h := NewHandler(nil, NewService(repo, nil))
	r := chi.NewRouter()
	r.Route("/api/categories", h.MountRoutes)
	return r
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHandlerCreateReturnsLocation(t *testing.T) {
	router := newTestRouter(newMemoryRepo())

	rr := serve(t, router, http.MethodPost, "/api/categories", `{"id":3,"type":"Tools"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, "/api/categories/3", rr.Header().Get("Location"))

	var got Category
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Equal(t, Category{ID: 3, Type: "Tools"}, got)

	rr = serve(t, router, http.MethodGet, "/api/categories/3", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"id":3,"type":"Tools"}`, rr.Body.String())
}

func TestHandlerValidationProblem(t *testing.T) {
	router := newTestRouter(newMemoryRepo())

	rr := serve(t, router, http.MethodPost, "/api/categories", `{"id":3}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))

	var problem httpx.ProblemDetail
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &problem))
	require.Contains(t, problem.Errors, "type")
}

func TestHandlerRejectsUnknownFields(t *testing.T) {
	router := newTestRouter(newMemoryRepo())

	rr := serve(t, router, http.MethodPost, "/api/categories", `{"id":3,"type":"Tools","colour":"red"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandlerUpdatePathMismatch(t *testing.T) {
	repo := newMemoryRepo()
	repo.rows[1] = Category{ID: 1, Type: "Hardware"}
	router := newTestRouter(repo)

	rr := serve(t, router, http.MethodPut, "/api/categories/1", `{"id":2,"type":"Other"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Hardware", repo.rows[1].Type)

	rr = serve(t, router, http.MethodPut, "/api/categories/1", `{"id":1,"type":"Other"}`)
	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Equal(t, "Other", repo.rows[1].Type)
}

func TestHandlerNotFound(t *testing.T) {
	router := newTestRouter(newMemoryRepo())

	rr := serve(t, router, http.MethodGet, "/api/categories/42", "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(t, router, http.MethodDelete, "/api/categories/42", "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(t, router, http.MethodGet, "/api/categories/abc", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)

	for _, target := range []string{"/api/categories/0", "/api/categories/-1"} {
		rr = serve(t, router, http.MethodGet, target, "")
		require.Equal(t, http.StatusNotFound, rr.Code, target)
	}
	rr = serve(t, router, http.MethodPut, "/api/categories/-1", `{"type":"Tools"}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandlerListEmptyArray(t *testing.T) {
	router := newTestRouter(newMemoryRepo())

	rr := serve(t, router, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `[]`, rr.Body.String())
}
