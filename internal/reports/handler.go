package reports

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/inventory-api/internal/platform/httpx"
)

// Handler exposes report endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers report routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/inventoryreport", h.inventory)
}

func (h *Handler) inventory(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.GetInventoryReport(r.Context())
	if errors.Is(err, ErrNoReportData) {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "No report data available.")
		return
	}
	if err != nil {
		httpx.RespondError(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, rows)
}
