package orders

import (
	"log/slog"
	"net/http"

	"github.com/odyssey-erp/inventory-api/internal/platform/httpx"
)

// Handler serves order endpoints as JSON.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		httpx.RespondError(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, orders)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r)
	if err != nil {
		httpx.RespondError(w, r, h.logger, err)
		return
	}
	order, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var order Order
	if err := httpx.DecodeJSON(r, &order); err != nil {
		httpx.RespondError(w, r, h.logger, err)
		return
	}
	created, err := h.service.Create(r.Context(), order)
	if err != nil {
		httpx.RespondError(w, r, h.logger, err)
		return
	}
	httpx.Created(w, httpx.Location(r, created.ID), created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r)
	if err != nil {
		httpx.RespondError(w, r, h.logger, err)
		return
	}
	var order Order
	if err := httpx.DecodeJSON(r, &order); err != nil {
		httpx.RespondError(w, r, h.logger, err)
		return
	}
	if err := httpx.CheckPathID(id, order.ID); err != nil {
		httpx.RespondError(w, r, h.logger, err)
		return
	}
	if err := h.service.Update(r.Context(), id, order); err != nil {
		httpx.RespondError(w, r, h.logger, err)
		return
	}
	httpx.NoContent(w)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r)
	if err != nil {
		httpx.RespondError(w, r, h.logger, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		httpx.RespondError(w, r, h.logger, err)
		return
	}
	httpx.NoContent(w)
}
