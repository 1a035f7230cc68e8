package roles

import (
	"log/slog"
	"net/http"

	"github.com/odyssey-erp/inventory-api/internal/platform/httpx"
)

// Handler manages role management endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.List(r.Context())
	if err != nil {
		httpx.RespondError(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, roles)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r)
	if err != nil {
		httpx.RespondError(w, r, h.logger, err)
		return
	}
	role, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, role)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var role Role
	if err := httpx.DecodeJSON(r, &role); err != nil {
		httpx.RespondError(w, r, h.logger, err)
		return
	}
	created, err := h.service.Create(r.Context(), role)
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
	var role Role
	if err := httpx.DecodeJSON(r, &role); err != nil {
		httpx.RespondError(w, r, h.logger, err)
		return
	}
	if err := httpx.CheckPathID(id, role.ID); err != nil {
		httpx.RespondError(w, r, h.logger, err)
		return
	}
	if err := h.service.Update(r.Context(), id, role); err != nil {
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
