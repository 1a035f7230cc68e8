package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/odyssey-erp/inventory-api/internal/shared"
)

// RespondError maps domain errors to HTTP responses using RFC7807.
// Storage failures are opaque to the caller; the incident id ties the response to the server log.
func RespondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var verr *shared.ValidationError
	switch {
	case errors.As(err, &verr):
		writeProblem(w, ProblemDetail{
			Title:  "Validation Failed",
			Status: http.StatusBadRequest,
			Detail: err.Error(),
			Errors: verr.Fields,
		})
	case errors.Is(err, shared.ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		incident := uuid.NewString()
		if logger != nil {
			logger.Error("request failed",
				slog.String("incident_id", incident),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("path", r.URL.Path),
				slog.Any("error", err),
			)
		}
		writeProblem(w, ProblemDetail{
			Title:      "Internal Error",
			Status:     http.StatusInternalServerError,
			IncidentID: incident,
		})
	}
}
