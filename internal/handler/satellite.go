package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/orbitdesk/orbitdesk/internal/handler/dto"
	"github.com/orbitdesk/orbitdesk/internal/service"
)

// SatelliteHandler handles HTTP requests for the satellite catalog.
type SatelliteHandler struct {
	svc    *service.CatalogService
	logger *slog.Logger
}

// NewSatelliteHandler creates a new SatelliteHandler.
func NewSatelliteHandler(svc *service.CatalogService, logger *slog.Logger) *SatelliteHandler {
	return &SatelliteHandler{
		svc:    svc,
		logger: logger,
	}
}

// Nearest handles GET /satellites/nearest.
// The selection is uniform random sampling over active satellites, not
// a proximity computation.
func (h *SatelliteHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	limit := service.DefaultNearestLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "INVALID_LIMIT", "Limit must be a positive integer")
			return
		}
		limit = parsed
	}

	satellites, err := h.svc.NearestSatellites(r.Context(), limit)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSatelliteListResponse(satellites))
}

// handleServiceError maps catalog service errors to HTTP responses.
func (h *SatelliteHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidLimit):
		writeError(w, http.StatusBadRequest, "INVALID_LIMIT", "Limit must be a positive integer")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
