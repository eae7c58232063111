package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/orbitdesk/orbitdesk/internal/auth"
	"github.com/orbitdesk/orbitdesk/internal/handler/dto"
	"github.com/orbitdesk/orbitdesk/internal/model"
	"github.com/orbitdesk/orbitdesk/internal/service"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	svc    *service.BookingService
	logger *slog.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc *service.BookingService, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /bookings.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.SatelliteID == "" {
		writeError(w, http.StatusBadRequest, "MISSING_SATELLITE_ID", "Satellite ID is required")
		return
	}

	input := service.CreateBookingInput{
		SatelliteID:   req.SatelliteID,
		ObjectName:    req.ObjectName,
		ObjectType:    req.ObjectType,
		BookingType:   model.BookingType(req.BookingType),
		ScheduledTime: req.ScheduledTime,
		Duration:      req.Duration,
		Notes:         req.Notes,
	}

	booking, err := h.svc.CreateBooking(r.Context(), identity.UserID, input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("booking_created",
		"booking_id", booking.ID,
		"user_id", identity.UserID,
		"satellite_id", booking.SatelliteID,
		"booking_type", string(booking.BookingType),
	)

	writeJSON(w, http.StatusCreated, dto.ToBookingResponse(booking))
}

// List handles GET /bookings.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	bookings, err := h.svc.ListBookings(r.Context(), identity.UserID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBookingListResponse(bookings))
}

// Get handles GET /bookings/{id}.
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Booking ID is required")
		return
	}

	booking, err := h.svc.GetBooking(r.Context(), id, identity.UserID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBookingResponse(booking))
}

// handleServiceError maps booking service errors to HTTP responses.
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidBookingType):
		writeError(w, http.StatusBadRequest, "INVALID_BOOKING_TYPE", "Booking type must be photograph or track")
	case errors.Is(err, service.ErrMissingObjectName):
		writeError(w, http.StatusBadRequest, "MISSING_OBJECT_NAME", "Object name is required")
	case errors.Is(err, service.ErrMissingObjectType):
		writeError(w, http.StatusBadRequest, "MISSING_OBJECT_TYPE", "Object type is required")
	case errors.Is(err, service.ErrSatelliteNotFound):
		writeError(w, http.StatusNotFound, "SATELLITE_NOT_FOUND", "Satellite not found or not active")
	case errors.Is(err, service.ErrBookingNotFound):
		writeError(w, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
