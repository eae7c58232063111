package service

import (
	"context"
	"errors"
	"time"

	"github.com/orbitdesk/orbitdesk/internal/metrics"
	"github.com/orbitdesk/orbitdesk/internal/model"
	"github.com/orbitdesk/orbitdesk/internal/repository"
)

// Booking service errors.
var (
	ErrInvalidBookingType = errors.New("booking type must be photograph or track")
	ErrMissingObjectName  = errors.New("object name is required")
	ErrMissingObjectType  = errors.New("object type is required")
	ErrSatelliteNotFound  = errors.New("satellite not found or not active")
	ErrBookingNotFound    = errors.New("booking not found")
)

// BookingService handles booking creation and retrieval.
type BookingService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewBookingService creates a new BookingService.
func NewBookingService(repo *repository.Repository, recorder metrics.Recorder) *BookingService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &BookingService{repo: repo, metrics: recorder}
}

// CreateBookingInput defines input for creating a booking.
type CreateBookingInput struct {
	SatelliteID   string
	ObjectName    string
	ObjectType    string
	BookingType   model.BookingType
	ScheduledTime *time.Time
	Duration      *int
	Notes         *string
}

// CreateBooking persists a new booking owned by the caller. The
// referenced satellite must exist and be active at creation time.
// Status is fixed to pending and never transitioned afterwards.
func (s *BookingService) CreateBooking(ctx context.Context, userID string, input CreateBookingInput) (*model.Booking, error) {
	if input.ObjectName == "" {
		return nil, ErrMissingObjectName
	}
	if input.ObjectType == "" {
		return nil, ErrMissingObjectType
	}
	if !input.BookingType.IsValid() {
		return nil, ErrInvalidBookingType
	}

	satellite, err := s.repo.GetActiveSatellite(ctx, input.SatelliteID)
	if err != nil {
		if errors.Is(err, repository.ErrSatelliteNotFound) {
			return nil, ErrSatelliteNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	booking := &model.Booking{
		ID:            newID(),
		UserID:        userID,
		SatelliteID:   satellite.ID,
		ObjectName:    input.ObjectName,
		ObjectType:    input.ObjectType,
		BookingType:   input.BookingType,
		Status:        model.BookingStatusPending,
		ScheduledTime: input.ScheduledTime,
		Duration:      input.Duration,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	booking.Satellite = satellite
	s.metrics.IncBookingCreated(string(input.BookingType))

	return booking, nil
}

// ListBookings returns the caller's bookings, newest first.
func (s *BookingService) ListBookings(ctx context.Context, userID string) ([]*model.Booking, error) {
	return s.repo.ListBookingsByUser(ctx, userID)
}

// GetBooking returns one booking if it exists and is owned by the
// caller. A booking owned by someone else reports not-found.
func (s *BookingService) GetBooking(ctx context.Context, id, userID string) (*model.Booking, error) {
	booking, err := s.repo.GetBookingForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}
