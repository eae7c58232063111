package dto

import (
	"time"

	"github.com/orbitdesk/orbitdesk/internal/model"
)

// CreateBookingRequest represents the request body for creating a booking.
type CreateBookingRequest struct {
	ObjectName    string     `json:"object_name"`
	ObjectType    string     `json:"object_type"`
	BookingType   string     `json:"booking_type"`
	SatelliteID   string     `json:"satellite_id"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	Duration      *int       `json:"duration,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}

// SatelliteResponse represents a satellite in API responses.
type SatelliteResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Designation   string  `json:"designation"`
	OrbitAltitude float64 `json:"orbit_altitude"`
	Resolution    float64 `json:"resolution"`
	IsActive      bool    `json:"is_active"`
}

// BookingResponse represents a booking joined with its satellite.
type BookingResponse struct {
	ID            string            `json:"id"`
	ObjectName    string            `json:"object_name"`
	ObjectType    string            `json:"object_type"`
	BookingType   string            `json:"booking_type"`
	Status        string            `json:"status"`
	ScheduledTime *time.Time        `json:"scheduled_time"`
	Duration      *int              `json:"duration"`
	Notes         *string           `json:"notes"`
	CreatedAt     time.Time         `json:"created_at"`
	Satellite     SatelliteResponse `json:"satellite"`
}

// ToSatelliteResponse converts a Satellite model to SatelliteResponse DTO.
func ToSatelliteResponse(sat *model.Satellite) SatelliteResponse {
	return SatelliteResponse{
		ID:            sat.ID,
		Name:          sat.Name,
		Designation:   sat.Designation,
		OrbitAltitude: sat.OrbitAltitude,
		Resolution:    sat.Resolution,
		IsActive:      sat.IsActive,
	}
}

// ToSatelliteListResponse converts a slice of Satellite models.
func ToSatelliteListResponse(satellites []*model.Satellite) []SatelliteResponse {
	responses := make([]SatelliteResponse, len(satellites))
	for i, sat := range satellites {
		responses[i] = ToSatelliteResponse(sat)
	}
	return responses
}

// ToBookingResponse converts a Booking model to BookingResponse DTO.
// The booking must carry its joined satellite.
func ToBookingResponse(booking *model.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            booking.ID,
		ObjectName:    booking.ObjectName,
		ObjectType:    booking.ObjectType,
		BookingType:   string(booking.BookingType),
		Status:        booking.Status,
		ScheduledTime: booking.ScheduledTime,
		Duration:      booking.Duration,
		Notes:         booking.Notes,
		CreatedAt:     booking.CreatedAt,
	}
	if booking.Satellite != nil {
		resp.Satellite = ToSatelliteResponse(booking.Satellite)
	}
	return resp
}

// ToBookingListResponse converts a slice of Booking models.
func ToBookingListResponse(bookings []*model.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = ToBookingResponse(booking)
	}
	return responses
}
