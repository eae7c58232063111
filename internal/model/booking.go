package model

import "time"

// BookingType is the kind of session requested against a satellite.
type BookingType string

const (
	BookingTypePhotograph BookingType = "photograph"
	BookingTypeTrack      BookingType = "track"
)

// IsValid checks if the booking type is one of the enumerated values.
func (t BookingType) IsValid() bool {
	return t == BookingTypePhotograph || t == BookingTypeTrack
}

// BookingStatusPending is the only status the system ever writes.
// Bookings are created pending and no operation transitions them.
const BookingStatusPending = "pending"

// Booking is a user's request to photograph or track an object using a
// satellite. Immutable after creation.
type Booking struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	SatelliteID   string      `json:"satellite_id"`
	ObjectName    string      `json:"object_name"`
	ObjectType    string      `json:"object_type"`
	BookingType   BookingType `json:"booking_type"`
	Status        string      `json:"status"`
	ScheduledTime *time.Time  `json:"scheduled_time"`
	Duration      *int        `json:"duration"` // minutes
	Notes         *string     `json:"notes"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	// Satellite is populated by queries that join the catalog row.
	Satellite *Satellite `json:"satellite,omitempty"`
}
