package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/orbitdesk/orbitdesk/internal/model"
)

// ErrBookingNotFound is returned when no booking matches the query.
// A booking owned by another user is indistinguishable from an absent one.
var ErrBookingNotFound = errors.New("booking not found")

const bookingJoinQuery = `
	SELECT b.id, b.user_id, b.satellite_id, b.object_name, b.object_type,
	       b.booking_type, b.status, b.scheduled_time, b.duration_minutes,
	       b.notes, b.created_at, b.updated_at,
	       s.id, s.name, s.designation, s.orbit_altitude_km, s.resolution_m,
	       s.is_active, s.created_at
	FROM bookings b
	JOIN satellites s ON s.id = b.satellite_id
`

// CreateBooking inserts a new booking into the database.
func (r *Repository) CreateBooking(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, satellite_id, object_name, object_type, booking_type, status, scheduled_time, duration_minutes, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.SatelliteID,
		booking.ObjectName,
		booking.ObjectType,
		booking.BookingType,
		booking.Status,
		booking.ScheduledTime,
		booking.Duration,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

// GetBookingForUser retrieves a booking by id, joined with its satellite,
// only if it is owned by the given user. Ownership is enforced by
// filtering rather than a separate authorization check.
func (r *Repository) GetBookingForUser(ctx context.Context, id, userID string) (*model.Booking, error) {
	query := bookingJoinQuery + ` WHERE b.id = $1 AND b.user_id = $2`

	booking, err := scanBookingWithSatellite(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

// ListBookingsByUser returns all bookings owned by a user, newest first,
// each joined with its satellite.
func (r *Repository) ListBookingsByUser(ctx context.Context, userID string) ([]*model.Booking, error) {
	query := bookingJoinQuery + ` WHERE b.user_id = $1 ORDER BY b.created_at DESC, b.id DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		booking, err := scanBookingWithSatellite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// scanBookingWithSatellite scans a joined booking+satellite row.
func scanBookingWithSatellite(row pgx.Row) (*model.Booking, error) {
	var booking model.Booking
	var sat model.Satellite

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.SatelliteID,
		&booking.ObjectName,
		&booking.ObjectType,
		&booking.BookingType,
		&booking.Status,
		&booking.ScheduledTime,
		&booking.Duration,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&sat.ID,
		&sat.Name,
		&sat.Designation,
		&sat.OrbitAltitude,
		&sat.Resolution,
		&sat.IsActive,
		&sat.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Satellite = &sat
	return &booking, nil
}
