package model

import "time"

// Satellite is a catalog entry. Rows are inserted once by the seeding
// pass and are read-only reference data afterwards.
type Satellite struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Designation   string    `json:"designation"`
	OrbitAltitude float64   `json:"orbit_altitude"` // km
	Resolution    float64   `json:"resolution"`     // m/pixel
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}
