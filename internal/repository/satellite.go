package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/orbitdesk/orbitdesk/internal/model"
)

// ErrSatelliteNotFound is returned when no matching satellite row exists.
var ErrSatelliteNotFound = errors.New("satellite not found")

const satelliteColumns = `id, name, designation, orbit_altitude_km, resolution_m, is_active, created_at`

// CountSatellites returns the total number of catalog rows.
func (r *Repository) CountSatellites(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM satellites`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count satellites: %w", err)
	}
	return count, nil
}

// InsertSatellites bulk-inserts catalog rows. Conflicting designations
// are skipped, so two concurrent seeding passes cannot duplicate the
// catalog.
func (r *Repository) InsertSatellites(ctx context.Context, satellites []*model.Satellite) error {
	query := `
		INSERT INTO satellites (id, name, designation, orbit_altitude_km, resolution_m, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (designation) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, sat := range satellites {
		batch.Queue(query,
			sat.ID,
			sat.Name,
			sat.Designation,
			sat.OrbitAltitude,
			sat.Resolution,
			sat.IsActive,
			sat.CreatedAt,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range satellites {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert satellite: %w", err)
		}
	}

	return nil
}

// ListActiveSatellites returns all active catalog rows.
func (r *Repository) ListActiveSatellites(ctx context.Context) ([]*model.Satellite, error) {
	query := `SELECT ` + satelliteColumns + ` FROM satellites WHERE is_active`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active satellites: %w", err)
	}
	defer rows.Close()

	var satellites []*model.Satellite
	for rows.Next() {
		sat, err := scanSatelliteFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan satellite: %w", err)
		}
		satellites = append(satellites, sat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating satellites: %w", err)
	}

	return satellites, nil
}

// GetActiveSatellite retrieves a satellite only if it exists and is active.
func (r *Repository) GetActiveSatellite(ctx context.Context, id string) (*model.Satellite, error) {
	query := `SELECT ` + satelliteColumns + ` FROM satellites WHERE id = $1 AND is_active`

	sat, err := scanSatellite(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSatelliteNotFound
		}
		return nil, fmt.Errorf("failed to get satellite: %w", err)
	}

	return sat, nil
}

// scanSatellite scans a single row into a Satellite model.
func scanSatellite(row pgx.Row) (*model.Satellite, error) {
	var sat model.Satellite
	err := row.Scan(
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
	return &sat, nil
}

// scanSatelliteFromRows scans a row from pgx.Rows into a Satellite model.
func scanSatelliteFromRows(rows pgx.Rows) (*model.Satellite, error) {
	var sat model.Satellite
	err := rows.Scan(
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
	return &sat, nil
}
