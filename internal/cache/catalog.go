package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/orbitdesk/orbitdesk/internal/model"
)

const (
	// catalogKey is the Redis key holding the active satellite list.
	catalogKey = "catalog:active"
	// catalogTTL is the time-to-live for the cached catalog. The catalog
	// is immutable after seeding, so a short TTL is only a safety valve.
	catalogTTL = 5 * time.Minute
)

// GetActiveSatellites retrieves the cached active satellite list.
// Returns nil on a cache miss or a corrupted entry.
func (c *Cache) GetActiveSatellites(ctx context.Context) ([]*model.Satellite, error) {
	data, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		// Cache miss is not an error
		return nil, nil //nolint:nilerr
	}

	var satellites []*model.Satellite
	if err := json.Unmarshal(data, &satellites); err != nil {
		// Corrupted cache entry - treat as miss
		return nil, nil //nolint:nilerr
	}

	return satellites, nil
}

// SetActiveSatellites caches the active satellite list.
func (c *Cache) SetActiveSatellites(ctx context.Context, satellites []*model.Satellite) error {
	data, err := json.Marshal(satellites)
	if err != nil {
		return fmt.Errorf("marshal satellite list: %w", err)
	}

	return c.client.Set(ctx, catalogKey, data, catalogTTL).Err()
}
