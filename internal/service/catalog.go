package service

import (
	"context"
	"errors"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/orbitdesk/orbitdesk/internal/cache"
	"github.com/orbitdesk/orbitdesk/internal/metrics"
	"github.com/orbitdesk/orbitdesk/internal/model"
	"github.com/orbitdesk/orbitdesk/internal/repository"
)

// ErrInvalidLimit is returned for a non-positive satellite limit.
var ErrInvalidLimit = errors.New("limit must be positive")

// DefaultNearestLimit is used when no limit query parameter is supplied.
const DefaultNearestLimit = 3

// CatalogService serves the satellite catalog.
type CatalogService struct {
	repo    *repository.Repository
	cache   *cache.Cache
	metrics metrics.Recorder
	seeded  atomic.Bool
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo *repository.Repository, cacheClient *cache.Cache, recorder metrics.Recorder) *CatalogService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &CatalogService{
		repo:    repo,
		cache:   cacheClient,
		metrics: recorder,
	}
}

// NearestSatellites returns up to limit active satellites, selected
// uniformly at random. Despite the operation's name there is no
// proximity computation; the selection is documented random sampling.
func (s *CatalogService) NearestSatellites(ctx context.Context, limit int) ([]*model.Satellite, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	active, err := s.activeSatellites(ctx)
	if err != nil {
		return nil, err
	}

	return randomSample(active, limit), nil
}

// ensureSeeded inserts the fixed catalog on first access to an empty
// table. The designation unique index makes a concurrent double-seed
// converge on one catalog.
func (s *CatalogService) ensureSeeded(ctx context.Context) error {
	if s.seeded.Load() {
		return nil
	}

	count, err := s.repo.CountSatellites(ctx)
	if err != nil {
		return err
	}

	if count == 0 {
		now := time.Now().UTC()
		satellites := make([]*model.Satellite, 0, len(satelliteSeed))
		for _, seed := range satelliteSeed {
			satellites = append(satellites, &model.Satellite{
				ID:            newID(),
				Name:          seed.name,
				Designation:   seed.designation,
				OrbitAltitude: seed.altitudeKm,
				Resolution:    seed.resolutionM,
				IsActive:      true,
				CreatedAt:     now,
			})
		}

		if err := s.repo.InsertSatellites(ctx, satellites); err != nil {
			return err
		}
		s.metrics.IncCatalogSeeded()
	}

	s.seeded.Store(true)
	return nil
}

// activeSatellites returns the active catalog, cache first.
func (s *CatalogService) activeSatellites(ctx context.Context) ([]*model.Satellite, error) {
	if s.cache != nil {
		if cached, _ := s.cache.GetActiveSatellites(ctx); cached != nil {
			s.metrics.IncCatalogCacheHit()
			return cached, nil
		}
		s.metrics.IncCatalogCacheMiss()
	}

	active, err := s.repo.ListActiveSatellites(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && len(active) > 0 {
		_ = s.cache.SetActiveSatellites(ctx, active)
	}

	return active, nil
}

// randomSample returns a uniformly random subset of size min(limit, len).
func randomSample(satellites []*model.Satellite, limit int) []*model.Satellite {
	if limit > len(satellites) {
		limit = len(satellites)
	}

	shuffled := make([]*model.Satellite, len(satellites))
	copy(shuffled, satellites)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:limit]
}
