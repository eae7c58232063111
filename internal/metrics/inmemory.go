package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	LoginSuccesses      uint64
	LoginFailures       map[string]uint64
	GoogleVerifyCount   uint64
	GoogleVerifyTotalNs int64
	CatalogCacheHits    uint64
	CatalogCacheMisses  uint64
	CatalogSeedings     uint64
	BookingsCreated     map[string]uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	loginSuccesses      uint64
	googleVerifyCount   uint64
	googleVerifyTotalNs int64
	catalogCacheHits    uint64
	catalogCacheMisses  uint64
	catalogSeedings     uint64

	mu              sync.Mutex
	loginFailures   map[string]uint64
	bookingsCreated map[string]uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		loginFailures:   make(map[string]uint64),
		bookingsCreated: make(map[string]uint64),
	}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	failures := make(map[string]uint64, len(m.loginFailures))
	for k, v := range m.loginFailures {
		failures[k] = v
	}
	bookings := make(map[string]uint64, len(m.bookingsCreated))
	for k, v := range m.bookingsCreated {
		bookings[k] = v
	}
	m.mu.Unlock()

	return Snapshot{
		LoginSuccesses:      atomic.LoadUint64(&m.loginSuccesses),
		LoginFailures:       failures,
		GoogleVerifyCount:   atomic.LoadUint64(&m.googleVerifyCount),
		GoogleVerifyTotalNs: atomic.LoadInt64(&m.googleVerifyTotalNs),
		CatalogCacheHits:    atomic.LoadUint64(&m.catalogCacheHits),
		CatalogCacheMisses:  atomic.LoadUint64(&m.catalogCacheMisses),
		CatalogSeedings:     atomic.LoadUint64(&m.catalogSeedings),
		BookingsCreated:     bookings,
	}
}

// IncLoginSuccess increments the successful login counter.
func (m *InMemoryRecorder) IncLoginSuccess() {
	atomic.AddUint64(&m.loginSuccesses, 1)
}

// IncLoginFailure increments the failed login counter for a reason.
func (m *InMemoryRecorder) IncLoginFailure(reason string) {
	m.mu.Lock()
	m.loginFailures[reason]++
	m.mu.Unlock()
}

// ObserveGoogleVerifyDuration records a Google verification duration.
func (m *InMemoryRecorder) ObserveGoogleVerifyDuration(duration time.Duration) {
	atomic.AddUint64(&m.googleVerifyCount, 1)
	atomic.AddInt64(&m.googleVerifyTotalNs, duration.Nanoseconds())
}

// IncCatalogCacheHit increments the catalog cache hit counter.
func (m *InMemoryRecorder) IncCatalogCacheHit() {
	atomic.AddUint64(&m.catalogCacheHits, 1)
}

// IncCatalogCacheMiss increments the catalog cache miss counter.
func (m *InMemoryRecorder) IncCatalogCacheMiss() {
	atomic.AddUint64(&m.catalogCacheMisses, 1)
}

// IncCatalogSeeded increments the catalog seeding counter.
func (m *InMemoryRecorder) IncCatalogSeeded() {
	atomic.AddUint64(&m.catalogSeedings, 1)
}

// IncBookingCreated increments the booking counter for a booking type.
func (m *InMemoryRecorder) IncBookingCreated(bookingType string) {
	m.mu.Lock()
	m.bookingsCreated[bookingType]++
	m.mu.Unlock()
}
