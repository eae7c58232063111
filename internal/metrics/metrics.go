// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Auth metrics
	IncLoginSuccess()
	IncLoginFailure(reason string) // reason: "invalid_token", "audience", "provider"
	ObserveGoogleVerifyDuration(duration time.Duration)

	// Catalog metrics
	IncCatalogCacheHit()
	IncCatalogCacheMiss()
	IncCatalogSeeded()

	// Booking metrics
	IncBookingCreated(bookingType string)
}
