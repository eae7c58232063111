package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncLoginSuccess is a no-op.
func (n *NoopRecorder) IncLoginSuccess() {}

// IncLoginFailure is a no-op.
func (n *NoopRecorder) IncLoginFailure(reason string) {}

// ObserveGoogleVerifyDuration is a no-op.
func (n *NoopRecorder) ObserveGoogleVerifyDuration(duration time.Duration) {}

// IncCatalogCacheHit is a no-op.
func (n *NoopRecorder) IncCatalogCacheHit() {}

// IncCatalogCacheMiss is a no-op.
func (n *NoopRecorder) IncCatalogCacheMiss() {}

// IncCatalogSeeded is a no-op.
func (n *NoopRecorder) IncCatalogSeeded() {}

// IncBookingCreated is a no-op.
func (n *NoopRecorder) IncBookingCreated(bookingType string) {}
