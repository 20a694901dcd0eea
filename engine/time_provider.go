package engine

import "time"

// TimeProvider supplies wall-clock readings to the frame loop
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the monotonic system clock
type RealTimeProvider struct{}

// NewTimeProvider creates a monotonic time provider
func NewTimeProvider() *RealTimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
