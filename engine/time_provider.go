package engine

import "time"

// Clock stamps presented frames and schedules ticks
type Clock interface {
	Now() time.Time
	// After delivers the clock time once d has elapsed
	After(d time.Duration) <-chan time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// After waits on a runtime timer
func (p *TimeProvider) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
