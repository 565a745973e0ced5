package parallax

import "time"

// Clock supplies monotonic time since an arbitrary epoch. Overlay phase
// timeouts are measured against it.
type Clock interface {
	Now() time.Duration
}

// systemClock measures time since its creation using the monotonic reading
// carried by time.Time.
type systemClock struct {
	start time.Time
}

// NewSystemClock returns a Clock whose epoch is the moment of the call.
func NewSystemClock() Clock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock is a Clock that only moves when told to. Useful for tests and
// for deterministic scripted runs.
type ManualClock struct {
	now time.Duration
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration { return c.now }

// Advance moves the clock forward by d. Negative values are ignored so the
// clock stays monotonic.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}
