package host

import "time"

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// Clock is a fixed-step simulation clock.
type Clock struct {
	tickRate int
}

// NewClock returns a clock stepping tickRate times per second.
// Non-positive rates fall back to DefaultTickRate.
func NewClock(tickRate int) Clock {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return Clock{tickRate: tickRate}
}

// TickRate returns ticks per second.
func (c Clock) TickRate() int {
	return c.tickRate
}

// SecondsPerTick returns the length of one tick in seconds.
func (c Clock) SecondsPerTick() float32 {
	return 1 / float32(c.tickRate)
}

// TickDuration returns the length of one tick.
func (c Clock) TickDuration() time.Duration {
	return time.Second / time.Duration(c.tickRate)
}
