package sim

import "time"

const (
	// DefaultTickRate is the number of simulation ticks per second.
	DefaultTickRate = 60
	// DefaultMaxCatchUp caps the ticks run for a single frame after a stall.
	DefaultMaxCatchUp = 5
)

// Clock converts elapsed wall time into a whole number of fixed-length ticks,
// carrying the remainder into the next frame.
type Clock struct {
	step       time.Duration
	maxCatchUp int
	acc        time.Duration
}

// NewClock creates a clock running tickRate ticks per second. Values <= 0 use the defaults.
func NewClock(tickRate, maxCatchUp int) *Clock {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	if maxCatchUp <= 0 {
		maxCatchUp = DefaultMaxCatchUp
	}
	return &Clock{
		step:       time.Second / time.Duration(tickRate),
		maxCatchUp: maxCatchUp,
	}
}

// Step returns the length of one tick.
func (c *Clock) Step() time.Duration {
	return c.step
}

// Advance adds elapsed time and returns how many ticks should run now.
// Time beyond the catch-up cap is dropped instead of replayed.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		c.acc += elapsed
	}
	ticks := int(c.acc / c.step)
	if ticks > c.maxCatchUp {
		ticks = c.maxCatchUp
		c.acc = 0
		return ticks
	}
	c.acc -= time.Duration(ticks) * c.step
	return ticks
}
