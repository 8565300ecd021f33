package game

import (
	"time"

	"github.com/samdwyer/tilewalk/internal/ui"
)

// DefaultFrameRate is how often the screen is redrawn.
const DefaultFrameRate = 30

// Config holds host options that are not part of the world definition.
type Config struct {
	// FrameRate is the number of redraws per second. Simulation ticks run at
	// the world's own tick rate regardless.
	FrameRate int
	// HoldWindow is how long an arrow key counts as held after its last repeat.
	HoldWindow time.Duration
}

// withDefaults fills in zero fields.
func (c Config) withDefaults() Config {
	if c.FrameRate <= 0 {
		c.FrameRate = DefaultFrameRate
	}
	if c.HoldWindow <= 0 {
		c.HoldWindow = ui.DefaultHoldWindow
	}
	return c
}
