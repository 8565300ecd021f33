package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tilewalk/internal/sim"
)

// DefaultHoldWindow is how long a direction stays held after its last key event.
// Terminals report presses and auto-repeats but no releases.
const DefaultHoldWindow = 180 * time.Millisecond

type direction int

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown
	dirCount
)

// KeyHold turns key press events into held-direction input for the simulation.
type KeyHold struct {
	window time.Duration
	until  [dirCount]time.Time
}

// NewKeyHold creates a tracker. A non-positive window uses DefaultHoldWindow.
func NewKeyHold(window time.Duration) *KeyHold {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &KeyHold{window: window}
}

// Press records a key event at now. It returns false for keys that are not directions.
func (k *KeyHold) Press(key tcell.Key, now time.Time) bool {
	var d direction
	switch key {
	case tcell.KeyLeft:
		d = dirLeft
	case tcell.KeyRight:
		d = dirRight
	case tcell.KeyUp:
		d = dirUp
	case tcell.KeyDown:
		d = dirDown
	default:
		return false
	}
	k.until[d] = now.Add(k.window)
	// A press in one direction releases the opposite one
	k.until[d^1] = time.Time{}
	return true
}

// Input returns the directions held at now.
func (k *KeyHold) Input(now time.Time) sim.Input {
	return sim.Input{
		Left:  now.Before(k.until[dirLeft]),
		Right: now.Before(k.until[dirRight]),
		Up:    now.Before(k.until[dirUp]),
		Down:  now.Before(k.until[dirDown]),
	}
}

// Release drops all held directions.
func (k *KeyHold) Release() {
	k.until = [dirCount]time.Time{}
}
