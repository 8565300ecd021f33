// Package game provides the main loop that drives a session from terminal input.
package game

// State represents the current run state.
type State int

const (
	// StateRunning is the default mode: ticks advance and input moves the actor.
	StateRunning State = iota
	// StatePaused freezes the simulation; painting still works.
	StatePaused
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}
