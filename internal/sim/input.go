package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Input is the set of direction keys held during one tick.
type Input struct {
	Left, Right, Up, Down bool
}

// Idle returns true if no direction is held.
func (in Input) Idle() bool {
	return in.Left == in.Right && in.Up == in.Down
}

// Displacement returns the movement for one tick at the given speed.
// Opposite keys cancel, and diagonal moves are scaled by √½ per axis so the
// actor does not move faster diagonally.
func (in Input) Displacement(speed float64) mgl64.Vec2 {
	var d mgl64.Vec2
	if in.Left {
		d[0] -= speed
	}
	if in.Right {
		d[0] += speed
	}
	if in.Up {
		d[1] -= speed
	}
	if in.Down {
		d[1] += speed
	}
	if d.X() != 0 && d.Y() != 0 {
		d = d.Mul(math.Sqrt2 / 2)
	}
	return d
}
