package collision

import (
	"errors"
	"fmt"
)

// ErrInvalidBoxSize is returned when a box is created with a non-positive width or height.
var ErrInvalidBoxSize = errors.New("box width and height must be positive")

// Box is an axis-aligned rectangle in world units, positioned by its top-left corner.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// NewBox creates a box, rejecting non-positive sizes.
func NewBox(x, y, width, height float64) (Box, error) {
	if width <= 0 || height <= 0 {
		return Box{}, fmt.Errorf("new box %vx%v: %w", width, height, ErrInvalidBoxSize)
	}
	return Box{X: x, Y: y, Width: width, Height: height}, nil
}

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.Width }

// Bottom returns the y coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.Height }

// At returns a copy of the box moved to (x, y).
func (b Box) At(x, y float64) Box {
	b.X, b.Y = x, y
	return b
}

// Overlaps reports whether the box overlaps the rectangle at (x, y) of the given size.
// Boxes that only share an edge do not overlap.
func (b Box) Overlaps(x, y, width, height float64) bool {
	return b.X < x+width && b.Right() > x && b.Y < y+height && b.Bottom() > y
}
