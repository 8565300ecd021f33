// Package entity provides the actors that move through the world.
package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/samdwyer/tilewalk/internal/collision"
)

// Actor is a moving box in the world. Its collider is owned here and
// replaced every tick with the resolver's output.
type Actor struct {
	ID     uuid.UUID
	Box    collision.Box
	Facing float64 // Degrees, 0 = right, 90 = down
	Swing  *Swing
	Symbol rune // Display symbol
}

// NewActor creates an actor with a width x height collider at (x, y).
func NewActor(x, y, width, height float64) (*Actor, error) {
	box, err := collision.NewBox(x, y, width, height)
	if err != nil {
		return nil, fmt.Errorf("new actor: %w", err)
	}
	return &Actor{
		ID:     uuid.New(),
		Box:    box,
		Swing:  NewSwing(),
		Symbol: '@',
	}, nil
}

// MoveTo places the actor's collider at (x, y).
func (a *Actor) MoveTo(x, y float64) {
	a.Box.X, a.Box.Y = x, y
}

// Position returns the top-left corner of the collider.
func (a *Actor) Position() (float64, float64) {
	return a.Box.X, a.Box.Y
}

// Center returns the centre of the collider.
func (a *Actor) Center() (float64, float64) {
	return a.Box.X + a.Box.Width/2, a.Box.Y + a.Box.Height/2
}

// Face turns the actor towards (dx, dy). A zero vector keeps the current facing.
func (a *Actor) Face(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	a.Facing = facingAngle(dx, dy)
	a.Swing.FaceAngle = a.Facing
}
