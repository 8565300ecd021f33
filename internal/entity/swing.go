package entity

import "math"

const (
	// DefaultSwingTime is the duration of one swing in seconds.
	DefaultSwingTime = 1.0
	// DefaultSwingArc is the total arc of a swing in degrees.
	DefaultSwingArc = 45.0
)

// Swing animates a weapon arc centred on FaceAngle.
type Swing struct {
	FaceAngle float64 // Degrees
	TotalTime float64 // Seconds
	ArcSize   float64 // Degrees

	swinging bool
	t        float64
	angle    float64
}

// NewSwing creates an idle swing with the default timing and arc.
func NewSwing() *Swing {
	s := &Swing{TotalTime: DefaultSwingTime, ArcSize: DefaultSwingArc}
	s.update()
	return s
}

// Swinging returns true while a swing is in progress.
func (s *Swing) Swinging() bool {
	return s.swinging
}

// Angle returns the current weapon angle in degrees.
func (s *Swing) Angle() float64 {
	return s.angle
}

// Start begins a swing from the start of the arc.
func (s *Swing) Start() {
	s.swinging = true
	s.t = 0
	s.update()
}

// Step advances the swing by dt seconds. Once the swing time has passed the
// swing stops and the angle returns to the start of the arc.
func (s *Swing) Step(dt float64) {
	s.t += dt
	if s.t > s.TotalTime {
		s.t = 0
		s.swinging = false
	}
	s.update()
}

func (s *Swing) update() {
	s.angle = easeInOutQuad(
		s.t/s.TotalTime,
		s.FaceAngle-0.5*s.ArcSize,
		s.FaceAngle+0.5*s.ArcSize,
		1.0,
	)
}

// easeInOutQuad interpolates from -> to over duration, accelerating then decelerating.
func easeInOutQuad(t, from, to, duration float64) float64 {
	c := to - from
	t /= duration / 2
	if t < 1 {
		return c/2*t*t + from
	}
	t--
	return -c/2*(t*(t-2)-1) + from
}

// facingAngle returns the direction of (dx, dy) in degrees in [0, 360).
func facingAngle(dx, dy float64) float64 {
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}
