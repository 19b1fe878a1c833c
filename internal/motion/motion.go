// Package motion holds the kinematic state of a single ball inside a rectangular
// field.
//
// A State is driven once per frame by an external loop:
//
//  1. The first Update after construction or Reset only records the acceleration
//     sample (priming), so the first real step has a previous sample to work from.
//
//  2. Every later Update with a positive dt integrates position and velocity from
//     the previous and the new acceleration, then clamps the ball back into the
//     field, stopping it dead against any wall it reached.
//
// A State is not safe for concurrent use.
package motion

import "github.com/cxd309/tilt-engine/internal/kinematics"

// State is the position, velocity and acceleration history of one ball.
// The field and ball size are fixed at construction.
type State struct {
	width, height, size float64
	integrator          kinematics.Integrator

	x, y   float64
	vx, vy float64
	ax, ay float64 // last acceleration sample

	primed   bool
	contacts Contact
}

// Option configures a State at construction.
type Option func(*State)

// WithIntegrator replaces the default Hermite step scheme.
func WithIntegrator(i kinematics.Integrator) Option {
	return func(s *State) {
		if i != nil {
			s.integrator = i
		}
	}
}

// New returns a State for a field of width x height holding a ball of the given
// size, centered and at rest. Sizes are not validated; size must not exceed either
// extent.
func New(width, height, size float64, opts ...Option) *State {
	s := &State{
		width:      width,
		height:     height,
		size:       size,
		integrator: kinematics.Hermite{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset centers the ball, stops it and clears the acceleration history.
// The next Update primes the state again.
func (s *State) Reset() {
	s.x = (s.width - s.size) / 2
	s.y = (s.height - s.size) / 2
	s.vx, s.vy = 0, 0
	s.ax, s.ay = 0, 0
	s.primed = false
	s.contacts = 0
}

// Update feeds one acceleration sample taken dt after the previous one.
// An unprimed state only stores the sample. Non-positive dt is ignored.
func (s *State) Update(ax, ay, dt float64) {
	if !s.primed {
		s.ax, s.ay = ax, ay
		s.primed = true
		return
	}
	if dt <= 0 {
		return
	}

	dx, vx := s.integrator.Step(s.vx, s.ax, ax, dt)
	dy, vy := s.integrator.Step(s.vy, s.ay, ay, dt)

	s.x += dx
	s.y += dy
	s.vx, s.vy = vx, vy
	s.ax, s.ay = ax, ay

	s.clamp()
}

// clamp keeps the ball inside the field and records which walls stopped it.
func (s *State) clamp() {
	var hx, hy Contact
	s.x, s.vx, s.ax, hx = clampAxis(s.x, s.vx, s.ax, s.width-s.size)
	s.y, s.vy, s.ay, hy = clampAxis(s.y, s.vy, s.ay, s.height-s.size)
	s.contacts = hx.horizontal() | hy.vertical()
}

// Position returns the ball's reference corner.
func (s *State) Position() (x, y float64) { return s.x, s.y }

// Velocity returns the ball's velocity.
func (s *State) Velocity() (vx, vy float64) { return s.vx, s.vy }

// Primed reports whether the acceleration history has been seeded.
func (s *State) Primed() bool { return s.primed }

// Contacts returns the walls clamped during the most recent integration step.
func (s *State) Contacts() Contact { return s.contacts }

// Field returns the immutable field width, height and ball size.
func (s *State) Field() (width, height, size float64) { return s.width, s.height, s.size }

// Snapshot is a read-only copy of the externally visible state.
type Snapshot struct {
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	VX       float64  `json:"vx"`
	VY       float64  `json:"vy"`
	Primed   bool     `json:"primed"`
	Contacts []string `json:"contacts,omitempty"`
}

// Snapshot captures the current state for logging or rendering.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		X:        s.x,
		Y:        s.y,
		VX:       s.vx,
		VY:       s.vy,
		Primed:   s.primed,
		Contacts: s.contacts.Names(),
	}
}
