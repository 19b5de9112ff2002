// pkg/engine/controls.go
package engine

import (
	"math"

	"github.com/opd-ai/go-orbit/pkg/event"
)

// Control tuning constants
const (
	// RotationRate is how fast held rotation keys spin the player,
	// in radians per second of real time.
	RotationRate = 3.0
	// ThrustForce is the magnitude of the engine force while thrusting.
	ThrustForce = 25.0
)

// InputState holds the currently held control intents, decoded by the
// host input layer. It is the bridge between discrete input and
// perturbations of the present state.
type InputState struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
}

// Apply translates the held keys into mutations of the present state
// for one real-time frame of duration dt.
func (in *InputState) Apply(s *Session, dt float64) {
	if in.RotateLeft {
		s.ApplyRotation(-RotationRate * dt)
	}
	if in.RotateRight {
		s.ApplyRotation(RotationRate * dt)
	}
	if in.Thrust {
		s.ApplyThrust(dt)
	}
}

// ApplyRotation spins the player by delta radians. Rotation does not
// affect gravity, so the trajectory cache stays untouched.
func (s *Session) ApplyRotation(delta float64) {
	s.Player.Rotation += delta
	s.publish(&event.BaseEvent{EventType: event.RotationApplied, Source: s})
}

// ApplyThrust fires the engine for dt of real time: the thrust force
// along the current facing is converted to an acceleration and
// integrated once into the present velocity. Velocity is an input of
// every cached sample, so thrust unconditionally triggers a full
// recompute.
func (s *Session) ApplyThrust(dt float64) {
	// Facing convention: rotation 0 points up the screen, so forward
	// is (sin r, -cos r) in world coordinates.
	accel := ThrustForce / s.Player.Mass
	s.Player.Velocity.X += math.Sin(s.Player.Rotation) * accel * dt
	s.Player.Velocity.Y += -math.Cos(s.Player.Rotation) * accel * dt

	s.publish(event.NewThrustEvent(s, accel*dt, s.Player.Rotation))
	s.RecalculateTrajectory()
}
