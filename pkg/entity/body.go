// pkg/entity/body.go
package entity

import (
	"fmt"

	"github.com/opd-ai/go-orbit/pkg/physics"
)

// Body represents a passive mass in the simulated system. Mass and
// radius are fixed after creation; position and velocity are mutated
// every integration tick. Color and Description are opaque display
// payload attached by scene construction and never read by the core.
type Body struct {
	Name        string
	Radius      float64
	Mass        float64
	Position    physics.Vector2D
	Velocity    physics.Vector2D
	Color       uint32 // RGB color (0xRRGGBB)
	Description string
}

// NewBody creates a new body, validating physical parameters at
// construction time so degenerate masses never reach the integrator.
func NewBody(name string, radius, mass float64, position, velocity physics.Vector2D) (*Body, error) {
	if name == "" {
		return nil, fmt.Errorf("body name cannot be empty")
	}
	if mass <= 0 {
		return nil, fmt.Errorf("body %q: mass must be positive, got %g", name, mass)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("body %q: radius must be positive, got %g", name, radius)
	}
	return &Body{
		Name:     name,
		Radius:   radius,
		Mass:     mass,
		Position: position,
		Velocity: velocity,
	}, nil
}

// Clone returns an independent copy of the body
func (b *Body) Clone() *Body {
	clone := *b
	return &clone
}
