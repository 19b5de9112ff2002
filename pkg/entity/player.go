// pkg/entity/player.go
package entity

import (
	"fmt"

	"github.com/opd-ai/go-orbit/pkg/physics"
)

// Player is the controlled body. Rotation is free-running in radians
// and unbounded; it is driven only by input, never by the integrator.
type Player struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
	Mass     float64
	Rotation float64
}

// NewPlayer creates a new player body
func NewPlayer(position, velocity physics.Vector2D, mass, rotation float64) (*Player, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("player mass must be positive, got %g", mass)
	}
	return &Player{
		Position: position,
		Velocity: velocity,
		Mass:     mass,
		Rotation: rotation,
	}, nil
}

// Clone returns an independent copy of the player
func (p *Player) Clone() *Player {
	clone := *p
	return &clone
}
