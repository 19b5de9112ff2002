// pkg/engine/integrator.go
package engine

import (
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// step advances the whole system by dt using pairwise Newtonian gravity
// and semi-implicit Euler integration: all accelerations are gathered
// first, then velocity is updated before position for every entity with
// the same dt, keeping paired forces self-consistent within the step.
// Coincident entities (zero distance) exert no force this step.
// Player rotation is never touched here; only input drives it.
func (s *Session) step(dt float64) {
	bodyAccelerations := make([]physics.Vector2D, len(s.Bodies))

	// Body-to-body forces, each unordered pair once
	for i := 0; i < len(s.Bodies); i++ {
		for j := i + 1; j < len(s.Bodies); j++ {
			diff := s.Bodies[j].Position.Sub(s.Bodies[i].Position)
			distance := diff.Length()
			if distance > 0 {
				forceMagnitude := s.Gravity / (distance * distance)
				direction := diff.Scale(1 / distance)

				// Equal and opposite: i is pulled toward j, j toward i
				bodyAccelerations[i] = bodyAccelerations[i].Add(
					direction.Scale(forceMagnitude * s.Bodies[j].Mass))
				bodyAccelerations[j] = bodyAccelerations[j].Add(
					direction.Scale(-forceMagnitude * s.Bodies[i].Mass))
			}
		}
	}

	// Player acceleration from every body, with the reaction force
	// applied back onto the body
	var playerAcceleration physics.Vector2D
	for i, body := range s.Bodies {
		diff := body.Position.Sub(s.Player.Position)
		distance := diff.Length()
		if distance > 0 {
			// F = G * m1 * m2 / r^2
			forceMagnitude := s.Gravity * body.Mass * s.Player.Mass / (distance * distance)
			direction := diff.Scale(1 / distance)

			playerAcceleration = playerAcceleration.Add(
				direction.Scale(forceMagnitude / s.Player.Mass))
			bodyAccelerations[i] = bodyAccelerations[i].Add(
				direction.Scale(-forceMagnitude / body.Mass))
		}
	}

	// Velocity before position for every entity
	for i, body := range s.Bodies {
		body.Velocity = body.Velocity.Add(bodyAccelerations[i].Scale(dt))
		body.Position = body.Position.Add(body.Velocity.Scale(dt))
	}

	s.Player.Velocity = s.Player.Velocity.Add(playerAcceleration.Scale(dt))
	s.Player.Position = s.Player.Position.Add(s.Player.Velocity.Scale(dt))
}

// stepTick advances the system by one cache tick using the configured
// number of sub-steps.
func (s *Session) stepTick() {
	dt := TrajectoryDT / float64(s.substeps)
	for i := 0; i < s.substeps; i++ {
		s.step(dt)
	}
}
