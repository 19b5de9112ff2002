// pkg/engine/dominant.go
package engine

import (
	"github.com/opd-ai/go-orbit/pkg/entity"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// DominantBody returns the passive body exerting the strongest
// instantaneous gravitational acceleration (G*m/r^2) at the given
// position, evaluated against live positions, never cached ones. Ties
// keep the first maximum in body order. A body at zero distance from
// pos is skipped, which also excludes a body from dominating itself.
// Returns nil when no body qualifies.
//
// This is display support only: the result picks a reference frame for
// trajectory overlays and carries no simulation state.
func (s *Session) DominantBody(pos physics.Vector2D) *entity.Body {
	var dominant *entity.Body
	best := 0.0

	for _, body := range s.Bodies {
		distSq := body.Position.Sub(pos).LengthSquared()
		if distSq == 0 {
			continue
		}
		accel := s.Gravity * body.Mass / distSq
		if accel > best {
			best = accel
			dominant = body
		}
	}
	return dominant
}
