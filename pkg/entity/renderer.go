// pkg/entity/renderer.go
package entity

import (
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// Renderer handles rendering the simulated system
type Renderer interface {
	RenderBody(body *Body)
	RenderPlayer(player *Player)
	RenderTrajectory(points []physics.Vector2D, color uint32)
	Clear()
	Present()
}
