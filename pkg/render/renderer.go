// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-orbit/pkg/entity"
	"github.com/opd-ai/go-orbit/pkg/logging"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// NullRenderer is a simple implementation of entity.Renderer that only
// logs; it backs headless runs and tests.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	ctx := context.Background()
	d.logger.Debug(ctx, "Clear called")
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	ctx := context.Background()
	d.logger.Debug(ctx, "Present called")
}

// RenderBody implements entity.Renderer.
func (d *NullRenderer) RenderBody(body *entity.Body) {
	ctx := context.Background()
	if body == nil {
		d.logger.Debug(ctx, "RenderBody called with nil body")
		return
	}
	d.logger.Debug(ctx, "RenderBody called",
		"body_name", body.Name,
		"x", body.Position.X,
		"y", body.Position.Y,
	)
}

// RenderPlayer implements entity.Renderer.
func (d *NullRenderer) RenderPlayer(player *entity.Player) {
	ctx := context.Background()
	if player == nil {
		d.logger.Debug(ctx, "RenderPlayer called with nil player")
		return
	}
	d.logger.Debug(ctx, "RenderPlayer called",
		"x", player.Position.X,
		"y", player.Position.Y,
		"rotation", player.Rotation,
	)
}

// RenderTrajectory implements entity.Renderer.
func (d *NullRenderer) RenderTrajectory(points []physics.Vector2D, color uint32) {
	ctx := context.Background()
	d.logger.Debug(ctx, "RenderTrajectory called",
		"points", len(points),
		"color", color,
	)
}
