// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbit/pkg/physics"
)

// CameraSystem keeps the view centered on the player and handles zoom.
// World distances in the default scene are tens of thousands of units,
// so the zoom range reaches far below 1.
type CameraSystem struct {
	target    physics.Vector2D
	targetSet bool

	zoom    float64
	minZoom float64
	maxZoom float64

	followSpeed float64
	smoothing   bool

	currentPos physics.Vector2D
}

// NewCameraSystem creates a camera at the given initial zoom.
func NewCameraSystem(zoom float64) *CameraSystem {
	cs := &CameraSystem{
		minZoom:     0.001,
		maxZoom:     10.0,
		followSpeed: 4.0,
		smoothing:   true,
	}
	cs.zoom = cs.clampZoom(zoom)
	return cs
}

// Add satisfies the ecs.System interface.
func (cs *CameraSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface.
func (cs *CameraSystem) Remove(basic ecs.BasicEntity) {
}

// Update processes zoom input and moves the camera toward its target.
func (cs *CameraSystem) Update(dt float32) {
	cs.handleZoomInput()
	if cs.targetSet {
		cs.updateCameraPosition(float64(dt))
	}
}

// handleZoomInput applies mouse wheel and keyboard zoom changes.
func (cs *CameraSystem) handleZoomInput() {
	scrollY := engo.Input.Mouse.ScrollY
	if scrollY != 0 {
		cs.SetZoom(cs.zoom * (1.0 + float64(scrollY)*0.1))
	}

	if engo.Input.Button(buttonZoomIn).Down() {
		cs.SetZoom(cs.zoom * 1.02)
	}
	if engo.Input.Button(buttonZoomOut).Down() {
		cs.SetZoom(cs.zoom * 0.98)
	}
	if engo.Input.Button(buttonResetZoom).JustPressed() {
		cs.SetZoom(1.0)
	}
}

// updateCameraPosition eases the camera toward the target, or snaps to
// it when smoothing is off.
func (cs *CameraSystem) updateCameraPosition(dt float64) {
	if !cs.smoothing {
		cs.currentPos = cs.target
		return
	}
	cs.currentPos.X += (cs.target.X - cs.currentPos.X) * cs.followSpeed * dt
	cs.currentPos.Y += (cs.target.Y - cs.currentPos.Y) * cs.followSpeed * dt
}

// SetTarget sets the position the camera follows. The first target
// positions the camera immediately so the scene opens centered.
func (cs *CameraSystem) SetTarget(target physics.Vector2D) {
	first := !cs.targetSet
	cs.target = target
	cs.targetSet = true
	if first || !cs.smoothing {
		cs.currentPos = target
	}
}

// ClearTarget stops the camera from following.
func (cs *CameraSystem) ClearTarget() {
	cs.targetSet = false
}

// SetZoom sets the zoom level, clamped to the configured limits.
func (cs *CameraSystem) SetZoom(zoom float64) {
	cs.zoom = cs.clampZoom(zoom)
}

// GetZoom returns the current zoom level.
func (cs *CameraSystem) GetZoom() float64 {
	return cs.zoom
}

func (cs *CameraSystem) clampZoom(zoom float64) float64 {
	if zoom < cs.minZoom {
		return cs.minZoom
	}
	if zoom > cs.maxZoom {
		return cs.maxZoom
	}
	return zoom
}

// SetZoomLimits sets the minimum and maximum zoom and re-clamps the
// current level.
func (cs *CameraSystem) SetZoomLimits(min, max float64) {
	cs.minZoom = min
	cs.maxZoom = max
	cs.zoom = cs.clampZoom(cs.zoom)
}

// GetZoomLimits returns the current zoom limits.
func (cs *CameraSystem) GetZoomLimits() (float64, float64) {
	return cs.minZoom, cs.maxZoom
}

// EnableSmoothing enables or disables eased camera movement.
func (cs *CameraSystem) EnableSmoothing(enabled bool) {
	cs.smoothing = enabled
}

// GetCurrentPosition returns the current camera center in world units.
func (cs *CameraSystem) GetCurrentPosition() physics.Vector2D {
	return cs.currentPos
}

// WorldToScreen converts world coordinates to screen coordinates
// relative to the current camera center and zoom.
func (cs *CameraSystem) WorldToScreen(worldPos physics.Vector2D) physics.Vector2D {
	return physics.Vector2D{
		X: (worldPos.X-cs.currentPos.X)*cs.zoom + float64(engo.GameWidth()/2),
		Y: (worldPos.Y-cs.currentPos.Y)*cs.zoom + float64(engo.GameHeight()/2),
	}
}

// ScreenToWorld converts screen coordinates back to world coordinates.
func (cs *CameraSystem) ScreenToWorld(screenPos physics.Vector2D) physics.Vector2D {
	return physics.Vector2D{
		X: (screenPos.X-float64(engo.GameWidth()/2))/cs.zoom + cs.currentPos.X,
		Y: (screenPos.Y-float64(engo.GameHeight()/2))/cs.zoom + cs.currentPos.Y,
	}
}
