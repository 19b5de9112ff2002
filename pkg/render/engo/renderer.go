// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbit/pkg/engine"
	"github.com/opd-ai/go-orbit/pkg/entity"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// playerPathColor is the packed color for the player's predicted path.
const playerPathColor = 0x00FF80

// renderEntity bundles the components engo needs for one drawable.
type renderEntity struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// EngoRenderer draws bodies, the player marker, and trajectory paths
// into an engo render system. It satisfies entity.Renderer so the
// scene can drive it the same way the terminal renderer is driven.
type EngoRenderer struct {
	renderSystem *common.RenderSystem
	assets       *AssetManager
	camera       *CameraSystem

	bodyEntities map[string]*renderEntity
	playerEntity *renderEntity

	// Trajectory dots are rebuilt every frame
	pathEntities []*renderEntity
}

// NewEngoRenderer creates a renderer drawing through the given render
// system with the given camera.
func NewEngoRenderer(renderSystem *common.RenderSystem, assets *AssetManager, camera *CameraSystem) *EngoRenderer {
	return &EngoRenderer{
		renderSystem: renderSystem,
		assets:       assets,
		camera:       camera,
		bodyEntities: make(map[string]*renderEntity),
	}
}

// RenderBody draws a body as a colored disc scaled by its radius and
// the current zoom.
func (r *EngoRenderer) RenderBody(body *entity.Body) {
	if body == nil {
		return
	}

	re, exists := r.bodyEntities[body.Name]
	if !exists {
		re = &renderEntity{basic: ecs.NewBasic()}
		re.render = common.RenderComponent{
			Drawable: r.assets.GetBodySprite(body),
			Color:    color.White,
		}
		r.bodyEntities[body.Name] = re
		r.renderSystem.Add(&re.basic, &re.render, &re.space)
	}

	screen := r.camera.WorldToScreen(body.Position)
	size := 2 * body.Radius * r.camera.GetZoom()
	if size < 4 {
		size = 4
	}
	r.placeEntity(re, screen, size)
	scale := float32(size) / re.render.Drawable.Width()
	re.render.Scale = engo.Point{X: scale, Y: scale}
}

// RenderPlayer draws the player marker rotated to its current heading.
func (r *EngoRenderer) RenderPlayer(player *entity.Player) {
	if player == nil {
		return
	}

	if r.playerEntity == nil {
		r.playerEntity = &renderEntity{basic: ecs.NewBasic()}
		r.playerEntity.render = common.RenderComponent{
			Drawable: r.assets.GetPlayerSprite(),
			Color:    color.White,
		}
		r.renderSystem.Add(&r.playerEntity.basic, &r.playerEntity.render, &r.playerEntity.space)
	}

	screen := r.camera.WorldToScreen(player.Position)
	const size = 16
	r.placeEntity(r.playerEntity, screen, size)
	r.playerEntity.space.Rotation = float32(player.Rotation * 180 / math.Pi)
}

// RenderTrajectory draws a sampled path as a run of dots in the given
// packed 0xRRGGBB color.
func (r *EngoRenderer) RenderTrajectory(points []physics.Vector2D, pathColor uint32) {
	c := colorFromPacked(pathColor & 0xFFFFFF)
	dot := r.assets.GetTrajectoryDot()
	for _, p := range points {
		re := &renderEntity{basic: ecs.NewBasic()}
		re.render = common.RenderComponent{
			Drawable: dot,
			Color:    c,
		}
		screen := r.camera.WorldToScreen(p)
		r.placeEntity(re, screen, 2)
		r.pathEntities = append(r.pathEntities, re)
		r.renderSystem.Add(&re.basic, &re.render, &re.space)
	}
}

// Clear removes last frame's trajectory dots. Body and player
// entities persist and are repositioned in place.
func (r *EngoRenderer) Clear() {
	for _, re := range r.pathEntities {
		r.renderSystem.Remove(re.basic)
	}
	r.pathEntities = r.pathEntities[:0]
}

// Present is a no-op; engo presents the frame itself.
func (r *EngoRenderer) Present() {
}

// RemoveBody drops a body's drawable, for scenes that rebuild the
// universe.
func (r *EngoRenderer) RemoveBody(name string) {
	if re, exists := r.bodyEntities[name]; exists {
		r.renderSystem.Remove(re.basic)
		delete(r.bodyEntities, name)
	}
}

// placeEntity centers an entity's space component on a screen position.
func (r *EngoRenderer) placeEntity(re *renderEntity, screen physics.Vector2D, size float64) {
	re.space.Position = engo.Point{
		X: float32(screen.X - size/2),
		Y: float32(screen.Y - size/2),
	}
	re.space.Width = float32(size)
	re.space.Height = float32(size)
}

// RenderSyncSystem pulls the session state into the renderer once per
// frame, after the input system has advanced the simulation.
type RenderSyncSystem struct {
	session  *engine.Session
	renderer *EngoRenderer
	camera   *CameraSystem
	stride   int
}

// NewRenderSyncSystem creates a sync system sampling trajectory paths
// at the given stride.
func NewRenderSyncSystem(session *engine.Session, renderer *EngoRenderer, camera *CameraSystem, stride int) *RenderSyncSystem {
	if stride < 1 {
		stride = 1
	}
	return &RenderSyncSystem{
		session:  session,
		renderer: renderer,
		camera:   camera,
		stride:   stride,
	}
}

// Add satisfies the ecs.System interface.
func (rs *RenderSyncSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface.
func (rs *RenderSyncSystem) Remove(basic ecs.BasicEntity) {
}

// Update redraws the scene from the current session state.
func (rs *RenderSyncSystem) Update(dt float32) {
	if rs.session == nil || rs.renderer == nil {
		return
	}

	rs.camera.SetTarget(rs.session.Player.Position)

	rs.renderer.Clear()
	for i, body := range rs.session.Bodies {
		rs.renderer.RenderBody(body)
		if rs.session.Trajectory.Valid() {
			rs.renderer.RenderTrajectory(rs.session.Trajectory.SampleBodyPath(i, rs.stride), body.Color)
		}
	}
	rs.renderer.RenderPlayer(rs.session.Player)
	if rs.session.Trajectory.Valid() {
		rs.renderer.RenderTrajectory(rs.session.Trajectory.SamplePlayerPath(rs.stride), playerPathColor)
	}
	rs.renderer.Present()
}
