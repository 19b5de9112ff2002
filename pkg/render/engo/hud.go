// pkg/render/engo/hud.go
package engo

import (
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbit/pkg/engine"
)

// HUDSystem overlays flight readouts on the scene: the strongest
// gravitational influence at the player's position, the prediction
// cache state, the time warp factor, and the player's speed.
type HUDSystem struct {
	session      *engine.Session
	renderSystem *common.RenderSystem

	hudEntities []*renderEntity

	font *common.Font

	hudColor  color.Color
	warnColor color.Color
}

// NewHUDSystem creates a HUD reading from the given session.
func NewHUDSystem(session *engine.Session, renderSystem *common.RenderSystem) *HUDSystem {
	return &HUDSystem{
		session:      session,
		renderSystem: renderSystem,
		hudColor:     color.RGBA{255, 255, 255, 255},
		warnColor:    color.RGBA{255, 64, 64, 255},
	}
}

// SetFont sets the font used for HUD text. Text is skipped while no
// font is loaded.
func (hud *HUDSystem) SetFont(font *common.Font) {
	hud.font = font
}

// Add satisfies the ecs.System interface.
func (hud *HUDSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface.
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {
}

// Update rebuilds the HUD overlay from the current session state.
func (hud *HUDSystem) Update(dt float32) {
	hud.clearHUDEntities()
	if hud.session == nil {
		return
	}

	hud.renderText(hud.statusLine(), 10, 10, hud.hudColor)
	hud.renderCacheStatus()
}

// statusLine formats the top-left readout.
func (hud *HUDSystem) statusLine() string {
	dominant := "none"
	if body := hud.session.DominantBody(hud.session.Player.Position); body != nil {
		dominant = body.Name
	}
	speed := hud.session.Player.Velocity.Length()
	return fmt.Sprintf(
		"Influence: %s\nSpeed: %.2f\nWarp: %.0fx",
		dominant,
		speed,
		hud.session.TimeWarp(),
	)
}

// renderCacheStatus shows the prediction cache depth, or a warning
// when the cache is invalid.
func (hud *HUDSystem) renderCacheStatus() {
	x := float32(engo.GameWidth()) - 180
	if !hud.session.Trajectory.Valid() {
		hud.renderText("Prediction: invalid", x, 10, hud.warnColor)
		return
	}
	line := fmt.Sprintf("Prediction: %d ticks", hud.session.Trajectory.Len())
	hud.renderText(line, x, 10, hud.hudColor)
}

// clearHUDEntities removes last frame's overlay entities.
func (hud *HUDSystem) clearHUDEntities() {
	for _, re := range hud.hudEntities {
		hud.renderSystem.Remove(re.basic)
	}
	hud.hudEntities = hud.hudEntities[:0]
}

// renderText draws a text block at a fixed screen position.
func (hud *HUDSystem) renderText(text string, x, y float32, textColor color.Color) {
	if hud.font == nil {
		return
	}

	re := &renderEntity{basic: ecs.NewBasic()}
	re.render = common.RenderComponent{
		Drawable: common.Text{
			Font: hud.font,
			Text: text,
		},
		Color: textColor,
	}
	re.space = common.SpaceComponent{
		Position: engo.Point{X: x, Y: y},
		Width:    float32(len(text) * 8),
		Height:   16,
	}
	re.render.SetShader(common.HUDShader)

	hud.hudEntities = append(hud.hudEntities, re)
	hud.renderSystem.Add(&re.basic, &re.render, &re.space)
}
