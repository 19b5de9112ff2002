// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbit/pkg/config"
	"github.com/opd-ai/go-orbit/pkg/engine"
	"github.com/opd-ai/go-orbit/pkg/event"
	"github.com/opd-ai/go-orbit/pkg/logging"
)

// hudFontURL is loaded from the assets root when present. The HUD
// stays textless if the file is missing.
const hudFontURL = "fonts/hud.ttf"

// SimulationScene wires the simulation session to engo: input drives
// the session, the sync system redraws it, and the HUD reads from it.
type SimulationScene struct {
	session *engine.Session
	display config.DisplayConfig
	logger  *logging.Logger

	assets     *AssetManager
	fontLoaded bool
}

// NewSimulationScene creates a scene for the given session and display
// settings.
func NewSimulationScene(session *engine.Session, display config.DisplayConfig, logger *logging.Logger) *SimulationScene {
	return &SimulationScene{
		session: session,
		display: display,
		logger:  logger,
		assets:  NewAssetManager(),
	}
}

// Type uniquely identifies the scene within engo.
func (s *SimulationScene) Type() string {
	return "orbitSimulation"
}

// Preload generates the procedural sprites and registers key bindings.
func (s *SimulationScene) Preload() {
	if err := s.assets.LoadAssets(); err != nil {
		s.logError("failed to generate sprites", err)
	}

	if err := engo.Files.Load(hudFontURL); err != nil {
		s.logInfo("HUD font not available, text overlay disabled")
	} else {
		s.fontLoaded = true
	}

	SetupInputBindings()
}

// Setup builds the system graph for the scene.
func (s *SimulationScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		return
	}

	common.SetBackground(color.Black)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	camera := NewCameraSystem(s.display.Zoom)
	renderer := NewEngoRenderer(renderSystem, s.assets, camera)

	world.AddSystem(NewInputSystem(s.session))
	world.AddSystem(camera)
	world.AddSystem(NewRenderSyncSystem(s.session, renderer, camera, s.display.TrajectoryStride))

	hud := NewHUDSystem(s.session, renderSystem)
	if s.fontLoaded {
		font := &common.Font{
			URL:  hudFontURL,
			FG:   color.White,
			Size: 14,
		}
		if err := font.CreatePreloaded(); err != nil {
			s.logError("failed to create HUD font", err)
		} else {
			hud.SetFont(font)
		}
	}
	world.AddSystem(hud)

	s.subscribeEvents()
}

// Exit is called when the scene is torn down.
func (s *SimulationScene) Exit() {
	s.logInfo("simulation scene exited")
}

// subscribeEvents logs notable simulation events while the scene runs.
func (s *SimulationScene) subscribeEvents() {
	if s.session == nil || s.session.EventBus == nil || s.logger == nil {
		return
	}

	s.session.EventBus.Subscribe(event.ThrustApplied, func(e event.Event) {
		if te, ok := e.(*event.ThrustEvent); ok {
			s.logger.Debug(context.Background(), "thrust applied",
				"delta_v", te.DeltaV,
				"rotation", te.Rotation,
			)
		}
	})
	s.session.EventBus.Subscribe(event.TrajectoryRecalculated, func(e event.Event) {
		if te, ok := e.(*event.TrajectoryEvent); ok {
			s.logger.Debug(context.Background(), "trajectory recalculated", "length", te.Length)
		}
	})
}

func (s *SimulationScene) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(context.Background(), msg, args...)
	}
}

func (s *SimulationScene) logError(msg string, err error) {
	if s.logger != nil {
		s.logger.Error(context.Background(), msg, err)
	}
}

// Run opens the window and hands control to engo. It blocks until the
// window closes.
func Run(session *engine.Session, display config.DisplayConfig, logger *logging.Logger) {
	opts := engo.RunOptions{
		Title:  "go-orbit",
		Width:  display.WindowWidth,
		Height: display.WindowHeight,
	}
	engo.Run(opts, NewSimulationScene(session, display, logger))
}
