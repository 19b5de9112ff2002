// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbit/pkg/engine"
)

// Button names registered by SetupInputBindings.
const (
	buttonThrust      = "thrust"
	buttonRotateLeft  = "rotateLeft"
	buttonRotateRight = "rotateRight"
	buttonZoomIn      = "zoomIn"
	buttonZoomOut     = "zoomOut"
	buttonResetZoom   = "resetZoom"
	buttonWarpOne     = "warpOne"
	buttonWarpTen     = "warpTen"
	buttonWarpHundred = "warpHundred"
)

// InputSystem reads held keys each frame, translates them into control
// inputs, and drives the simulation forward by the frame delta.
type InputSystem struct {
	session *engine.Session
	input   engine.InputState
}

// NewInputSystem creates an input system driving the given session.
func NewInputSystem(session *engine.Session) *InputSystem {
	return &InputSystem{session: session}
}

// Add satisfies the ecs.System interface.
func (is *InputSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface.
func (is *InputSystem) Remove(basic ecs.BasicEntity) {
}

// Update polls the key state, applies controls to the player, and
// advances simulated time.
func (is *InputSystem) Update(dt float32) {
	if is.session == nil {
		return
	}

	is.input.RotateLeft = engo.Input.Button(buttonRotateLeft).Down()
	is.input.RotateRight = engo.Input.Button(buttonRotateRight).Down()
	is.input.Thrust = engo.Input.Button(buttonThrust).Down()

	if engo.Input.Button(buttonWarpOne).JustPressed() {
		is.session.SetTimeWarp(1)
	}
	if engo.Input.Button(buttonWarpTen).JustPressed() {
		is.session.SetTimeWarp(10)
	}
	if engo.Input.Button(buttonWarpHundred).JustPressed() {
		is.session.SetTimeWarp(100)
	}

	is.input.Apply(is.session, float64(dt))
	is.session.Update(float64(dt))
}

// SetupInputBindings registers the keyboard bindings for flight and
// view control. Call once before the scene starts.
func SetupInputBindings() {
	engo.Input.RegisterButton(buttonThrust, engo.KeyW, engo.KeyArrowUp, engo.KeySpace)
	engo.Input.RegisterButton(buttonRotateLeft, engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton(buttonRotateRight, engo.KeyD, engo.KeyArrowRight)

	engo.Input.RegisterButton(buttonZoomIn, engo.KeyE)
	engo.Input.RegisterButton(buttonZoomOut, engo.KeyQ)
	engo.Input.RegisterButton(buttonResetZoom, engo.KeyR)

	engo.Input.RegisterButton(buttonWarpOne, engo.KeyOne)
	engo.Input.RegisterButton(buttonWarpTen, engo.KeyTwo)
	engo.Input.RegisterButton(buttonWarpHundred, engo.KeyThree)
}
