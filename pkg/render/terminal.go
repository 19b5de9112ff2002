// pkg/render/terminal.go
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opd-ai/go-orbit/pkg/entity"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// TerminalRenderer provides a simple ASCII-based rendering for terminals
type TerminalRenderer struct {
	width     int
	height    int
	buffer    [][]rune
	scale     float64
	centerPos physics.Vector2D
	out       io.Writer
}

// NewTerminalRenderer creates a new terminal renderer with the specified
// dimensions. scale is world units per character cell.
func NewTerminalRenderer(width, height int, scale float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalRenderer{
		width:  width,
		height: height,
		buffer: buffer,
		scale:  scale,
		out:    os.Stdout,
	}
}

// SetCenter sets the world position mapped to the middle of the view,
// typically the player position so the camera follows it.
func (r *TerminalRenderer) SetCenter(pos physics.Vector2D) {
	r.centerPos = pos
}

// SetOutput redirects Present output, used by tests.
func (r *TerminalRenderer) SetOutput(w io.Writer) {
	r.out = w
}

// worldToScreen converts world coordinates to screen coordinates
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	screenX := int((pos.X-r.centerPos.X)/r.scale + float64(r.width)/2)
	screenY := int((pos.Y-r.centerPos.Y)/r.scale + float64(r.height)/2)
	return screenX, screenY
}

func (r *TerminalRenderer) put(x, y int, symbol rune) {
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = symbol
	}
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	// Clear terminal
	fmt.Fprint(r.out, "\033[H\033[2J")

	fmt.Fprintln(r.out, "+"+strings.Repeat("-", r.width)+"+")
	for y := range r.buffer {
		fmt.Fprint(r.out, "|")
		for x := range r.buffer[y] {
			fmt.Fprint(r.out, string(r.buffer[y][x]))
		}
		fmt.Fprintln(r.out, "|")
	}
	fmt.Fprintln(r.out, "+"+strings.Repeat("-", r.width)+"+")
}

// RenderBody implements entity.Renderer
func (r *TerminalRenderer) RenderBody(body *entity.Body) {
	x, y := r.worldToScreen(body.Position)

	// Large bodies get a heavier glyph than small ones
	symbol := 'o'
	if body.Radius/r.scale >= 1 {
		symbol = 'O'
	}
	r.put(x, y, symbol)
}

// RenderPlayer implements entity.Renderer
func (r *TerminalRenderer) RenderPlayer(player *entity.Player) {
	x, y := r.worldToScreen(player.Position)
	r.put(x, y, '^')
}

// RenderTrajectory implements entity.Renderer
func (r *TerminalRenderer) RenderTrajectory(points []physics.Vector2D, color uint32) {
	for _, p := range points {
		x, y := r.worldToScreen(p)
		if x >= 0 && x < r.width && y >= 0 && y < r.height && r.buffer[y][x] == ' ' {
			r.buffer[y][x] = '.'
		}
	}
}
