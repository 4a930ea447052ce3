// Package renderer draws the simulated ball onto a canvas.
package renderer

import (
	"image/color"

	"github.com/pthm-cable/tiltball/sim"
)

// Canvas is the drawing surface supplied by the host.
type Canvas interface {
	Clear(c color.RGBA)
	FillCircle(x, y, r float32, c color.RGBA)
}

// BallRenderer draws a filled ball over a solid background.
type BallRenderer struct {
	Background color.RGBA
	Ball       color.RGBA
}

// NewBallRenderer creates a renderer with the given colors.
func NewBallRenderer(background, ball color.RGBA) *BallRenderer {
	return &BallRenderer{Background: background, Ball: ball}
}

// Draw paints one frame.
func (r *BallRenderer) Draw(c Canvas, b sim.Ball) {
	c.Clear(r.Background)
	c.FillCircle(b.Pos.X, b.Pos.Y, b.Radius, r.Ball)
}
