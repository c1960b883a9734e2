// Package render draws collision volumes on an ebiten screen.
package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug implements actor.Renderer on top of an ebiten image.
// Screen is replaced every frame by the game's Draw method.
type Debug struct {
	Screen *ebiten.Image
	// Camera is the world position drawn at the top-left corner of Screen
	Camera mgl64.Vec2
}

// DrawRect fills the rectangle centred on position
func (d *Debug) DrawRect(position, size mgl64.Vec2, clr color.RGBA) {
	if d.Screen == nil {
		return
	}

	x, y, w, h := d.screenRect(position, size)
	if !drawable(w, h) {
		return
	}

	vector.DrawFilledRect(d.Screen, x, y, w, h, clr, false)
}

// drawable rejects empty rectangles, a zero-radius circle included
func drawable(w, h float32) bool {
	return w > 0 && h > 0
}

func (d *Debug) screenRect(position, size mgl64.Vec2) (x, y, w, h float32) {
	topLeft := position.Sub(size.Mul(0.5)).Sub(d.Camera)

	return float32(topLeft.X()), float32(topLeft.Y()), float32(size.X()), float32(size.Y())
}
