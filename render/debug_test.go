package render

import (
	"image/color"
	"testing"

	"github.com/akmonengine/hitbox/actor"
	"github.com/go-gl/mathgl/mgl64"
)

var _ actor.Renderer = (*Debug)(nil)

func TestScreenRect(t *testing.T) {
	tests := []struct {
		name       string
		camera     mgl64.Vec2
		position   mgl64.Vec2
		size       mgl64.Vec2
		x, y, w, h float32
	}{
		{"origin", mgl64.Vec2{0, 0}, mgl64.Vec2{0, 0}, mgl64.Vec2{2, 4}, -1, -2, 2, 4},
		{"offset", mgl64.Vec2{0, 0}, mgl64.Vec2{10, 20}, mgl64.Vec2{4, 2}, 8, 19, 4, 2},
		{"camera", mgl64.Vec2{100, 50}, mgl64.Vec2{110, 60}, mgl64.Vec2{4, 4}, 8, 8, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Debug{Camera: tt.camera}
			x, y, w, h := d.screenRect(tt.position, tt.size)
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("screenRect = (%v, %v, %v, %v), want (%v, %v, %v, %v)", x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestDrawRect_NoScreen(t *testing.T) {
	d := &Debug{}
	// Must not panic without a screen
	d.DrawRect(mgl64.Vec2{1, 1}, mgl64.Vec2{2, 2}, color.RGBA{255, 0, 0, 77})
}

func TestDrawable(t *testing.T) {
	tests := []struct {
		name     string
		w, h     float32
		expected bool
	}{
		{"regular", 4, 2, true},
		{"zero width", 0, 2, false},
		{"zero height", 4, 0, false},
		{"empty", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := drawable(tt.w, tt.h); got != tt.expected {
				t.Errorf("drawable(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.expected)
			}
		})
	}
}
