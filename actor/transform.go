package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a position in 2D space
type Transform struct {
	Position mgl64.Vec2
}

// NewTransform creates a transform at the given position
func NewTransform(position mgl64.Vec2) Transform {
	return Transform{
		Position: position,
	}
}

// Translate returns the transform moved by delta
func (t Transform) Translate(delta mgl64.Vec2) Transform {
	return Transform{Position: t.Position.Add(delta)}
}
