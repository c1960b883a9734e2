package actor

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ShapeType represents the type of collision shape
type ShapeType int

const (
	ShapeTypeBox ShapeType = iota
	ShapeTypeCircle
)

func (t ShapeType) String() string {
	switch t {
	case ShapeTypeBox:
		return "box"
	case ShapeTypeCircle:
		return "circle"
	}
	return fmt.Sprintf("ShapeType(%d)", int(t))
}

// Shape is a closed union of the supported collision shapes
// Only the parameters matching Type are meaningful:
// HalfExtents for a box, Radius for a circle
type Shape struct {
	Type        ShapeType
	HalfExtents mgl64.Vec2
	Radius      float64
}

// NewBox creates an axis-aligned box from its half-width and half-height
func NewBox(halfExtents mgl64.Vec2) Shape {
	if !validExtent(halfExtents.X()) || !validExtent(halfExtents.Y()) {
		panic(fmt.Sprintf("actor: invalid box half-extents %v", halfExtents))
	}
	return Shape{Type: ShapeTypeBox, HalfExtents: halfExtents}
}

// NewBoxSize creates an axis-aligned box from its full width and height
func NewBoxSize(size mgl64.Vec2) Shape {
	return NewBox(size.Mul(0.5))
}

// NewCircle creates a circle of the given radius
func NewCircle(radius float64) Shape {
	if !validExtent(radius) {
		panic(fmt.Sprintf("actor: invalid circle radius %v", radius))
	}
	return Shape{Type: ShapeTypeCircle, Radius: radius}
}

func validExtent(v float64) bool {
	return v >= 0 && !math.IsNaN(v)
}

// Bounds computes the world space AABB of the shape centered at position.
// For a circle this is the enclosing square.
func (s Shape) Bounds(position mgl64.Vec2) AABB {
	switch s.Type {
	case ShapeTypeBox:
		return NewAABB(position, s.HalfExtents)
	case ShapeTypeCircle:
		return NewAABB(position, mgl64.Vec2{s.Radius, s.Radius})
	}
	panic(fmt.Sprintf("actor: bounds of unsupported shape %v", s.Type))
}

// Size returns the full extent of the shape, as drawn by debug rendering
func (s Shape) Size() mgl64.Vec2 {
	switch s.Type {
	case ShapeTypeBox:
		return s.HalfExtents.Mul(2)
	case ShapeTypeCircle:
		return mgl64.Vec2{s.Radius * 2, s.Radius * 2}
	}
	panic(fmt.Sprintf("actor: size of unsupported shape %v", s.Type))
}

// Collide tests two shapes placed at world positions posA and posB.
// It dispatches on the ordered pair of shape types; a pair without a rule
// is a programming error and panics.
func Collide(a Shape, posA mgl64.Vec2, b Shape, posB mgl64.Vec2) bool {
	switch {
	case a.Type == ShapeTypeBox && b.Type == ShapeTypeBox:
		return collideBoxBox(a.Bounds(posA), b.Bounds(posB))
	case a.Type == ShapeTypeCircle && b.Type == ShapeTypeCircle:
		return collideCircleCircle(posA, a.Radius, posB, b.Radius)
	case a.Type == ShapeTypeBox && b.Type == ShapeTypeCircle:
		return collideBoxCircle(a.Bounds(posA), posB, b.Radius)
	case a.Type == ShapeTypeCircle && b.Type == ShapeTypeBox:
		return collideBoxCircle(b.Bounds(posB), posA, a.Radius)
	}

	panic(fmt.Sprintf("actor: no collision rule for %v vs %v", a.Type, b.Type))
}

func collideBoxBox(a, b AABB) bool {
	return a.Overlaps(b)
}

func collideCircleCircle(centerA mgl64.Vec2, radiusA float64, centerB mgl64.Vec2, radiusB float64) bool {
	return centerA.Sub(centerB).Len() <= radiusA+radiusB
}

func collideBoxCircle(box AABB, center mgl64.Vec2, radius float64) bool {
	closest := box.ClosestPoint(center)

	return center.Sub(closest).Len() <= radius
}
