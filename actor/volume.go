package actor

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// TriggerColor is the debug color of trigger volumes
	TriggerColor = color.RGBA{R: 0, G: 255, B: 0, A: 77}
	// SolidColor is the debug color of non-trigger volumes
	SolidColor = color.RGBA{R: 255, G: 0, B: 0, A: 77}
)

// Owner is the game object a volume is attached to
// The volume never controls the owner's lifetime
type Owner interface {
	Position() mgl64.Vec2
}

// Liveness is implemented by owners able to report their own destruction.
// A volume whose owner is no longer alive behaves as if it had no owner.
type Liveness interface {
	IsAlive() bool
}

// Renderer draws an axis-aligned colored rectangle centered on position
type Renderer interface {
	DrawRect(position mgl64.Vec2, size mgl64.Vec2, clr color.RGBA)
}

// Volume is a collision shape bound to an owner's position
type Volume struct {
	// Tag is free caller metadata, typically used to identify what was hit
	Tag string

	owner   Owner
	shape   Shape
	offset  mgl64.Vec2
	enabled bool
	trigger bool
}

// NewVolume creates an enabled, non-trigger volume
// owner may be nil for a free-floating volume
func NewVolume(owner Owner, shape Shape) *Volume {
	return &Volume{
		owner:   owner,
		shape:   shape,
		enabled: true,
	}
}

// Owner returns the live owner of the volume, or nil
func (v *Volume) Owner() Owner {
	if v.owner == nil {
		return nil
	}
	if l, ok := v.owner.(Liveness); ok && !l.IsAlive() {
		return nil
	}

	return v.owner
}

func (v *Volume) Shape() Shape {
	return v.shape
}

func (v *Volume) Type() ShapeType {
	return v.shape.Type
}

func (v *Volume) Offset() mgl64.Vec2 {
	return v.offset
}

func (v *Volume) SetOffset(offset mgl64.Vec2) {
	v.offset = offset
}

func (v *Volume) IsEnabled() bool {
	return v.enabled
}

func (v *Volume) SetEnabled(enabled bool) {
	v.enabled = enabled
}

// IsTrigger is caller-interpreted metadata: nothing in this module treats
// triggers differently from solid volumes
func (v *Volume) IsTrigger() bool {
	return v.trigger
}

func (v *Volume) SetTrigger(trigger bool) {
	v.trigger = trigger
}

// SetHalfExtents resizes a box volume
func (v *Volume) SetHalfExtents(halfExtents mgl64.Vec2) {
	if v.shape.Type != ShapeTypeBox {
		panic(fmt.Sprintf("actor: SetHalfExtents on a %v volume", v.shape.Type))
	}
	v.shape = NewBox(halfExtents)
}

// SetRadius resizes a circle volume
func (v *Volume) SetRadius(radius float64) {
	if v.shape.Type != ShapeTypeCircle {
		panic(fmt.Sprintf("actor: SetRadius on a %v volume", v.shape.Type))
	}
	v.shape = NewCircle(radius)
}

// WorldPosition is the owner position plus the local offset
// Without an owner, it is the offset alone
func (v *Volume) WorldPosition() mgl64.Vec2 {
	owner := v.Owner()
	if owner == nil {
		return v.offset
	}

	return owner.Position().Add(v.offset)
}

// Bounds computes the world space AABB, recomputed on each call
func (v *Volume) Bounds() AABB {
	return v.shape.Bounds(v.WorldPosition())
}

// Active reports whether the volume can take part in a collision test
func (v *Volume) Active() bool {
	return v.enabled && v.Owner() != nil
}

// CheckCollision tests this volume against other.
// It fails closed when either volume is disabled or has no owner.
func (v *Volume) CheckCollision(other *Volume) bool {
	if other == nil || !v.Active() || !other.Active() {
		return false
	}

	return Collide(v.shape, v.WorldPosition(), other.shape, other.WorldPosition())
}

// DebugRender draws the volume bounds, circles being approximated by their
// bounding square. Disabled volumes are not drawn.
func (v *Volume) DebugRender(r Renderer) {
	if !v.enabled || r == nil {
		return
	}

	clr := SolidColor
	if v.trigger {
		clr = TriggerColor
	}

	r.DrawRect(v.WorldPosition(), v.shape.Size(), clr)
}
