package actor

import "github.com/go-gl/mathgl/mgl64"

// Registrar is the collection a body registers its volume into
type Registrar interface {
	Register(volume *Volume)
	Unregister(volume *Volume)
}

// Body is a movable game object owning at most one collision volume.
// It tracks its position at the start of the frame as well as the current
// one, so that fast movers can be swept over the whole frame.
type Body struct {
	Name string

	// Spatial properties
	PreviousTransform Transform
	Transform         Transform

	volume    *Volume
	registrar Registrar
	destroyed bool
}

// NewBody creates a live body at position, without volume
func NewBody(name string, position mgl64.Vec2) *Body {
	transform := NewTransform(position)

	return &Body{
		Name:              name,
		PreviousTransform: transform,
		Transform:         transform,
	}
}

func (b *Body) Position() mgl64.Vec2 {
	return b.Transform.Position
}

func (b *Body) PreviousPosition() mgl64.Vec2 {
	return b.PreviousTransform.Position
}

// SetPosition teleports the body: no motion is recorded for this frame
func (b *Body) SetPosition(position mgl64.Vec2) {
	b.Transform.Position = position
	b.PreviousTransform.Position = position
}

// BeginFrame records the current position as the start of the frame motion
func (b *Body) BeginFrame() {
	b.PreviousTransform = b.Transform
}

// MoveTo moves the body, the old position becoming the previous one
func (b *Body) MoveTo(position mgl64.Vec2) {
	b.PreviousTransform = b.Transform
	b.Transform.Position = position
}

// Translate moves the body by delta within the current frame,
// keeping the previous position recorded by BeginFrame
func (b *Body) Translate(delta mgl64.Vec2) {
	b.Transform = b.Transform.Translate(delta)
}

// Volume returns the attached volume, or nil
func (b *Body) Volume() *Volume {
	return b.volume
}

// SetVolume replaces the body volume: the old one is unregistered first,
// then volume is bound to the body and registered into registrar.
// A nil volume only detaches the current one.
func (b *Body) SetVolume(registrar Registrar, volume *Volume) {
	if volume != nil && volume == b.volume && registrar == b.registrar {
		return
	}

	b.detach()
	if b.destroyed || volume == nil {
		return
	}

	// A volume has a single owner
	if previous, ok := volume.owner.(*Body); ok && previous != b && previous.volume == volume {
		previous.detach()
	}

	volume.owner = b
	b.volume = volume
	b.registrar = registrar
	if registrar != nil {
		registrar.Register(volume)
	}
}

func (b *Body) detach() {
	if b.volume == nil {
		return
	}
	if b.registrar != nil {
		b.registrar.Unregister(b.volume)
	}
	b.volume.owner = nil
	b.volume = nil
	b.registrar = nil
}

// Destroy unregisters the volume, then releases it. Calling it twice is harmless.
func (b *Body) Destroy() {
	b.detach()
	b.destroyed = true
}

func (b *Body) IsAlive() bool {
	return !b.destroyed
}
