package actor

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type drawCall struct {
	position mgl64.Vec2
	size     mgl64.Vec2
	clr      color.RGBA
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawRect(position mgl64.Vec2, size mgl64.Vec2, clr color.RGBA) {
	r.calls = append(r.calls, drawCall{position: position, size: size, clr: clr})
}

func newBoxVolume(position, halfExtents mgl64.Vec2) *Volume {
	return NewVolume(NewBody("box", position), NewBox(halfExtents))
}

func newCircleVolume(position mgl64.Vec2, radius float64) *Volume {
	return NewVolume(NewBody("circle", position), NewCircle(radius))
}

func TestNewVolume_Defaults(t *testing.T) {
	owner := NewBody("owner", mgl64.Vec2{1, 2})
	v := NewVolume(owner, NewBox(mgl64.Vec2{1, 1}))

	if !v.IsEnabled() {
		t.Error("a new volume should be enabled")
	}
	if v.IsTrigger() {
		t.Error("a new volume should not be a trigger")
	}
	if v.Offset() != (mgl64.Vec2{}) {
		t.Errorf("Offset() = %v, want zero", v.Offset())
	}
	if v.Owner() != Owner(owner) {
		t.Error("Owner() should return the owner given at creation")
	}
	if v.Type() != ShapeTypeBox {
		t.Errorf("Type() = %v, want box", v.Type())
	}
}

func TestVolumeWorldPosition(t *testing.T) {
	owner := NewBody("owner", mgl64.Vec2{10, 5})
	v := NewVolume(owner, NewCircle(1))
	v.SetOffset(mgl64.Vec2{-2, 1})

	if got := v.WorldPosition(); got != (mgl64.Vec2{8, 6}) {
		t.Errorf("WorldPosition() = %v, want {8 6}", got)
	}

	owner.SetPosition(mgl64.Vec2{0, 0})
	if got := v.WorldPosition(); got != (mgl64.Vec2{-2, 1}) {
		t.Errorf("WorldPosition() after move = %v, want {-2 1}", got)
	}

	bounds := v.Bounds()
	if bounds.Min != (mgl64.Vec2{-3, 0}) || bounds.Max != (mgl64.Vec2{-1, 2}) {
		t.Errorf("Bounds() = %v", bounds)
	}
}

func TestVolumeWorldPosition_Ownerless(t *testing.T) {
	v := NewVolume(nil, NewBox(mgl64.Vec2{1, 1}))
	v.SetOffset(mgl64.Vec2{3, 4})

	if got := v.WorldPosition(); got != (mgl64.Vec2{3, 4}) {
		t.Errorf("WorldPosition() = %v, want the offset {3 4}", got)
	}
	if v.Owner() != nil {
		t.Error("Owner() should be nil")
	}
}

func TestVolumeOwner_DeadOwnerIsHidden(t *testing.T) {
	owner := NewBody("owner", mgl64.Vec2{5, 5})
	v := NewVolume(owner, NewBox(mgl64.Vec2{1, 1}))
	other := newBoxVolume(mgl64.Vec2{5, 5}, mgl64.Vec2{1, 1})

	if !v.CheckCollision(other) {
		t.Fatal("volumes at the same place should collide")
	}

	owner.destroyed = true
	if v.Owner() != nil {
		t.Error("Owner() should be nil once the owner is dead")
	}
	if v.CheckCollision(other) || other.CheckCollision(v) {
		t.Error("a volume with a dead owner must not collide")
	}
}

func TestVolumeCheckCollision(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Volume
		expected bool
	}{
		{
			name:     "unit boxes touching",
			a:        newBoxVolume(mgl64.Vec2{0, 0}, mgl64.Vec2{0.5, 0.5}),
			b:        newBoxVolume(mgl64.Vec2{1, 0}, mgl64.Vec2{0.5, 0.5}),
			expected: true,
		},
		{
			name:     "unit boxes separated",
			a:        newBoxVolume(mgl64.Vec2{0, 0}, mgl64.Vec2{0.5, 0.5}),
			b:        newBoxVolume(mgl64.Vec2{1.01, 0}, mgl64.Vec2{0.5, 0.5}),
			expected: false,
		},
		{
			name:     "circles touching",
			a:        newCircleVolume(mgl64.Vec2{0, 0}, 1),
			b:        newCircleVolume(mgl64.Vec2{2, 0}, 1),
			expected: true,
		},
		{
			name:     "circles separated",
			a:        newCircleVolume(mgl64.Vec2{0, 0}, 1),
			b:        newCircleVolume(mgl64.Vec2{2.01, 0}, 1),
			expected: false,
		},
		{
			name:     "circle far from box",
			a:        newBoxVolume(mgl64.Vec2{0, 0}, mgl64.Vec2{2, 2}),
			b:        newCircleVolume(mgl64.Vec2{10, 0}, 1),
			expected: false,
		},
		{
			name:     "circle near box",
			a:        newBoxVolume(mgl64.Vec2{0, 0}, mgl64.Vec2{2, 2}),
			b:        newCircleVolume(mgl64.Vec2{2.5, 0}, 1),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.CheckCollision(tt.b); got != tt.expected {
				t.Errorf("a.CheckCollision(b) = %v, want %v", got, tt.expected)
			}
			if got := tt.b.CheckCollision(tt.a); got != tt.expected {
				t.Errorf("b.CheckCollision(a) = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestVolumeCheckCollision_Offset(t *testing.T) {
	a := newBoxVolume(mgl64.Vec2{0, 0}, mgl64.Vec2{0.5, 0.5})
	b := newBoxVolume(mgl64.Vec2{5, 0}, mgl64.Vec2{0.5, 0.5})

	if a.CheckCollision(b) {
		t.Fatal("volumes should start apart")
	}

	b.SetOffset(mgl64.Vec2{-4.5, 0})
	if !a.CheckCollision(b) {
		t.Error("offset should bring b onto a")
	}
}

func TestVolumeCheckCollision_FailsClosed(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		a := newBoxVolume(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1})
		b := newBoxVolume(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1})

		b.SetEnabled(false)
		if a.CheckCollision(b) || b.CheckCollision(a) {
			t.Error("a disabled volume must not collide")
		}

		b.SetEnabled(true)
		a.SetEnabled(false)
		if a.CheckCollision(b) || b.CheckCollision(a) {
			t.Error("a disabled volume must not collide")
		}
	})

	t.Run("ownerless", func(t *testing.T) {
		a := newBoxVolume(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1})
		b := NewVolume(nil, NewBox(mgl64.Vec2{1, 1}))

		if a.CheckCollision(b) || b.CheckCollision(a) {
			t.Error("an ownerless volume must not collide")
		}
	})

	t.Run("nil", func(t *testing.T) {
		a := newBoxVolume(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1})
		if a.CheckCollision(nil) {
			t.Error("nil must not collide")
		}
	})
}

func TestVolumeTrigger_DoesNotAffectCollision(t *testing.T) {
	a := newBoxVolume(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1})
	b := newBoxVolume(mgl64.Vec2{1, 0}, mgl64.Vec2{1, 1})

	before := a.CheckCollision(b)
	a.SetTrigger(true)
	b.SetTrigger(true)

	if a.CheckCollision(b) != before {
		t.Error("the trigger flag must not change collision results")
	}
}

func TestVolumeResize(t *testing.T) {
	box := newBoxVolume(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1})
	box.SetHalfExtents(mgl64.Vec2{3, 0.5})
	if box.Shape().HalfExtents != (mgl64.Vec2{3, 0.5}) {
		t.Errorf("HalfExtents = %v, want {3 0.5}", box.Shape().HalfExtents)
	}

	circle := newCircleVolume(mgl64.Vec2{0, 0}, 1)
	circle.SetRadius(4)
	if circle.Shape().Radius != 4 {
		t.Errorf("Radius = %v, want 4", circle.Shape().Radius)
	}

	expectPanic(t, "SetRadius on a box", func() { box.SetRadius(2) })
	expectPanic(t, "SetHalfExtents on a circle", func() { circle.SetHalfExtents(mgl64.Vec2{1, 1}) })
}

func TestVolumeDebugRender(t *testing.T) {
	renderer := &recordingRenderer{}

	solid := newBoxVolume(mgl64.Vec2{1, 1}, mgl64.Vec2{2, 0.5})
	trigger := newCircleVolume(mgl64.Vec2{-3, 0}, 1.5)
	trigger.SetTrigger(true)
	disabled := newBoxVolume(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1})
	disabled.SetEnabled(false)

	solid.DebugRender(renderer)
	trigger.DebugRender(renderer)
	disabled.DebugRender(renderer)
	solid.DebugRender(nil)

	if len(renderer.calls) != 2 {
		t.Fatalf("got %d draw calls, want 2", len(renderer.calls))
	}

	expected := []drawCall{
		{position: mgl64.Vec2{1, 1}, size: mgl64.Vec2{4, 1}, clr: SolidColor},
		{position: mgl64.Vec2{-3, 0}, size: mgl64.Vec2{3, 3}, clr: TriggerColor},
	}
	for i, call := range renderer.calls {
		if call != expected[i] {
			t.Errorf("call %d = %+v, want %+v", i, call, expected[i])
		}
	}
}
