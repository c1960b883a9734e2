package hitbox

import (
	"github.com/akmonengine/hitbox/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Registry is the collection of live collision volumes of a simulation.
// It holds no ownership: a volume belongs to its owner, which must
// unregister it before releasing it (see actor.Body).
// A Registry is not safe for concurrent use.
type Registry struct {
	// List of registered volumes, in registration order
	volumes []*actor.Volume

	// Grid, when set, is used by Pairs to prune candidate pairs
	Grid *SpatialGrid
	// LegacyRaycast restores the historical raycast that never hits anything
	LegacyRaycast bool

	Events Events

	debugDraw bool
}

// NewRegistry creates an empty registry, with debug drawing off
func NewRegistry() *Registry {
	return &Registry{
		Events: NewEvents(),
	}
}

// Register adds a volume. Registering twice is a no-op.
func (r *Registry) Register(volume *actor.Volume) {
	if volume == nil || r.Contains(volume) {
		return
	}

	r.volumes = append(r.volumes, volume)
}

// Unregister removes a volume. Removing an absent volume is a no-op.
func (r *Registry) Unregister(volume *actor.Volume) {
	if volume == nil {
		return
	}

	k := r.indexOf(volume)
	if k != -1 {
		r.volumes = append(r.volumes[:k], r.volumes[k+1:]...)
	}

	r.Events.forget(volume)
}

func (r *Registry) indexOf(volume *actor.Volume) int {
	for i, v := range r.volumes {
		if v == volume {
			return i
		}
	}

	return -1
}

func (r *Registry) Contains(volume *actor.Volume) bool {
	return r.indexOf(volume) != -1
}

func (r *Registry) Len() int {
	return len(r.volumes)
}

// Volumes returns a copy of the registered volumes, in registration order
func (r *Registry) Volumes() []*actor.Volume {
	return append([]*actor.Volume(nil), r.volumes...)
}

// Clear drops every volume and tracked contact, on shutdown
func (r *Registry) Clear() {
	clear(r.volumes)
	r.volumes = r.volumes[:0]
	r.Events.reset()
}

// QueryFirst returns the first registered volume colliding with volume,
// or nil. Candidates are visited in registration order: when several overlap,
// the earliest registered wins regardless of distance.
func (r *Registry) QueryFirst(volume *actor.Volume) *actor.Volume {
	if volume == nil || !volume.IsEnabled() {
		return nil
	}

	for _, other := range r.volumes {
		if other == volume || !other.IsEnabled() {
			continue
		}
		if volume.CheckCollision(other) {
			return other
		}
	}

	return nil
}

// QueryAll returns every registered volume colliding with volume,
// in registration order
func (r *Registry) QueryAll(volume *actor.Volume) []*actor.Volume {
	var hits []*actor.Volume
	if volume == nil || !volume.IsEnabled() {
		return hits
	}

	for _, other := range r.volumes {
		if other == volume || !other.IsEnabled() {
			continue
		}
		if volume.CheckCollision(other) {
			hits = append(hits, other)
		}
	}

	return hits
}

// QueryPoint returns every active volume containing point, in registration order
func (r *Registry) QueryPoint(point mgl64.Vec2) []*actor.Volume {
	return r.queryProbe(actor.NewCircle(0), point)
}

// QueryAABB returns every active volume overlapping area, in registration order.
// Inverted corners are accepted.
func (r *Registry) QueryAABB(area actor.AABB) []*actor.Volume {
	area = area.Canonical()
	return r.queryProbe(actor.NewBox(area.Size().Mul(0.5)), area.Center())
}

// queryProbe runs QueryAll for a throwaway volume that is never registered
func (r *Registry) queryProbe(shape actor.Shape, position mgl64.Vec2) []*actor.Volume {
	probe := actor.NewVolume(actor.NewBody("probe", position), shape)

	return r.QueryAll(probe)
}

// SetDebugDraw toggles DebugRenderAll
func (r *Registry) SetDebugDraw(enabled bool) {
	r.debugDraw = enabled
}

func (r *Registry) IsDebugDrawEnabled() bool {
	return r.debugDraw
}

// DebugRenderAll draws every registered volume when debug drawing is on
func (r *Registry) DebugRenderAll(renderer actor.Renderer) {
	if !r.debugDraw {
		return
	}

	for _, volume := range r.volumes {
		volume.DebugRender(renderer)
	}
}
