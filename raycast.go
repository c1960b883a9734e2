package hitbox

import (
	"math"

	"github.com/akmonengine/hitbox/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// RaycastHit describes the nearest volume crossed by a ray
type RaycastHit struct {
	Volume *actor.Volume
	// Point is where the segment enters the volume
	Point mgl64.Vec2
	// Fraction of the segment, in [0,1], at Point
	Fraction float64
}

// Raycast returns the nearest active volume crossed by the segment from start
// to end. A segment starting inside a volume hits it at fraction 0; on equal
// fractions the earliest registered volume wins.
// With LegacyRaycast set, it never reports a hit.
func (r *Registry) Raycast(start, end mgl64.Vec2) (RaycastHit, bool) {
	if r.LegacyRaycast {
		return RaycastHit{}, false
	}

	best := RaycastHit{Fraction: math.Inf(1)}
	for _, volume := range r.volumes {
		if !volume.Active() {
			continue
		}

		t, ok := segmentEntry(start, end, volume)
		if ok && t < best.Fraction {
			best.Volume = volume
			best.Fraction = t
		}
	}

	if best.Volume == nil {
		return RaycastHit{}, false
	}

	best.Point = start.Add(end.Sub(start).Mul(best.Fraction))
	return best, true
}

// segmentEntry computes the fraction where the segment enters the volume shape
func segmentEntry(start, end mgl64.Vec2, volume *actor.Volume) (float64, bool) {
	shape := volume.Shape()

	switch shape.Type {
	case actor.ShapeTypeBox:
		tEnter, _, ok := volume.Bounds().ClipSegment(start, end)
		return tEnter, ok
	case actor.ShapeTypeCircle:
		return segmentCircleEntry(start, end, volume.WorldPosition(), shape.Radius)
	}

	return 0, false
}

func segmentCircleEntry(start, end, center mgl64.Vec2, radius float64) (float64, bool) {
	f := start.Sub(center)
	c := f.Dot(f) - radius*radius
	if c <= 0 {
		return 0, true
	}

	d := end.Sub(start)
	a := d.Dot(d)
	if a == 0 {
		return 0, false
	}

	b := 2 * f.Dot(d)
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	t := (-b - math.Sqrt(discriminant)) / (2 * a)
	if t < 0 || t > 1 {
		return 0, false
	}

	return t, true
}
