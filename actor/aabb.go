package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// NewAABB builds the box centered on center with the given half-extents
func NewAABB(center, halfExtents mgl64.Vec2) AABB {
	return AABB{Min: center.Sub(halfExtents), Max: center.Add(halfExtents)}
}

// Canonical swaps inverted bounds so that Min <= Max on each axis
func (a AABB) Canonical() AABB {
	return AABB{
		Min: mgl64.Vec2{math.Min(a.Min.X(), a.Max.X()), math.Min(a.Min.Y(), a.Max.Y())},
		Max: mgl64.Vec2{math.Max(a.Min.X(), a.Max.X()), math.Max(a.Min.Y(), a.Max.Y())},
	}
}

// Center returns the middle point of the box
func (a AABB) Center() mgl64.Vec2 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Size returns the full width and height of the box
func (a AABB) Size() mgl64.Vec2 {
	return a.Max.Sub(a.Min)
}

// ContainsPoint checks if a point is inside the AABB, borders included
func (a AABB) ContainsPoint(point mgl64.Vec2) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y()
}

// Overlaps checks if two AABBs overlap
// Touching edges count as an overlap
func (a AABB) Overlaps(other AABB) bool {
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y()
}

// ClosestPoint clamps point into the box on each axis
func (a AABB) ClosestPoint(point mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		mgl64.Clamp(point.X(), a.Min.X(), a.Max.X()),
		mgl64.Clamp(point.Y(), a.Min.Y(), a.Max.Y()),
	}
}

// ClipSegment clips the segment p0 + t*(p1-p0), t in [0,1], against the box
// (Liang-Barsky). It returns the parametric window [tEnter, tExit] where the
// segment lies inside the box, and false when the segment misses it.
func (a AABB) ClipSegment(p0, p1 mgl64.Vec2) (tEnter, tExit float64, ok bool) {
	d := p1.Sub(p0)
	tEnter, tExit = 0.0, 1.0

	// p is the signed projection of the motion on the slab normal,
	// q the distance from p0 to that slab border
	clip := func(p, q float64) bool {
		if p == 0 {
			// Parallel to the border: inside keeps the axis unconstrained
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > tExit {
				return false
			}
			tEnter = math.Max(tEnter, r)
		} else {
			if r < tEnter {
				return false
			}
			tExit = math.Min(tExit, r)
		}
		return true
	}

	if !clip(-d.X(), p0.X()-a.Min.X()) ||
		!clip(d.X(), a.Max.X()-p0.X()) ||
		!clip(-d.Y(), p0.Y()-a.Min.Y()) ||
		!clip(d.Y(), a.Max.Y()-p0.Y()) {
		return 0, 0, false
	}

	return tEnter, tExit, tEnter <= tExit
}

// IntersectsSegment reports whether the segment from p0 to p1 crosses the box
func (a AABB) IntersectsSegment(p0, p1 mgl64.Vec2) bool {
	_, _, ok := a.ClipSegment(p0, p1)
	return ok
}
