package hitbox

import (
	"github.com/akmonengine/hitbox/actor"
)

// BroadPhase returns the pairs of active volumes whose bounds overlap.
// With a nil grid it is an O(n²) brute-force pass, suitable for the tens of
// volumes of a typical frame; a grid prunes pairs for larger populations.
// Pairs are ordered by registration order of A, then B.
func BroadPhase(spatialGrid *SpatialGrid, volumes []*actor.Volume) []Pair {
	active := make([]*actor.Volume, 0, len(volumes))
	for _, volume := range volumes {
		if volume.Active() {
			active = append(active, volume)
		}
	}

	if spatialGrid != nil {
		spatialGrid.Clear()
		for i, volume := range active {
			spatialGrid.Insert(i, volume.Bounds())
		}
		spatialGrid.SortCells()

		return spatialGrid.FindPairs(active)
	}

	pairs := make([]Pair, 0, len(active)/2)
	for i, volumeA := range active {
		boundsA := volumeA.Bounds()
		for _, volumeB := range active[i+1:] {
			if boundsA.Overlaps(volumeB.Bounds()) {
				pairs = append(pairs, Pair{A: volumeA, B: volumeB})
			}
		}
	}

	return pairs
}

// NarrowPhase keeps the pairs whose shapes actually collide
func NarrowPhase(pairs []Pair) []Pair {
	n := 0
	for _, pair := range pairs {
		if pair.A.CheckCollision(pair.B) {
			pairs[n] = pair
			n++
		}
	}

	return pairs[:n]
}

// Pairs returns every pair of registered volumes currently colliding
func (r *Registry) Pairs() []Pair {
	return NarrowPhase(BroadPhase(r.Grid, r.volumes))
}

// Step records the colliding pairs of the frame and dispatches the
// contact events they produce. It is meant to run after entities moved.
func (r *Registry) Step() {
	r.Events.recordContacts(r.Pairs())
	r.Events.flush()
}
