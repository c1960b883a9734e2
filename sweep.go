package hitbox

import (
	"sort"

	"github.com/akmonengine/hitbox/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// SweepHit is a candidate crossed by a swept segment
type SweepHit struct {
	Volume *actor.Volume
	// Fraction of the segment, in [0,1], where it enters the volume bounds
	Fraction float64
}

// Sweep tests the motion from start to end over one frame against the
// candidates shapes, catching thin targets that a fast mover would skip
// between two discrete positions. It returns the first candidate, in slice
// order, crossed by the segment, or nil.
// Disabled and ownerless candidates are skipped.
func Sweep(start, end mgl64.Vec2, candidates []*actor.Volume) *actor.Volume {
	for _, candidate := range candidates {
		if swept(start, end, candidate) {
			return candidate
		}
	}

	return nil
}

func swept(start, end mgl64.Vec2, candidate *actor.Volume) bool {
	if candidate == nil || !candidate.Active() {
		return false
	}

	_, ok := segmentEntry(start, end, candidate)
	return ok
}

// SweepAll returns every candidate crossed by the segment, nearest first.
// Fraction is where the segment enters the shape, 0 when it starts inside.
// Candidates entered at the same fraction keep their slice order.
func SweepAll(start, end mgl64.Vec2, candidates []*actor.Volume) []SweepHit {
	var hits []SweepHit
	for _, candidate := range candidates {
		if candidate == nil || !candidate.Active() {
			continue
		}
		if tEnter, ok := segmentEntry(start, end, candidate); ok {
			hits = append(hits, SweepHit{Volume: candidate, Fraction: tEnter})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Fraction < hits[j].Fraction
	})

	return hits
}

// SweepBody sweeps the volume anchor of body from its previous position to
// its current one. It returns nil for a dead body or one without volume.
func SweepBody(body *actor.Body, candidates []*actor.Volume) *actor.Volume {
	if body == nil || !body.IsAlive() || body.Volume() == nil {
		return nil
	}

	offset := body.Volume().Offset()
	start := body.PreviousPosition().Add(offset)
	end := body.Position().Add(offset)

	self := body.Volume()
	for _, candidate := range candidates {
		if candidate == self {
			continue
		}
		if swept(start, end, candidate) {
			return candidate
		}
	}

	return nil
}
