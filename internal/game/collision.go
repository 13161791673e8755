package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// rayStep is the march interval for occlusion rays, in world units.
const rayStep = 0.5

// CollisionIndex answers planar queries against the city's active building
// set. It only reads the streamer; the streamer remains the sole mutator.
type CollisionIndex struct {
	city *CityStreamer
}

func NewCollisionIndex(city *CityStreamer) *CollisionIndex {
	return &CollisionIndex{city: city}
}

// Intersects reports whether a circle of the given radius at p overlaps
// any active building. The test is cylindrical in the ground plane: a
// building's placement rotation never changes the answer, and each prefab
// contributes its own trigger buffer.
func (ci *CollisionIndex) Intersects(p mgl64.Vec3, radius float64) bool {
	for _, b := range ci.city.active {
		dx := p.X() - b.Tf.Pos.X()
		dz := p.Z() - b.Tf.Pos.Z()
		if math.Hypot(dx, dz) < b.HalfWidth+radius+b.Buffer {
			return true
		}
	}
	return false
}

// RayBlocked marches from `from` toward `to` and reports whether any
// building volume obstructs the segment before it reaches `to`. Used by
// the chase camera; the trigger buffer does not apply, only geometry.
func (ci *CollisionIndex) RayBlocked(from, to mgl64.Vec3) bool {
	delta := to.Sub(from)
	dist := delta.Len()
	if dist <= rayStep {
		return false
	}
	dir := delta.Mul(1 / dist)
	for t := rayStep; t < dist; t += rayStep {
		pt := from.Add(dir.Mul(t))
		for _, b := range ci.city.active {
			if pt.Y() > b.Height {
				continue
			}
			dx := pt.X() - b.Tf.Pos.X()
			dz := pt.Z() - b.Tf.Pos.Z()
			if math.Hypot(dx, dz) < b.HalfWidth {
				return true
			}
		}
	}
	return false
}
