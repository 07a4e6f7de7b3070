package component

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/omath"
	"github.com/oomph-ac/locomotion/world"
)

// GroundInfo is a snapshot of the ground below the character for a single tick.
type GroundInfo struct {
	Transform world.Transform
	Collider  world.Collider

	Normal  mgl32.Vec3
	Contact mgl32.Vec3
	// Orthogonal is the unit tangent of the ground pointing downhill.
	Orthogonal mgl32.Vec3
	// Slope is the angle between the ground normal and world up in degrees, NaN without ground.
	Slope float32

	Tag   string
	Layer int
}

// NoGround returns the GroundInfo used when nothing is below the character.
func NoGround() GroundInfo {
	return GroundInfo{Slope: math32.NaN(), Layer: -1}
}

// Valid reports whether g describes actual ground.
func (g GroundInfo) Valid() bool {
	return g.Transform != nil
}

// GroundFromHit builds a GroundInfo from a sphere cast hit.
func GroundFromHit(h world.Hit) GroundInfo {
	n := omath.SafeNormalize(h.Normal)
	n, orth := omath.OrthoNormalize(n, mgl32.Vec3{n.X(), -n.Y(), n.Z()})

	g := GroundInfo{
		Transform:  h.Transform,
		Collider:   h.Collider,
		Normal:     n,
		Contact:    h.Point,
		Orthogonal: orth,
		Slope:      omath.Angle(omath.Up, n),
		Layer:      -1,
	}
	if h.Collider != nil {
		g.Tag = h.Collider.Tag()
	}
	if h.Transform != nil {
		g.Layer = h.Transform.Layer()
	}
	return g
}

// GroundSensor finds the ground below a capsule.
type GroundSensor struct {
	Provider world.Provider
	// Offset is how much narrower the probe sphere is than the capsule.
	Offset float32
}

// Sense sweeps a sphere of radius-Offset down from origin by distance. Hits on self and on
// triggers are skipped. The closest remaining hit wins and ties keep the hit reported first.
func (s GroundSensor) Sense(self world.Body, origin mgl32.Vec3, radius, distance float32, mask world.LayerMask) GroundInfo {
	hits := s.Provider.SphereCastAll(origin, radius-s.Offset, omath.Down, distance, mask, world.IgnoreTriggers)

	best := -1
	for i, h := range hits {
		if isSelf(self, h) || (h.Collider != nil && h.Collider.IsTrigger()) {
			continue
		}
		if best == -1 || h.Distance < hits[best].Distance {
			best = i
		}
	}
	if best == -1 {
		return NoGround()
	}
	return GroundFromHit(hits[best])
}

func isSelf(self world.Body, h world.Hit) bool {
	if self == nil {
		return false
	}
	if h.Transform != nil && h.Transform == world.Transform(self) {
		return true
	}
	return h.Collider != nil && h.Collider == self.Collider()
}
