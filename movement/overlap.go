package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/omath"
	"github.com/oomph-ac/locomotion/world"
)

// AvoidOverlaps pushes motion out of the colliders on mask that the body would overlap after
// moving by it.
func AvoidOverlaps(p world.Provider, body world.Body, mask world.LayerMask, motion mgl32.Vec3) mgl32.Vec3 {
	predicted := body.Position().Add(motion)
	radius := body.Radius()
	p0 := predicted.Add(omath.Up.Mul(radius))
	p1 := predicted.Add(omath.Up.Mul(body.Height() - radius))

	self := body.Collider()
	pose := world.Pose{Position: predicted, Rotation: body.Rotation()}
	for _, c := range p.OverlapCapsule(p0, p1, radius, mask, world.IgnoreTriggers) {
		if c == self {
			continue
		}
		t := c.Transform()
		dir, dist, ok := p.ComputePenetration(self, pose, c, world.Pose{Position: t.Position(), Rotation: t.Rotation()})
		if ok {
			motion = motion.Add(dir.Mul(dist))
		}
	}
	return motion
}
