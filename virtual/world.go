// Package virtual is a small in-memory physics world made of boxes and ramps. It answers the
// queries of a world.Provider and moves capsules with axis-separated box collision, which is
// enough to drive a controller headless in simulations and tests.
package virtual

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/omath"
	"github.com/oomph-ac/locomotion/world"
	"github.com/sasha-s/go-deadlock"
)

// World keeps track of the solids and capsules of a scene.
type World struct {
	mu       deadlock.RWMutex
	solids   []*Solid
	capsules []*Capsule
	dt       float32
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// Add adds the solids to the world. A solid can only be part of one world.
func (w *World) Add(solids ...*Solid) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, s := range solids {
		if s.w != nil {
			continue
		}
		s.w = w
		w.solids = append(w.solids, s)
	}
}

// Remove removes a solid from the world. It returns false if the solid was not part of it.
func (w *World) Remove(s *Solid) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, other := range w.solids {
		if other == s {
			w.solids = append(w.solids[:i], w.solids[i+1:]...)
			s.w = nil
			return true
		}
	}
	return false
}

// Solids returns a copy of the solids in the world.
func (w *World) Solids() []*Solid {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]*Solid(nil), w.solids...)
}

// SetMotion makes s kinematic: every Advance moves it by velocity and turns it by yawRate
// degrees per second.
func (w *World) SetMotion(s *Solid, velocity mgl32.Vec3, yawRate float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s.velocity, s.yawRate = velocity, yawRate
}

// Teleport moves s to pos without carrying anything parented to it.
func (w *World) Teleport(s *Solid, pos mgl32.Vec3) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s.pos = pos
}

// Advance steps kinematic solids by dt seconds and carries the capsules parented to them. dt is
// also the frame time capsules use to derive their velocity.
func (w *World) Advance(dt float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dt = dt
	if dt <= 0 {
		return
	}

	for _, s := range w.solids {
		if omath.IsZero(s.velocity) && s.yawRate == 0 {
			continue
		}
		delta, turn := s.velocity.Mul(dt), s.yawRate*dt
		pivot := s.pos
		s.pos = s.pos.Add(delta)
		s.yaw = omath.WrapAngleDelta(s.yaw + turn)

		rot := omath.YawRotation(turn)
		for _, c := range w.capsules {
			if c.parent != world.Transform(s) {
				continue
			}
			c.pos = pivot.Add(rot.Rotate(c.pos.Sub(pivot))).Add(delta)
			c.yaw = omath.WrapAngleDelta(c.yaw + turn)
		}
	}
}

// SphereCastAll ...
func (w *World) SphereCastAll(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDistance float32, mask world.LayerMask, triggers world.TriggerInteraction) []world.Hit {
	dir = omath.SafeNormalize(dir)

	w.mu.RLock()
	defer w.mu.RUnlock()
	var hits []world.Hit
	for _, s := range w.solids {
		if !queryable(s, mask, triggers) {
			continue
		}
		if h, ok := s.sweepSphere(origin, radius, dir, maxDistance); ok {
			hits = append(hits, h)
		}
	}
	return hits
}

// SphereCast ...
func (w *World) SphereCast(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDistance float32, mask world.LayerMask, triggers world.TriggerInteraction) bool {
	dir = omath.SafeNormalize(dir)

	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, s := range w.solids {
		if !queryable(s, mask, triggers) {
			continue
		}
		if _, ok := s.sweepSphere(origin, radius, dir, maxDistance); ok {
			return true
		}
	}
	return false
}

// OverlapCapsule ...
func (w *World) OverlapCapsule(p0, p1 mgl32.Vec3, radius float32, mask world.LayerMask, triggers world.TriggerInteraction) []world.Collider {
	bb := capsuleBox(p0, p1, radius)

	w.mu.RLock()
	defer w.mu.RUnlock()
	var colliders []world.Collider
	for _, s := range w.solids {
		if !queryable(s, mask, triggers) {
			continue
		}
		if s.shape == shapeRamp {
			if _, _, ok := s.rampPenetration(lowestSphere(p0, p1), radius); ok {
				colliders = append(colliders, s)
			}
			continue
		}
		if s.worldBox().IntersectsWith(bb) {
			colliders = append(colliders, s)
		}
	}
	return colliders
}

// ComputePenetration supports a capsule of this world against a solid of this world. Other
// pairs never report a penetration.
func (w *World) ComputePenetration(a world.Collider, poseA world.Pose, b world.Collider, poseB world.Pose) (mgl32.Vec3, float32, bool) {
	ca, ok := a.(*capsuleCollider)
	if !ok {
		return mgl32.Vec3{}, 0, false
	}
	s, ok := b.(*Solid)
	if !ok {
		return mgl32.Vec3{}, 0, false
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	c := ca.c
	if s.shape == shapeRamp {
		ramp := *s
		ramp.pos = poseB.Position
		return ramp.rampPenetration(poseA.Position.Add(omath.Up.Mul(c.radius)), c.radius)
	}
	return boxPenetration(c.boxAt(poseA.Position), s.box.Translate(poseB.Position))
}

// rampPenetration returns how far a sphere at center must move along the ramp normal to rest on
// its surface.
func (s *Solid) rampPenetration(center mgl32.Vec3, radius float32) (mgl32.Vec3, float32, bool) {
	d, inside := s.rampDistance(center)
	if !inside || d >= radius || d < -radius {
		return mgl32.Vec3{}, 0, false
	}
	return s.normal, radius - d, true
}

func queryable(s *Solid, mask world.LayerMask, triggers world.TriggerInteraction) bool {
	if s.trigger && triggers == world.IgnoreTriggers {
		return false
	}
	return mask.Contains(s.layer)
}

func capsuleBox(p0, p1 mgl32.Vec3, radius float32) cube.BBox {
	lo := mgl32.Vec3{min(p0[0], p1[0]), min(p0[1], p1[1]), min(p0[2], p1[2])}
	hi := mgl32.Vec3{max(p0[0], p1[0]), max(p0[1], p1[1]), max(p0[2], p1[2])}
	return cube.Box(lo[0], lo[1], lo[2], hi[0], hi[1], hi[2]).Grow(radius)
}

func lowestSphere(p0, p1 mgl32.Vec3) mgl32.Vec3 {
	if p1[1] < p0[1] {
		return p1
	}
	return p0
}
