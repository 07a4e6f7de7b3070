package virtual

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/omath"
	"github.com/oomph-ac/locomotion/world"
)

// Capsule is an upright capsule body moved through a World. Its position is the foot of the
// capsule.
type Capsule struct {
	w *World

	pos        mgl32.Vec3
	yaw        float32
	height     float32
	center     mgl32.Vec3
	radius     float32
	slopeLimit float32
	layer      int

	velocity mgl32.Vec3
	parent   world.Transform
	collider *capsuleCollider
}

type capsuleCollider struct {
	c *Capsule
}

func (c *capsuleCollider) Transform() world.Transform { return c.c }
func (c *capsuleCollider) Tag() string                { return "Player" }
func (c *capsuleCollider) IsTrigger() bool            { return false }

// NewCapsule adds a capsule standing at pos to the world.
func (w *World) NewCapsule(pos mgl32.Vec3, height, radius, slopeLimit float32) *Capsule {
	c := &Capsule{
		w:          w,
		pos:        pos,
		height:     height,
		center:     omath.Up.Mul(height / 2),
		radius:     radius,
		slopeLimit: slopeLimit,
	}
	c.collider = &capsuleCollider{c: c}

	w.mu.Lock()
	w.capsules = append(w.capsules, c)
	w.mu.Unlock()
	return c
}

// Position ...
func (c *Capsule) Position() mgl32.Vec3 {
	c.w.mu.RLock()
	defer c.w.mu.RUnlock()
	return c.pos
}

// Rotation ...
func (c *Capsule) Rotation() mgl32.Quat {
	return omath.YawRotation(c.EulerAngles().Y())
}

// EulerAngles ...
func (c *Capsule) EulerAngles() mgl32.Vec3 {
	c.w.mu.RLock()
	defer c.w.mu.RUnlock()
	return mgl32.Vec3{0, c.yaw, 0}
}

// SetYaw turns the capsule to face yaw degrees.
func (c *Capsule) SetYaw(yaw float32) {
	c.w.mu.Lock()
	defer c.w.mu.Unlock()
	c.yaw = omath.WrapAngleDelta(yaw)
}

// Layer ...
func (c *Capsule) Layer() int {
	return c.layer
}

// Height ...
func (c *Capsule) Height() float32 {
	c.w.mu.RLock()
	defer c.w.mu.RUnlock()
	return c.height
}

// SetHeight ...
func (c *Capsule) SetHeight(h float32) {
	c.w.mu.Lock()
	defer c.w.mu.Unlock()
	c.height = h
}

// Center ...
func (c *Capsule) Center() mgl32.Vec3 {
	c.w.mu.RLock()
	defer c.w.mu.RUnlock()
	return c.center
}

// SetCenter ...
func (c *Capsule) SetCenter(center mgl32.Vec3) {
	c.w.mu.Lock()
	defer c.w.mu.Unlock()
	c.center = center
}

// Radius ...
func (c *Capsule) Radius() float32 {
	return c.radius
}

// SlopeLimit ...
func (c *Capsule) SlopeLimit() float32 {
	return c.slopeLimit
}

// Velocity ...
func (c *Capsule) Velocity() mgl32.Vec3 {
	c.w.mu.RLock()
	defer c.w.mu.RUnlock()
	return c.velocity
}

// Parent ...
func (c *Capsule) Parent() world.Transform {
	c.w.mu.RLock()
	defer c.w.mu.RUnlock()
	return c.parent
}

// SetParent ...
func (c *Capsule) SetParent(t world.Transform) {
	c.w.mu.Lock()
	defer c.w.mu.Unlock()
	c.parent = t
}

// Collider ...
func (c *Capsule) Collider() world.Collider {
	return c.collider
}

// Move sweeps the capsule by displacement. Boxes are resolved one axis at a time, Y first, and
// ramps push the bottom of the capsule back onto their surface. The velocity becomes the
// resolved displacement divided by the frame time of the world.
func (c *Capsule) Move(displacement mgl32.Vec3) {
	c.w.mu.Lock()
	defer c.w.mu.Unlock()

	old := c.pos
	collisionBB := c.boxAt(c.pos)
	bbList := c.w.nearbyBoxes(collisionBB.Extend(displacement))

	yVel := mgl32.Vec3{0, displacement.Y()}
	for i := len(bbList) - 1; i >= 0; i-- {
		yVel = clipVelocity(bbList[i], collisionBB, yVel)
	}
	collisionBB = collisionBB.Translate(yVel)

	xVel := mgl32.Vec3{displacement.X()}
	for i := len(bbList) - 1; i >= 0; i-- {
		xVel = clipVelocity(bbList[i], collisionBB, xVel)
	}
	collisionBB = collisionBB.Translate(xVel)

	zVel := mgl32.Vec3{0, 0, displacement.Z()}
	for i := len(bbList) - 1; i >= 0; i-- {
		zVel = clipVelocity(bbList[i], collisionBB, zVel)
	}

	c.pos = c.pos.Add(yVel).Add(xVel).Add(zVel)
	for _, s := range c.w.solids {
		if s.shape != shapeRamp || s.trigger {
			continue
		}
		if dir, depth, ok := s.rampPenetration(c.pos.Add(omath.Up.Mul(c.radius)), c.radius); ok {
			c.pos = c.pos.Add(dir.Mul(depth))
		}
	}

	if c.w.dt > 0 {
		c.velocity = c.pos.Sub(old).Mul(1 / c.w.dt)
	}
}

// boxAt returns the bounding box of the capsule standing at foot.
func (c *Capsule) boxAt(foot mgl32.Vec3) cube.BBox {
	return cube.Box(
		foot[0]-c.radius, foot[1], foot[2]-c.radius,
		foot[0]+c.radius, foot[1]+c.height, foot[2]+c.radius,
	)
}

// nearbyBoxes returns the boxes of every solid box that intersects bb. The caller must hold the
// world lock.
func (w *World) nearbyBoxes(bb cube.BBox) []cube.BBox {
	var list []cube.BBox
	for _, s := range w.solids {
		if s.shape != shapeBox || s.trigger {
			continue
		}
		if b := s.worldBox(); b.IntersectsWith(bb.Grow(0.01)) {
			list = append(list, b)
		}
	}
	return list
}
