package virtual

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/omath"
	"github.com/oomph-ac/locomotion/world"
)

type shape uint8

const (
	shapeBox shape = iota
	shapeRamp
)

// Solid is a static or kinematic collider in a World. Boxes stay axis aligned when a solid
// turns; yaw only carries what is parented to it. A solid is both its own transform and its
// own collider.
type Solid struct {
	name    string
	tag     string
	layer   int
	trigger bool

	w     *World
	shape shape
	pos   mgl32.Vec3
	yaw   float32

	// box is relative to pos. For ramps it is the footprint of the slope.
	box cube.BBox
	// normal is the surface normal of a ramp.
	normal mgl32.Vec3

	velocity mgl32.Vec3
	yawRate  float32
}

// NewBox returns a box solid spanning from lo to hi.
func NewBox(name string, lo, hi mgl32.Vec3) *Solid {
	center := lo.Add(hi).Mul(0.5)
	return &Solid{
		name:  name,
		shape: shapeBox,
		pos:   center,
		box:   cube.Box(lo[0], lo[1], lo[2], hi[0], hi[1], hi[2]).Translate(center.Mul(-1)),
	}
}

// NewRamp returns a one-sided slope centred on center, rising along +Z at angle degrees.
func NewRamp(name string, center mgl32.Vec3, halfWidth, halfLength, angle float32) *Solid {
	rad := mgl32.DegToRad(angle)
	rise := halfLength * math32.Tan(rad)
	return &Solid{
		name:   name,
		shape:  shapeRamp,
		pos:    center,
		box:    cube.Box(-halfWidth, -rise, -halfLength, halfWidth, rise, halfLength),
		normal: mgl32.Vec3{0, math32.Cos(rad), -math32.Sin(rad)},
	}
}

// WithTag sets the tag reported by ground queries.
func (s *Solid) WithTag(tag string) *Solid {
	s.tag = tag
	return s
}

// WithLayer sets the collision layer.
func (s *Solid) WithLayer(layer int) *Solid {
	s.layer = layer
	return s
}

// AsTrigger turns the solid into a trigger volume that only trigger-aware queries report.
func (s *Solid) AsTrigger() *Solid {
	s.trigger = true
	return s
}

// Name ...
func (s *Solid) Name() string {
	return s.name
}

// Position ...
func (s *Solid) Position() mgl32.Vec3 {
	if s.w != nil {
		s.w.mu.RLock()
		defer s.w.mu.RUnlock()
	}
	return s.pos
}

// Rotation ...
func (s *Solid) Rotation() mgl32.Quat {
	return omath.YawRotation(s.EulerAngles().Y())
}

// EulerAngles ...
func (s *Solid) EulerAngles() mgl32.Vec3 {
	if s.w != nil {
		s.w.mu.RLock()
		defer s.w.mu.RUnlock()
	}
	return mgl32.Vec3{0, s.yaw, 0}
}

// Layer ...
func (s *Solid) Layer() int {
	return s.layer
}

// Transform ...
func (s *Solid) Transform() world.Transform {
	return s
}

// Tag ...
func (s *Solid) Tag() string {
	return s.tag
}

// IsTrigger ...
func (s *Solid) IsTrigger() bool {
	return s.trigger
}

// worldBox returns the box of the solid at its current position.
func (s *Solid) worldBox() cube.BBox {
	return s.box.Translate(s.pos)
}

// rampDistance returns the signed distance from p to the ramp surface and whether p lies above
// the ramp's footprint.
func (s *Solid) rampDistance(p mgl32.Vec3) (float32, bool) {
	bb := s.worldBox()
	inside := p[0] >= bb.Min()[0] && p[0] <= bb.Max()[0] && p[2] >= bb.Min()[2] && p[2] <= bb.Max()[2]
	return s.normal.Dot(p.Sub(s.pos)), inside
}

// sweepSphere sweeps a sphere from origin along dir and reports the first contact with the
// solid within maxDistance.
func (s *Solid) sweepSphere(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDistance float32) (world.Hit, bool) {
	if s.shape == shapeRamp {
		return s.sweepRamp(origin, radius, dir, maxDistance)
	}

	bb := s.worldBox()
	grown := bb.Grow(radius)
	if grown.Vec3Within(origin) {
		return s.hit(clampToBox(origin, bb), mgl32.Vec3{0, 1, 0}, 0), true
	}
	res, ok := trace.BBoxIntercept(grown, origin, origin.Add(dir.Mul(maxDistance)))
	if !ok {
		return world.Hit{}, false
	}
	center := res.Position()
	return s.hit(clampToBox(center, bb), faceNormal(res.Face()), center.Sub(origin).Len()), true
}

func (s *Solid) sweepRamp(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDistance float32) (world.Hit, bool) {
	d, _ := s.rampDistance(origin)
	approach := s.normal.Dot(dir)

	var t float32
	switch {
	case d < -radius:
		return world.Hit{}, false
	case d <= radius:
		t = 0
	case approach >= 0:
		return world.Hit{}, false
	default:
		t = (radius - d) / approach
	}
	if t > maxDistance {
		return world.Hit{}, false
	}

	center := origin.Add(dir.Mul(t))
	if _, inside := s.rampDistance(center); !inside {
		return world.Hit{}, false
	}
	return s.hit(center.Sub(s.normal.Mul(radius)), s.normal, t), true
}

func (s *Solid) hit(point, normal mgl32.Vec3, distance float32) world.Hit {
	return world.Hit{Transform: s, Collider: s, Point: point, Normal: normal, Distance: distance}
}
