// Package world declares the collaborators the locomotion core consumes from its host: the
// physics query port, the capsule body it moves, and the transforms and colliders those
// queries report.
package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LayerMask is a bit set of collision layers 0-31.
type LayerMask uint32

const (
	// NoLayers matches nothing.
	NoLayers LayerMask = 0
	// AllLayers matches every layer.
	AllLayers LayerMask = ^LayerMask(0)
)

// Layers returns a mask containing the given layers.
func Layers(layers ...int) LayerMask {
	var m LayerMask
	for _, l := range layers {
		if l >= 0 && l < 32 {
			m |= 1 << l
		}
	}
	return m
}

// Contains reports whether layer is part of the mask.
func (m LayerMask) Contains(layer int) bool {
	return layer >= 0 && layer < 32 && m&(1<<layer) != 0
}

// TriggerInteraction controls whether queries report trigger volumes.
type TriggerInteraction uint8

const (
	IgnoreTriggers TriggerInteraction = iota
	CollideTriggers
)

// Transform is a positioned object in the world. Euler angles are in degrees. Transforms are
// identified by interface equality, so implementations must be comparable; use pointer types.
type Transform interface {
	Position() mgl32.Vec3
	Rotation() mgl32.Quat
	EulerAngles() mgl32.Vec3
	Layer() int
}

// Collider is a collision shape attached to a transform.
type Collider interface {
	Transform() Transform
	Tag() string
	IsTrigger() bool
}

// Hit is a single result of a sphere cast.
type Hit struct {
	Transform Transform
	Collider  Collider
	Point     mgl32.Vec3
	Normal    mgl32.Vec3
	Distance  float32
}

// Pose is a position and rotation at which a collider is evaluated.
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Provider is the physics query port. Implementations need not order SphereCastAll results.
type Provider interface {
	// SphereCastAll sweeps a sphere from origin along dir and returns every hit within maxDistance.
	SphereCastAll(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDistance float32, mask LayerMask, triggers TriggerInteraction) []Hit
	// SphereCast reports whether the same sweep hits anything.
	SphereCast(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDistance float32, mask LayerMask, triggers TriggerInteraction) bool
	// OverlapCapsule returns the colliders intersecting the capsule between p0 and p1.
	OverlapCapsule(p0, p1 mgl32.Vec3, radius float32, mask LayerMask, triggers TriggerInteraction) []Collider
	// ComputePenetration returns the direction and distance a must move to stop overlapping b.
	// ok is false when the two do not overlap.
	ComputePenetration(a Collider, poseA Pose, b Collider, poseB Pose) (dir mgl32.Vec3, dist float32, ok bool)
}

// Body is the capsule moved by the controller. Position is the capsule's foot; Center is the
// capsule's midpoint relative to it. A Body is compared against the transforms of sensor hits
// to filter itself out, which panics for non-comparable values: implement it on a pointer type.
type Body interface {
	Transform

	Height() float32
	SetHeight(h float32)
	Center() mgl32.Vec3
	SetCenter(c mgl32.Vec3)
	Radius() float32
	// SlopeLimit is the steepest walkable slope in degrees.
	SlopeLimit() float32
	// Velocity is the last resolved displacement divided by its frame time.
	Velocity() mgl32.Vec3
	// Move sweeps the capsule by displacement, resolving collisions.
	Move(displacement mgl32.Vec3)

	Parent() Transform
	SetParent(t Transform)

	Collider() Collider
}
