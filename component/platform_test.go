package component

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/world"
)

func TestPlatformTrackerReset(t *testing.T) {
	platform := &mockTransform{pos: mgl32.Vec3{0, 0, 0}}
	var p PlatformTracker

	p.Update(GroundFromHit(world.Hit{Transform: platform, Normal: mgl32.Vec3{0, 1, 0}}), true)
	if p.DeltaPos() != (mgl32.Vec3{}) {
		t.Fatalf("a fresh ground must not produce a delta, got %v", p.DeltaPos())
	}

	platform.pos = mgl32.Vec3{0.1, 0, 0}
	p.Update(GroundFromHit(world.Hit{Transform: platform, Normal: mgl32.Vec3{0, 1, 0}}), false)
	want := mgl32.Vec3{0.1 * game.GroundDeltaPosMultiplier, 0, 0}
	if p.DeltaPos().Sub(want).Len() > 1e-5 {
		t.Fatalf("expected delta %v, got %v", want, p.DeltaPos())
	}

	// Switching to another ground resets even without the reset flag.
	other := &mockTransform{pos: mgl32.Vec3{5, 0, 0}}
	p.Update(GroundFromHit(world.Hit{Transform: other, Normal: mgl32.Vec3{0, 1, 0}}), false)
	if p.DeltaPos() != (mgl32.Vec3{}) {
		t.Fatalf("a new ground must not produce a delta, got %v", p.DeltaPos())
	}
}

func TestPlatformTrackerWrapsYaw(t *testing.T) {
	platform := &mockTransform{euler: mgl32.Vec3{0, 359, 0}}
	var p PlatformTracker
	p.Update(GroundFromHit(world.Hit{Transform: platform, Normal: mgl32.Vec3{0, 1, 0}}), true)

	platform.euler = mgl32.Vec3{0, 1, 0}
	p.Update(GroundFromHit(world.Hit{Transform: platform, Normal: mgl32.Vec3{0, 1, 0}}), false)
	if want := 2 * game.GroundDeltaEulerMultiplier; math32.Abs(p.DeltaEuler().Y()-want) > 1e-4 {
		t.Fatalf("expected a wrapped yaw delta of %v, got %v", want, p.DeltaEuler().Y())
	}
}

func TestPlatformTrackerAdditive(t *testing.T) {
	platform := &mockTransform{}
	var p PlatformTracker
	contact := mgl32.Vec3{0, 0, 1}
	p.Update(GroundFromHit(world.Hit{Transform: platform, Point: contact, Normal: mgl32.Vec3{0, 1, 0}}), true)

	platform.euler = mgl32.Vec3{0, 10, 0}
	p.Update(GroundFromHit(world.Hit{Transform: platform, Point: contact, Normal: mgl32.Vec3{0, 1, 0}}), false)

	dt := float32(0.1)
	v := p.Additive(dt)
	// A positive yaw turns +Z towards +X, so a contact in front of the centre moves along +X.
	speed := mgl32.DegToRad(10*game.GroundDeltaEulerMultiplier) / dt
	if math32.Abs(v.X()-speed) > 1e-4 || math32.Abs(v.Z()) > 1e-5 || v.Y() != 0 {
		t.Fatalf("expected tangential motion (%v, 0, 0), got %v", speed, v)
	}
	if p.Additive(0) != p.DeltaPos() {
		t.Fatalf("a non-positive dt must only return the positional delta")
	}
}
