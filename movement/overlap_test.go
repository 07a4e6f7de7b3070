package movement

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/world"
)

type mockCollider struct {
	transform world.Transform
}

func (c *mockCollider) Transform() world.Transform { return c.transform }
func (c *mockCollider) Tag() string                { return "" }
func (c *mockCollider) IsTrigger() bool            { return false }

type overlapWorld struct {
	overlaps []world.Collider
}

func (w *overlapWorld) SphereCastAll(mgl32.Vec3, float32, mgl32.Vec3, float32, world.LayerMask, world.TriggerInteraction) []world.Hit {
	return nil
}

func (w *overlapWorld) SphereCast(mgl32.Vec3, float32, mgl32.Vec3, float32, world.LayerMask, world.TriggerInteraction) bool {
	return false
}

func (w *overlapWorld) OverlapCapsule(p0, p1 mgl32.Vec3, radius float32, mask world.LayerMask, triggers world.TriggerInteraction) []world.Collider {
	return w.overlaps
}

func (w *overlapWorld) ComputePenetration(a world.Collider, poseA world.Pose, b world.Collider, poseB world.Pose) (mgl32.Vec3, float32, bool) {
	if poseB.Position.X() > poseA.Position.X() {
		return mgl32.Vec3{-1, 0, 0}, 0.2, true
	}
	return mgl32.Vec3{}, 0, false
}

type mockBody struct {
	mockTransform
	collider *mockCollider
}

func (b *mockBody) Height() float32           { return 2 }
func (b *mockBody) SetHeight(float32)         {}
func (b *mockBody) Center() mgl32.Vec3        { return mgl32.Vec3{0, 1, 0} }
func (b *mockBody) SetCenter(mgl32.Vec3)      {}
func (b *mockBody) Radius() float32           { return 0.5 }
func (b *mockBody) SlopeLimit() float32       { return 45 }
func (b *mockBody) Velocity() mgl32.Vec3      { return mgl32.Vec3{} }
func (b *mockBody) Move(mgl32.Vec3)           {}
func (b *mockBody) Parent() world.Transform   { return nil }
func (b *mockBody) SetParent(world.Transform) {}
func (b *mockBody) Collider() world.Collider  { return b.collider }

func TestAvoidOverlaps(t *testing.T) {
	body := &mockBody{}
	body.collider = &mockCollider{transform: body}
	wall := &mockCollider{transform: &mockTransform{pos: mgl32.Vec3{1, 0, 0}}}
	behind := &mockCollider{transform: &mockTransform{pos: mgl32.Vec3{-1, 0, 0}}}

	w := &overlapWorld{overlaps: []world.Collider{body.collider, wall, behind}}
	motion := AvoidOverlaps(w, body, world.AllLayers, mgl32.Vec3{0.1, 0, 0})
	if motion.Sub(mgl32.Vec3{-0.1, 0, 0}).Len() > 1e-6 {
		t.Fatalf("expected to be pushed out of the wall only, got %v", motion)
	}
}
