package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/world"
)

type mockTransform struct {
	pos   mgl32.Vec3
	euler mgl32.Vec3
	layer int
}

func (t *mockTransform) Position() mgl32.Vec3    { return t.pos }
func (t *mockTransform) Rotation() mgl32.Quat    { return mgl32.QuatIdent() }
func (t *mockTransform) EulerAngles() mgl32.Vec3 { return t.euler }
func (t *mockTransform) Layer() int              { return t.layer }

type mockCollider struct {
	transform world.Transform
	tag       string
	trigger   bool
}

func (c *mockCollider) Transform() world.Transform { return c.transform }
func (c *mockCollider) Tag() string                { return c.tag }
func (c *mockCollider) IsTrigger() bool            { return c.trigger }

// mockWorld reports a fixed set of hits and a fixed obstruction result.
type mockWorld struct {
	hits        []world.Hit
	obstructed  bool
	lastCastLen float32
}

func (w *mockWorld) SphereCastAll(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDistance float32, mask world.LayerMask, triggers world.TriggerInteraction) []world.Hit {
	return w.hits
}

func (w *mockWorld) SphereCast(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDistance float32, mask world.LayerMask, triggers world.TriggerInteraction) bool {
	w.lastCastLen = maxDistance
	return w.obstructed
}

func (w *mockWorld) OverlapCapsule(p0, p1 mgl32.Vec3, radius float32, mask world.LayerMask, triggers world.TriggerInteraction) []world.Collider {
	return nil
}

func (w *mockWorld) ComputePenetration(a world.Collider, poseA world.Pose, b world.Collider, poseB world.Pose) (mgl32.Vec3, float32, bool) {
	return mgl32.Vec3{}, 0, false
}

type mockBody struct {
	mockTransform
	height   float32
	center   mgl32.Vec3
	radius   float32
	velocity mgl32.Vec3
	parent   world.Transform
	collider *mockCollider
}

func newMockBody() *mockBody {
	b := &mockBody{height: 2, center: mgl32.Vec3{0, 1, 0}, radius: 0.5}
	b.collider = &mockCollider{transform: b}
	return b
}

func (b *mockBody) Height() float32             { return b.height }
func (b *mockBody) SetHeight(h float32)         { b.height = h }
func (b *mockBody) Center() mgl32.Vec3          { return b.center }
func (b *mockBody) SetCenter(c mgl32.Vec3)      { b.center = c }
func (b *mockBody) Radius() float32             { return b.radius }
func (b *mockBody) SlopeLimit() float32         { return 45 }
func (b *mockBody) Velocity() mgl32.Vec3        { return b.velocity }
func (b *mockBody) Move(d mgl32.Vec3)           { b.pos = b.pos.Add(d) }
func (b *mockBody) Parent() world.Transform     { return b.parent }
func (b *mockBody) SetParent(t world.Transform) { b.parent = t }
func (b *mockBody) Collider() world.Collider    { return b.collider }
