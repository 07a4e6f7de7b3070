package virtual

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

func TestClipVelocityStopsAtFace(t *testing.T) {
	ground := cube.Box(-5, -1, -5, 5, 0, 5)
	body := cube.Box(-0.5, 0.5, -0.5, 0.5, 2.5, 0.5)

	if v := clipVelocity(ground, body, mgl32.Vec3{0, -1, 0}); !approx(v.Y(), -0.5) {
		t.Fatalf("expected the fall to stop on the surface, got %v", v)
	}
	if v := clipVelocity(ground, body, mgl32.Vec3{0, -0.2, 0}); v != (mgl32.Vec3{0, -0.2, 0}) {
		t.Fatalf("expected a short fall to pass, got %v", v)
	}
	if v := clipVelocity(ground, body, mgl32.Vec3{0, 1, 0}); v != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("expected moving away to pass, got %v", v)
	}
}

func TestClipVelocityPushesOutOfOverlap(t *testing.T) {
	ground := cube.Box(-5, -1, -5, 5, 0, 5)
	body := cube.Box(-0.5, -0.2, -0.5, 0.5, 1.8, 0.5)

	if v := clipVelocity(ground, body, mgl32.Vec3{}); !approx(v.Y(), 0.2) || v.X() != 0 || v.Z() != 0 {
		t.Fatalf("expected a push up by the penetration depth, got %v", v)
	}
	if v := clipVelocity(ground, body, mgl32.Vec3{0, 1, 0}); v.Y() != 1 {
		t.Fatalf("expected a faster escape to be kept, got %v", v)
	}
}

func TestClipVelocityIgnoresDistantBoxes(t *testing.T) {
	ground := cube.Box(-5, -1, -5, 5, 0, 5)
	body := cube.Box(6, 0.5, -0.5, 7, 2.5, 0.5)

	if v := clipVelocity(ground, body, mgl32.Vec3{0, -1, 0}); v != (mgl32.Vec3{0, -1, 0}) {
		t.Fatalf("expected a box beside the ground not to be clipped, got %v", v)
	}
	if v := clipVelocity(cube.Box(0, 0, 0, 0, 0, 0), body, mgl32.Vec3{0, -1, 0}); v != (mgl32.Vec3{0, -1, 0}) {
		t.Fatalf("expected a box without volume to be ignored, got %v", v)
	}
}
