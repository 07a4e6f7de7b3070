package omath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Axis vectors of the controller's frame: +Y is up, +Z is forward and +X is right.
var (
	Up      = mgl32.Vec3{0, 1, 0}
	Down    = mgl32.Vec3{0, -1, 0}
	Forward = mgl32.Vec3{0, 0, 1}
	Right   = mgl32.Vec3{1, 0, 0}
)

// epsilon below which a squared length is treated as zero.
const epsilon = 1e-12

// Clamp01 clamps v to [0, 1].
func Clamp01(v float32) float32 {
	return mgl32.Clamp(v, 0, 1)
}

// Lerp interpolates between a and b, with t clamped to [0, 1].
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*Clamp01(t)
}

// LerpVec3 interpolates between two vectors, with t clamped to [0, 1].
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(Clamp01(t)))
}

// SafeNormalize returns v scaled to unit length, or the zero vector when v has no length.
// mgl32.Vec3.Normalize divides by zero and yields NaN components in that case.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.LenSqr()
	if l < epsilon {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / math32.Sqrt(l))
}

// Flat returns v with its vertical component removed.
func Flat(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], 0, v[2]}
}

// Project returns the projection of v onto the direction of onto.
func Project(v, onto mgl32.Vec3) mgl32.Vec3 {
	l := onto.LenSqr()
	if l < epsilon {
		return mgl32.Vec3{}
	}
	return onto.Mul(v.Dot(onto) / l)
}

// ProjectOnPlane removes from v its component along the plane normal n.
func ProjectOnPlane(v, n mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(Project(v, n))
}

// OrthoNormalize normalises n and makes t a unit vector orthogonal to it (Gram-Schmidt).
// When t is parallel to n, any unit vector perpendicular to n is chosen.
func OrthoNormalize(n, t mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	n = SafeNormalize(n)
	if n.LenSqr() < epsilon {
		return n, SafeNormalize(t)
	}
	o := SafeNormalize(t.Sub(n.Mul(n.Dot(t))))
	if o.LenSqr() < epsilon {
		o = SafeNormalize(n.Cross(Right))
		if o.LenSqr() < epsilon {
			o = SafeNormalize(n.Cross(Forward))
		}
	}
	return n, o
}

// Angle returns the unsigned angle between a and b in degrees, in [0, 180].
func Angle(a, b mgl32.Vec3) float32 {
	denom := math32.Sqrt(a.LenSqr() * b.LenSqr())
	if denom < 1e-15 {
		return 0
	}
	cos := mgl32.Clamp(a.Dot(b)/denom, -1, 1)
	return mgl32.RadToDeg(math32.Acos(cos))
}

// WrapAngleDelta maps an angle difference in degrees to (-180, 180].
func WrapAngleDelta(delta float32) float32 {
	delta = math32.Mod(delta, 360)
	if delta > 180 {
		delta -= 360
	} else if delta <= -180 {
		delta += 360
	}
	return delta
}

// WrapEulerDelta applies WrapAngleDelta to every axis.
func WrapEulerDelta(delta mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{WrapAngleDelta(delta[0]), WrapAngleDelta(delta[1]), WrapAngleDelta(delta[2])}
}

// IsZero reports whether every component of v is exactly zero.
func IsZero(v mgl32.Vec3) bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// YawRotation returns the rotation of yaw degrees about the up axis. A yaw of 90 turns the
// forward axis onto the right axis.
func YawRotation(yaw float32) mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(yaw), Up)
}
