package omath

import (
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/oerror"
)

// Keyframe is a single control point of a Curve. Tangents are slopes (dValue/dTime).
type Keyframe struct {
	Time       float32 `toml:"time" yaml:"time"`
	Value      float32 `toml:"value" yaml:"value"`
	InTangent  float32 `toml:"in_tangent" yaml:"in_tangent"`
	OutTangent float32 `toml:"out_tangent" yaml:"out_tangent"`
}

// Curve is a piecewise cubic Hermite response curve. Inputs outside the key range are clamped
// to the first or last key.
type Curve struct {
	Keys []Keyframe `toml:"keys" yaml:"keys"`
}

// NewCurve returns a curve over the given keys, sorted by time.
func NewCurve(keys ...Keyframe) Curve {
	keys = slices.Clone(keys)
	slices.SortStableFunc(keys, func(a, b Keyframe) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		}
		return 0
	})
	return Curve{Keys: keys}
}

// ConstantCurve returns a curve that evaluates to v everywhere.
func ConstantCurve(v float32) Curve {
	return Curve{Keys: []Keyframe{{Value: v}}}
}

// LinearCurve returns a straight line from (t0, v0) to (t1, v1).
func LinearCurve(t0, v0, t1, v1 float32) Curve {
	if t0 == t1 {
		return ConstantCurve(v0)
	}
	slope := (v1 - v0) / (t1 - t0)
	return NewCurve(
		Keyframe{Time: t0, Value: v0, InTangent: slope, OutTangent: slope},
		Keyframe{Time: t1, Value: v1, InTangent: slope, OutTangent: slope},
	)
}

// EaseInOutCurve returns an S-shaped curve from (t0, v0) to (t1, v1) with flat tangents at
// both ends.
func EaseInOutCurve(t0, v0, t1, v1 float32) Curve {
	if t0 == t1 {
		return ConstantCurve(v0)
	}
	return NewCurve(Keyframe{Time: t0, Value: v0}, Keyframe{Time: t1, Value: v1})
}

// Evaluate samples the curve at x. An empty curve evaluates to zero.
func (c Curve) Evaluate(x float32) float32 {
	n := len(c.Keys)
	switch {
	case n == 0:
		return 0
	case n == 1 || x <= c.Keys[0].Time:
		return c.Keys[0].Value
	case x >= c.Keys[n-1].Time:
		return c.Keys[n-1].Value
	}

	i := 0
	for i < n-2 && x > c.Keys[i+1].Time {
		i++
	}
	k0, k1 := c.Keys[i], c.Keys[i+1]
	dt := k1.Time - k0.Time
	if dt <= 0 {
		return k1.Value
	}

	// A Hermite segment is a cubic Bezier whose inner control points sit a third of the way
	// along each tangent; with evenly spaced control times the Bezier parameter is linear in x.
	third := dt / 3
	p := mgl32.CubicBezierCurve2D(
		(x-k0.Time)/dt,
		mgl32.Vec2{k0.Time, k0.Value},
		mgl32.Vec2{k0.Time + third, k0.Value + k0.OutTangent*third},
		mgl32.Vec2{k1.Time - third, k1.Value - k1.InTangent*third},
		mgl32.Vec2{k1.Time, k1.Value},
	)
	return p.Y()
}

// Validate reports curves with unordered or non-finite keys.
func (c Curve) Validate() error {
	for i, k := range c.Keys {
		for _, f := range [...]float32{k.Time, k.Value, k.InTangent, k.OutTangent} {
			if math32.IsNaN(f) || math32.IsInf(f, 0) {
				return oerror.New("curve key %d is not finite", i)
			}
		}
		if i > 0 && k.Time < c.Keys[i-1].Time {
			return oerror.New("curve key %d (time %v) precedes key %d (time %v)", i, k.Time, i-1, c.Keys[i-1].Time)
		}
	}
	return nil
}
