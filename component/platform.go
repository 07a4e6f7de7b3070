package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/omath"
	"github.com/oomph-ac/locomotion/world"
)

// PlatformTracker follows the motion of the ground the character stands on, so that jumps
// and falls keep the momentum of moving platforms.
type PlatformTracker struct {
	ground world.Transform

	contact   mgl32.Vec3
	prevPos   mgl32.Vec3
	prevEuler mgl32.Vec3

	deltaPos   mgl32.Vec3
	deltaEuler mgl32.Vec3
}

// Update samples the ground of a grounded tick. The previous sample is discarded when reset is
// set or the ground is a different transform, so a new ground never produces a delta on its
// first tick.
func (p *PlatformTracker) Update(g GroundInfo, reset bool) {
	if !g.Valid() {
		return
	}
	pos, euler := g.Transform.Position(), g.Transform.EulerAngles()
	if reset || g.Transform != p.ground {
		p.prevPos, p.prevEuler = pos, euler
	}
	p.ground = g.Transform
	p.contact = g.Contact

	p.deltaPos = pos.Sub(p.prevPos).Mul(game.GroundDeltaPosMultiplier)
	p.deltaEuler = omath.WrapEulerDelta(euler.Sub(p.prevEuler)).Mul(game.GroundDeltaEulerMultiplier)
	p.prevPos, p.prevEuler = pos, euler
}

// Additive returns the motion contributed by the ground: the tangential velocity of the last
// contact point around the ground's vertical axis plus the ground's positional delta. Only the
// positional delta is returned when dt is not positive.
func (p *PlatformTracker) Additive(dt float32) mgl32.Vec3 {
	if dt <= 0 {
		return p.deltaPos
	}
	offset := omath.Flat(p.contact.Sub(p.prevPos))
	dir := omath.SafeNormalize(offset).Cross(omath.Down)
	v := mgl32.DegToRad(p.deltaEuler.Y()) / dt * offset.Len()
	return dir.Mul(v).Add(p.deltaPos)
}

// DeltaPos returns the scaled positional delta of the last sample.
func (p *PlatformTracker) DeltaPos() mgl32.Vec3 {
	return p.deltaPos
}

// DeltaEuler returns the scaled, wrapped euler delta of the last sample in degrees.
func (p *PlatformTracker) DeltaEuler() mgl32.Vec3 {
	return p.deltaEuler
}

// Ground returns the transform of the last sample.
func (p *PlatformTracker) Ground() world.Transform {
	return p.ground
}
