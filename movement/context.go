package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/component"
	"github.com/oomph-ac/locomotion/config"
	"github.com/oomph-ac/locomotion/omath"
)

type movementContext struct {
	state *State
	cfg   *config.Config
	dt    float32

	// moveDir is the move input in world space, normalised.
	moveDir mgl32.Vec3
	speed   float32
}

func (ctx *movementContext) prepare() {
	s := ctx.state
	raw := s.Rotation.Rotate(mgl32.Vec3{s.Move.X(), 0, s.Move.Y()})
	ctx.moveDir = omath.SafeNormalize(raw)
	ctx.speed = TargetSpeed(ctx.cfg, s.Crouched, s.Running, s.EnergyFraction, s.Move)
}

// planar moves along the ground plane. Slopes slow the character down, less so when it moves
// downhill.
func (ctx *movementContext) planar() mgl32.Vec3 {
	g := ctx.state.Ground
	moveDir := omath.SafeNormalize(omath.ProjectOnPlane(ctx.moveDir, g.Normal))

	dot := -moveDir.Dot(g.Orthogonal)
	slopeSlow := float32(1)
	if dot <= 0 {
		slopeSlow = omath.Lerp(1, 0, math32.Abs(dot))
	}
	target := omath.Lerp(ctx.speed, 0, slopeSlow*g.Slope/90*ctx.cfg.SlopeEffector)

	// Single-pole smoothing towards the target; the response depends on the frame rate.
	motion := omath.LerpVec3(ctx.state.Velocity, moveDir.Mul(target), ctx.dt*ctx.cfg.Acceleration)
	return motion.Mul(ctx.dt)
}

// sliding combines smoothed player input that never pushes into the slope with a slide
// velocity that builds up along the slope under gravity.
func (ctx *movementContext) sliding() mgl32.Vec3 {
	g, slide := ctx.state.Ground, ctx.state.Slide

	inputMove := component.BiasAgainstSlope(ctx.moveDir, g.Normal).Mul(ctx.speed)
	inputMove = omath.LerpVec3(slide.PrevInputMove, inputMove, ctx.dt*ctx.cfg.Acceleration)
	slide.PrevInputMove = inputMove

	parallelForce := -ctx.cfg.Gravity * math32.Sin(mgl32.DegToRad(g.Slope))
	slideMove := g.Orthogonal.Mul(parallelForce).Add(slide.PrevSlideMove)
	slideMove = omath.Project(omath.LerpVec3(slide.PrevSlideMove, slideMove, ctx.dt), g.Orthogonal)
	slide.PrevSlideMove = slideMove

	return inputMove.Add(slideMove).Mul(ctx.dt)
}

// jumping resolves horizontal motion like planar motion, sets the vertical velocity to the
// jump speed and inherits the motion of the ground.
func (ctx *movementContext) jumping() mgl32.Vec3 {
	g := ctx.state.Ground
	target := omath.Lerp(ctx.speed, 0, g.Slope/90*ctx.cfg.SlopeEffector)

	motion := omath.LerpVec3(ctx.state.Velocity, omath.ProjectOnPlane(ctx.moveDir, g.Normal).Mul(target), ctx.dt*ctx.cfg.Acceleration)
	motion[1] = ctx.cfg.JumpSpeed
	motion = motion.Add(ctx.platformAdditive())
	return motion.Mul(ctx.dt)
}

// airborne steers with reduced control, integrates gravity and keeps the horizontal motion of
// the last ground.
func (ctx *movementContext) airborne() mgl32.Vec3 {
	vel := ctx.state.Velocity
	motion := omath.LerpVec3(vel, ctx.moveDir.Mul(ctx.speed), ctx.cfg.AirControl*ctx.dt*ctx.cfg.Acceleration)
	motion[1] = vel.Y() + ctx.cfg.Gravity*ctx.dt

	ground := ctx.platformAdditive()
	motion[0] += ground.X()
	motion[2] += ground.Z()
	return motion.Mul(ctx.dt)
}

func (ctx *movementContext) platformAdditive() mgl32.Vec3 {
	if ctx.state.Platform == nil {
		return mgl32.Vec3{}
	}
	return ctx.state.Platform.Additive(ctx.dt)
}
