// Package movement resolves the displacement of a character for a single tick.
package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/component"
	"github.com/oomph-ac/locomotion/config"
	"github.com/oomph-ac/locomotion/omath"
)

// Mode is the motion mode chosen for a tick.
type Mode uint8

const (
	ModeAirborne Mode = iota
	ModePlanar
	ModeSliding
	ModeJumping
)

func (m Mode) String() string {
	switch m {
	case ModeAirborne:
		return "airborne"
	case ModePlanar:
		return "planar"
	case ModeSliding:
		return "sliding"
	case ModeJumping:
		return "jumping"
	}
	return "unknown"
}

// State is everything the resolver reads about the character for one tick. Slide and Platform
// are owned by the controller; the resolver updates the slide cache while sliding.
type State struct {
	Grounded    bool
	Sliding     bool
	JumpPending bool
	Crouched    bool
	Running     bool

	// Move holds the raw horizontal and vertical move axes.
	Move mgl32.Vec2
	// Rotation is the orientation of the body; move input is relative to it.
	Rotation mgl32.Quat
	// Velocity is the velocity of the body after the previous tick.
	Velocity mgl32.Vec3
	// EnergyFraction is the run energy divided by its maximum.
	EnergyFraction float32

	Ground   component.GroundInfo
	Slide    *component.Slide
	Platform *component.PlatformTracker
}

// SelectMode returns the mode for s: sliding takes priority over jumping, which takes
// priority over planar motion. Characters off the ground are airborne.
func SelectMode(s *State) Mode {
	switch {
	case !s.Grounded:
		return ModeAirborne
	case s.Sliding:
		return ModeSliding
	case s.JumpPending:
		return ModeJumping
	}
	return ModePlanar
}

// Resolve computes the displacement for one tick of dt seconds and the mode that produced it.
// A zero displacement is replaced by a small downward one so the body keeps touching the ground.
func Resolve(s *State, cfg *config.Config, dt float32) (mgl32.Vec3, Mode) {
	ctx := newCtx(s, cfg, dt)
	defer putCtx(ctx)

	mode := SelectMode(s)
	var motion mgl32.Vec3
	switch mode {
	case ModeSliding:
		motion = ctx.sliding()
	case ModeJumping:
		motion = ctx.jumping()
	case ModePlanar:
		motion = ctx.planar()
	default:
		motion = ctx.airborne()
	}

	if omath.IsZero(motion) {
		motion[1] = -dt
	}
	return motion, mode
}

// TargetSpeed returns the speed the character aims for given its stance, the run state and the
// move input. The speed tier is scaled by cfg.DirectionCurve, evaluated at the forward bias of
// the input, and by the input magnitude clamped to 1.
func TargetSpeed(cfg *config.Config, crouched, running bool, energyFraction float32, move mgl32.Vec2) float32 {
	var speed float32
	switch {
	case crouched:
		speed = cfg.Speed.Crouched
	case running:
		speed = omath.Lerp(cfg.Speed.Walking, cfg.Speed.Running, cfg.RunEnergy.Curve.Evaluate(energyFraction))
	default:
		speed = cfg.Speed.Walking
	}
	speed *= cfg.DirectionCurve.Evaluate(move.Dot(mgl32.Vec2{0, 1}))
	speed *= omath.Clamp01(move.Len())
	return speed
}
