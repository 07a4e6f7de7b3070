// Package config holds the tuning of a locomotion controller and reads it from TOML or YAML
// files.
package config

import (
	"github.com/oomph-ac/locomotion/component"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/oomph-ac/locomotion/omath"
	"github.com/oomph-ac/locomotion/world"
)

// Config contains every tunable parameter of a controller.
type Config struct {
	Gravity      float32 `toml:"gravity" yaml:"gravity" comment:"Vertical acceleration while airborne, in units/s²."`
	Speed        Speed   `toml:"speed" yaml:"speed"`
	Acceleration float32 `toml:"acceleration" yaml:"acceleration" comment:"Rate at which velocity approaches its target."`
	// DirectionCurve maps move-direction bias, from -1 (backward) to 1 (forward), to a speed multiplier.
	DirectionCurve omath.Curve `toml:"direction_curve" yaml:"direction_curve"`
	SlopeEffector  float32     `toml:"slope_effector" yaml:"slope_effector" comment:"How strongly slopes slow movement, in [0, 1]."`

	JumpSpeed       float32 `toml:"jump_speed" yaml:"jump_speed"`
	JumpRevokeDelay float32 `toml:"jump_revoke_delay" yaml:"jump_revoke_delay" comment:"Seconds a jump press stays buffered."`
	AirControl      float32 `toml:"air_control" yaml:"air_control" comment:"Fraction of acceleration available in the air, in [0, 1]."`
	AirRegisterTime float32 `toml:"air_register_time" yaml:"air_register_time" comment:"Seconds airborne before a landing is reported."`

	// SlideTags lists ground tags that always make the character slide.
	SlideTags []string `toml:"slide_tags" yaml:"slide_tags"`

	RunEnergy RunEnergy `toml:"run_energy" yaml:"run_energy"`
	Height    Height    `toml:"height" yaml:"height"`
	Ground    Ground    `toml:"ground" yaml:"ground"`
	Overlap   Overlap   `toml:"overlap" yaml:"overlap"`

	Input input.Bindings `toml:"input" yaml:"input"`

	// Debug enables per-tick state logging.
	Debug bool `toml:"debug" yaml:"debug"`
}

// Speed holds the target speed of each movement tier.
type Speed struct {
	Running  float32 `toml:"running" yaml:"running"`
	Walking  float32 `toml:"walking" yaml:"walking"`
	Crouched float32 `toml:"crouched" yaml:"crouched"`
}

// RunEnergy tunes the stamina that gates running.
type RunEnergy struct {
	Required      int     `toml:"required" yaml:"required" comment:"Energy above which a run may start."`
	Max           int     `toml:"max" yaml:"max"`
	RegenInterval float32 `toml:"regen_interval" yaml:"regen_interval" comment:"Seconds per regenerated unit."`
	DegenInterval float32 `toml:"degen_interval" yaml:"degen_interval" comment:"Seconds per consumed unit."`
	// Curve maps the energy fraction to a blend between walking and running speed.
	Curve omath.Curve `toml:"curve" yaml:"curve"`
}

// Height tunes the standing and crouched capsule heights.
type Height struct {
	Standing      float32 `toml:"standing" yaml:"standing"`
	Crouched      float32 `toml:"crouched" yaml:"crouched"`
	CheckDistance float32 `toml:"check_distance" yaml:"check_distance" comment:"Extra clearance required above a taller target height."`
	ChangeRate    float32 `toml:"change_rate" yaml:"change_rate" comment:"Height change per second."`
	Initial       string  `toml:"initial" yaml:"initial" comment:"standing or crouched"`
}

// Ground tunes ground detection and platform parenting.
type Ground struct {
	CheckDistance  float32         `toml:"check_distance" yaml:"check_distance"`
	CheckOffset    float32         `toml:"check_offset" yaml:"check_offset" comment:"Amount the probe sphere is narrower than the capsule."`
	Mask           world.LayerMask `toml:"mask" yaml:"mask"`
	ParentableMask world.LayerMask `toml:"parentable_mask" yaml:"parentable_mask"`
}

// Overlap configures the experimental predicted-overlap avoidance.
type Overlap struct {
	Avoid bool            `toml:"avoid" yaml:"avoid"`
	Mask  world.LayerMask `toml:"mask" yaml:"mask"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Gravity: game.DefaultGravity,
		Speed: Speed{
			Running:  6.5,
			Walking:  4,
			Crouched: 2,
		},
		Acceleration:    10,
		DirectionCurve:  omath.EaseInOutCurve(-1, 0.7, 1, 1.1),
		SlopeEffector:   0.2,
		JumpSpeed:       6,
		JumpRevokeDelay: 0.2,
		AirControl:      0.75,
		AirRegisterTime: 0.3,
		RunEnergy: RunEnergy{
			Required:      10,
			Max:           30,
			RegenInterval: 0.3,
			DegenInterval: 0.35,
			Curve:         omath.EaseInOutCurve(0, 0.5, 1, 1),
		},
		Height: Height{
			Standing:      2,
			Crouched:      1.3,
			CheckDistance: 0.1,
			ChangeRate:    1.5,
			Initial:       component.Standing.String(),
		},
		Ground: Ground{
			CheckDistance:  0.2,
			CheckOffset:    0.03,
			Mask:           world.AllLayers,
			ParentableMask: world.NoLayers,
		},
		Input: input.DefaultBindings(),
	}
}

// InitialHeightState returns the parsed initial height state.
func (c Config) InitialHeightState() (component.HeightState, error) {
	return component.ParseHeightState(c.Height.Initial)
}

// Validate returns an error describing the first invalid parameter, if any.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float32
	}{
		{"acceleration", c.Acceleration},
		{"jump_revoke_delay", c.JumpRevokeDelay},
		{"run_energy.regen_interval", c.RunEnergy.RegenInterval},
		{"run_energy.degen_interval", c.RunEnergy.DegenInterval},
		{"height.standing", c.Height.Standing},
		{"height.crouched", c.Height.Crouched},
		{"height.change_rate", c.Height.ChangeRate},
		{"ground.check_distance", c.Ground.CheckDistance},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return oerror.New("%s must be positive, got %v", p.name, p.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float32
	}{
		{"speed.running", c.Speed.Running},
		{"speed.walking", c.Speed.Walking},
		{"speed.crouched", c.Speed.Crouched},
		{"jump_speed", c.JumpSpeed},
		{"air_register_time", c.AirRegisterTime},
		{"height.check_distance", c.Height.CheckDistance},
		{"ground.check_offset", c.Ground.CheckOffset},
	}
	for _, p := range nonNegative {
		if !(p.v >= 0) {
			return oerror.New("%s must not be negative, got %v", p.name, p.v)
		}
	}

	if c.AirControl < 0 || c.AirControl > 1 {
		return oerror.New("air_control must be within [0, 1], got %v", c.AirControl)
	}
	if c.SlopeEffector < 0 || c.SlopeEffector > 1 {
		return oerror.New("slope_effector must be within [0, 1], got %v", c.SlopeEffector)
	}
	if c.RunEnergy.Max <= 0 {
		return oerror.New("run_energy.max must be positive, got %d", c.RunEnergy.Max)
	}
	if c.RunEnergy.Required < 0 || c.RunEnergy.Required > c.RunEnergy.Max {
		return oerror.New("run_energy.required must be within [0, %d], got %d", c.RunEnergy.Max, c.RunEnergy.Required)
	}
	if err := c.DirectionCurve.Validate(); err != nil {
		return oerror.Wrap(err, "direction_curve")
	}
	if err := c.RunEnergy.Curve.Validate(); err != nil {
		return oerror.Wrap(err, "run_energy.curve")
	}
	if _, err := c.InitialHeightState(); err != nil {
		return oerror.Wrap(err, "height.initial")
	}
	if err := c.Input.Validate(); err != nil {
		return oerror.Wrap(err, "input")
	}
	return nil
}
