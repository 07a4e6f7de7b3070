package component

import (
	"github.com/oomph-ac/locomotion/assert"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/omath"
)

// EnergyState is the state of the run energy regulator.
type EnergyState uint8

const (
	EnergyIdle EnergyState = iota
	EnergyIncreasing
	EnergyDecreasing
)

func (s EnergyState) String() string {
	switch s {
	case EnergyIdle:
		return "idle"
	case EnergyIncreasing:
		return "increasing"
	case EnergyDecreasing:
		return "decreasing"
	}
	return "unknown"
}

// RunEnergyRegulator tracks the stamina spent by running. Energy is an integer in [0, max]
// that changes by one unit per elapsed regen or degen interval.
type RunEnergyRegulator struct {
	required, max int
	regen, degen  float32

	energy  int
	state   EnergyState
	elapsed float32

	// validStart is set by a run press made with more than the required energy, and cleared
	// when run is released or energy runs out.
	validStart bool
}

// NewRunEnergyRegulator returns an idle regulator with full energy.
func NewRunEnergyRegulator(required, maxEnergy int, regen, degen float32) *RunEnergyRegulator {
	r := &RunEnergyRegulator{}
	r.SetTuning(required, maxEnergy, regen, degen)
	r.energy = maxEnergy
	return r
}

// SetTuning replaces the thresholds and intervals. Energy is clamped to the new maximum.
func (r *RunEnergyRegulator) SetTuning(required, maxEnergy int, regen, degen float32) {
	assert.IsTrue(maxEnergy > 0 && required >= 0, "invalid run energy bounds (required=%d, max=%d)", required, maxEnergy)
	assert.IsTrue(regen > 0 && degen > 0, "run energy intervals must be positive (regen=%v, degen=%v)", regen, degen)
	r.required, r.max = required, maxEnergy
	r.regen, r.degen = regen, degen
	r.energy = min(r.energy, maxEnergy)
	r.settle()
}

// Update picks the state for this tick from the player's intent.
func (r *RunEnergyRegulator) Update(desiresMove, crouched bool, run input.ButtonState) {
	if run.Pressed && r.energy > r.required {
		r.validStart = true
	}
	if desiresMove && !crouched && run.Held && r.energy > 0 && r.validStart {
		r.SetState(EnergyDecreasing)
		return
	}
	if !run.Held || r.energy == 0 {
		r.validStart = false
	}
	r.SetState(EnergyIncreasing)
}

// SetState switches to s. Switching discards the progress towards the next unit; entering a
// state whose bound is already reached drops straight back to idle.
func (r *RunEnergyRegulator) SetState(s EnergyState) {
	if s == r.state {
		return
	}
	r.state = s
	r.elapsed = 0
	r.settle()
}

// Advance moves energy by one unit for every elapsed interval of the current state.
func (r *RunEnergyRegulator) Advance(dt float32) {
	if r.state == EnergyIdle || dt <= 0 {
		return
	}
	r.elapsed += dt
	for r.state != EnergyIdle {
		interval, step := r.regen, 1
		if r.state == EnergyDecreasing {
			interval, step = r.degen, -1
		}
		if r.elapsed < interval {
			return
		}
		r.elapsed -= interval
		r.energy += step
		r.settle()
	}
}

func (r *RunEnergyRegulator) settle() {
	if (r.state == EnergyIncreasing && r.energy >= r.max) || (r.state == EnergyDecreasing && r.energy <= 0) {
		r.energy = max(0, min(r.energy, r.max))
		r.state = EnergyIdle
		r.elapsed = 0
	}
}

// Energy returns the current energy.
func (r *RunEnergyRegulator) Energy() int {
	return r.energy
}

// Max returns the maximum energy.
func (r *RunEnergyRegulator) Max() int {
	return r.max
}

// Fraction returns energy / max.
func (r *RunEnergyRegulator) Fraction() float32 {
	return float32(r.energy) / float32(r.max)
}

func (r *RunEnergyRegulator) State() EnergyState {
	return r.state
}

// Running reports whether energy is being spent.
func (r *RunEnergyRegulator) Running() bool {
	return r.state == EnergyDecreasing
}

// RunSpeed blends walk and run speed by curve evaluated at the energy fraction.
func (r *RunEnergyRegulator) RunSpeed(walk, run float32, curve omath.Curve) float32 {
	return omath.Lerp(walk, run, curve.Evaluate(r.Fraction()))
}
