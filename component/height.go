package component

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/locomotion/assert"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/oomph-ac/locomotion/omath"
	"github.com/oomph-ac/locomotion/world"
)

// HeightState is the stance of the character.
type HeightState uint8

const (
	Standing HeightState = iota
	Crouched
)

func (s HeightState) String() string {
	switch s {
	case Standing:
		return "standing"
	case Crouched:
		return "crouched"
	}
	return "unknown"
}

// ParseHeightState parses the name of a HeightState.
func ParseHeightState(s string) (HeightState, error) {
	switch s {
	case "standing":
		return Standing, nil
	case "crouched":
		return Crouched, nil
	}
	return 0, oerror.New("unknown height state %q", s)
}

// HeightRegulator moves the capsule between its standing and crouched heights. At most one
// transition runs at a time; requesting a different state restarts it from the current height.
type HeightRegulator struct {
	standing, crouched float32
	rate               float32

	state     HeightState
	prevValid HeightState

	changing        bool
	from, target    float32
	elapsed, length float32
}

// NewHeightRegulator returns a regulator resting in the initial state.
func NewHeightRegulator(standing, crouched, rate float32, initial HeightState) *HeightRegulator {
	r := &HeightRegulator{state: initial, prevValid: initial}
	r.SetTuning(standing, crouched, rate)
	r.HeightFor(initial)
	return r
}

// SetTuning replaces the heights and the change rate. A running transition keeps its target;
// a resting capsule is resized by Retarget.
func (r *HeightRegulator) SetTuning(standing, crouched, rate float32) {
	assert.IsTrue(standing > 0 && crouched > 0, "heights must be positive (standing=%v, crouched=%v)", standing, crouched)
	assert.IsTrue(rate > 0, "height change rate must be positive, got %v", rate)
	r.standing, r.crouched, r.rate = standing, crouched, rate
}

// HeightFor returns the capsule height of s. Unknown states are a programming error.
func (r *HeightRegulator) HeightFor(s HeightState) float32 {
	switch s {
	case Standing:
		return r.standing
	case Crouched:
		return r.crouched
	}
	assert.IsTrue(false, "unknown height state %d", s)
	return 0
}

// State returns the state being pursued or held.
func (r *HeightRegulator) State() HeightState {
	return r.state
}

// PrevValid returns the last state whose height is known to fit the surroundings.
func (r *HeightRegulator) PrevValid() HeightState {
	return r.prevValid
}

// Changing reports whether a transition is in progress.
func (r *HeightRegulator) Changing() bool {
	return r.changing
}

// Apply sets the capsule to the height of the current state without a transition.
func (r *HeightRegulator) Apply(body world.Body) {
	r.changing = false
	r.prevValid = r.state
	SetCapsuleHeight(body, r.HeightFor(r.state))
}

// Request sets the state to pursue. A transition is only (re)started when s differs from the
// current state, discarding the progress of the previous one.
func (r *HeightRegulator) Request(s HeightState, body world.Body) {
	if s == r.state {
		return
	}
	r.state = s
	r.start(body)
}

// Retarget starts a transition when the regulator is at rest but the capsule height no longer
// matches the height of the current state, as happens after the heights are retuned. It
// reports whether a transition was started.
func (r *HeightRegulator) Retarget(body world.Body) bool {
	if r.changing || math32.Abs(body.Height()-r.HeightFor(r.state)) < game.HeightError {
		return false
	}
	r.start(body)
	return true
}

// Cancel stops the running transition at the current height.
func (r *HeightRegulator) Cancel() {
	r.changing = false
}

func (r *HeightRegulator) start(body world.Body) {
	target := r.HeightFor(r.state)
	r.from, r.target = body.Height(), target
	r.elapsed = 0
	r.length = math32.Abs(target-r.from) / r.rate
	r.changing = true

	// Shrinking always fits.
	if target < r.from+game.HeightError {
		r.prevValid = r.state
	}
}

// Revert requests the last valid state.
func (r *HeightRegulator) Revert(body world.Body) {
	r.Request(r.prevValid, body)
}

// Obstructed reports whether growing the capsule to the height of s would hit something. The
// probe is a sphere slightly narrower than the capsule, swept up from the bottom sphere over
// the full target height plus checkDistance. Targets no taller than the current height are
// never obstructed.
func (r *HeightRegulator) Obstructed(p world.Provider, body world.Body, s HeightState, checkDistance float32) bool {
	height := r.HeightFor(s)
	if height < body.Height()+game.HeightError {
		return false
	}

	radius := body.Radius()
	origin := body.Position().Add(omath.Up.Mul(radius))
	distance := height - radius*2 + checkDistance + game.HeightCheckWidthOffset
	return p.SphereCast(origin, radius-game.HeightCheckWidthOffset, omath.Up, distance, world.AllLayers, world.IgnoreTriggers)
}

// Advance moves the capsule height linearly towards the target. The target is never passed.
func (r *HeightRegulator) Advance(body world.Body, dt float32) {
	if !r.changing || dt <= 0 {
		return
	}
	r.elapsed += dt
	if r.length <= 0 || r.elapsed >= r.length {
		SetCapsuleHeight(body, r.target)
		r.changing = false
		r.prevValid = r.state
		return
	}
	SetCapsuleHeight(body, omath.Lerp(r.from, r.target, r.elapsed/r.length))
}

// SetCapsuleHeight resizes the capsule and keeps its foot in place.
func SetCapsuleHeight(body world.Body, h float32) {
	body.SetHeight(h)
	body.SetCenter(omath.Up.Mul(h / 2))
}
