package component

import (
	"testing"

	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/omath"
)

var (
	runPressed = input.ButtonState{Pressed: true, Held: true}
	runHeld    = input.ButtonState{Held: true}
	runIdle    = input.ButtonState{}
)

func TestRunEnergyBounds(t *testing.T) {
	r := NewRunEnergyRegulator(10, 30, 0.3, 0.35)
	r.Update(true, false, runPressed)
	if !r.Running() {
		t.Fatalf("expected a valid run to start with full energy")
	}

	prev := r.Energy()
	for i := 0; i < 400; i++ {
		r.Advance(0.05)
		r.Update(true, false, runHeld)
		e := r.Energy()
		if e < 0 || e > r.Max() {
			t.Fatalf("energy %d left [0, %d]", e, r.Max())
		}
		if d := e - prev; d < -1 || d > 1 {
			t.Fatalf("energy changed by %d in a single 0.05s tick", d)
		}
		prev = e
	}
	if r.Running() {
		t.Fatalf("holding run through exhaustion must not keep running")
	}
}

func TestRunEnergyDrainsOnePerInterval(t *testing.T) {
	r := NewRunEnergyRegulator(10, 30, 0.3, 0.35)
	r.Update(true, false, runPressed)
	r.Advance(0.3)
	if r.Energy() != 30 {
		t.Fatalf("no unit may be spent before the first interval elapsed, got %d", r.Energy())
	}
	r.Advance(0.1)
	if r.Energy() != 29 {
		t.Fatalf("expected one unit spent after 0.4s, got %d", r.Energy())
	}
	r.Advance(0.7)
	if r.Energy() != 27 {
		t.Fatalf("expected two more units after another 0.7s, got %d", r.Energy())
	}
}

func TestRunEnergyLatch(t *testing.T) {
	r := NewRunEnergyRegulator(10, 30, 0.3, 0.35)
	r.Update(true, false, runPressed)
	// Drain to exactly the required energy.
	for r.Energy() > 10 {
		r.Advance(0.35)
		r.Update(true, false, runHeld)
	}

	// Letting go and pressing again at the threshold is not a valid start.
	r.Update(true, false, runIdle)
	r.Update(true, false, runPressed)
	if r.Running() {
		t.Fatalf("a run pressed with energy at the threshold must not start")
	}
	// Regenerating above the threshold while holding does not start it either.
	for i := 0; i < 10; i++ {
		r.Advance(0.3)
		r.Update(true, false, runHeld)
		if r.Running() {
			t.Fatalf("holding run must not start a run without a new press (energy %d)", r.Energy())
		}
	}
	if r.Energy() <= 10 {
		t.Fatalf("expected energy to regenerate, got %d", r.Energy())
	}
	r.Update(true, false, runPressed)
	if !r.Running() {
		t.Fatalf("a fresh press above the threshold must start a run")
	}
}

func TestRunEnergyRequiresIntent(t *testing.T) {
	tests := []struct {
		name             string
		moving, crouched bool
		run              input.ButtonState
	}{
		{"standing still", false, false, runPressed},
		{"crouched", true, true, runPressed},
		{"not holding run", true, false, runIdle},
	}
	for _, tt := range tests {
		r := NewRunEnergyRegulator(10, 30, 0.3, 0.35)
		r.Update(tt.moving, tt.crouched, tt.run)
		if r.Running() {
			t.Fatalf("%s: expected not to run", tt.name)
		}
		if r.State() != EnergyIdle {
			t.Fatalf("%s: regenerating at full energy must settle to idle, got %v", tt.name, r.State())
		}
	}
}

func TestRunEnergyStateChangeCancelsProgress(t *testing.T) {
	r := NewRunEnergyRegulator(10, 30, 0.3, 0.35)
	r.Update(true, false, runPressed)
	r.Advance(0.3)
	r.Update(true, false, runIdle)
	r.Update(true, false, runPressed)
	r.Advance(0.3)
	if r.Energy() != 30 {
		t.Fatalf("restarting a state must discard the previous progress, got %d", r.Energy())
	}
}

func TestRunSpeed(t *testing.T) {
	r := NewRunEnergyRegulator(10, 30, 0.3, 0.35)
	if got := r.RunSpeed(4, 6.5, omath.EaseInOutCurve(0, 0.5, 1, 1)); got != 6.5 {
		t.Fatalf("full energy should run at full speed, got %v", got)
	}
	if r.Fraction() != 1 {
		t.Fatalf("expected a full fraction, got %v", r.Fraction())
	}
}
