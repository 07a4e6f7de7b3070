package component

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestParseHeightState(t *testing.T) {
	for _, s := range []HeightState{Standing, Crouched} {
		got, err := ParseHeightState(s.String())
		if err != nil || got != s {
			t.Fatalf("ParseHeightState(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseHeightState("prone"); err == nil {
		t.Fatalf("expected an unknown state to be rejected")
	}
}

func TestHeightForUnknownPanics(t *testing.T) {
	r := NewHeightRegulator(2, 1.3, 1.5, Standing)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected an unknown height state to panic")
		}
	}()
	r.HeightFor(HeightState(7))
}

func TestHeightTransition(t *testing.T) {
	body := newMockBody()
	r := NewHeightRegulator(2, 1.3, 1.5, Standing)
	r.Apply(body)

	r.Request(Crouched, body)
	if !r.Changing() || r.PrevValid() != Crouched {
		t.Fatalf("shrinking must start a transition that is valid immediately")
	}
	// 0.7 units at 1.5 units/s take 0.4667s.
	prev := body.Height()
	for i := 0; i < 10; i++ {
		r.Advance(body, 0.05)
		h := body.Height()
		if h > prev || h < 1.3 {
			t.Fatalf("height must decrease monotonically towards 1.3, got %v after %v", h, prev)
		}
		if math32.Abs(body.Center().Y()-h/2) > 1e-6 {
			t.Fatalf("capsule must be centred at half its height")
		}
		prev = h
	}
	if r.Changing() || body.Height() != 1.3 {
		t.Fatalf("expected the transition to complete at 1.3, got %v", body.Height())
	}
}

func TestHeightRequestsAreIdempotent(t *testing.T) {
	body := newMockBody()
	r := NewHeightRegulator(2, 1.3, 1.5, Standing)
	r.Apply(body)

	r.Request(Crouched, body)
	r.Request(Standing, body)
	r.Request(Crouched, body)
	if r.State() != Crouched {
		t.Fatalf("expected only the final request to be pursued")
	}
	r.Advance(body, 0.1)
	if want := 2 - 0.1*float32(1.5); math32.Abs(body.Height()-want) > 1e-5 {
		t.Fatalf("expected a single transition from 2, got %v want %v", body.Height(), want)
	}
}

func TestHeightRoundTripNeverOvershoots(t *testing.T) {
	body := newMockBody()
	r := NewHeightRegulator(2, 1.3, 1.5, Standing)
	r.Apply(body)

	r.Request(Crouched, body)
	r.Advance(body, 0.1)
	r.Request(Standing, body)
	if r.PrevValid() != Crouched {
		t.Fatalf("growing must not be valid until it completes")
	}
	for i := 0; i < 20; i++ {
		r.Advance(body, 0.02)
		if body.Height() > 2 {
			t.Fatalf("height overshot the standing target: %v", body.Height())
		}
	}
	if body.Height() != 2 || r.PrevValid() != Standing {
		t.Fatalf("expected to converge to standing, got %v", body.Height())
	}
}

func TestHeightObstructed(t *testing.T) {
	body := newMockBody()
	w := &mockWorld{obstructed: true}
	r := NewHeightRegulator(2, 1.3, 1.5, Crouched)
	r.Apply(body)

	if r.Obstructed(w, body, Crouched, 0.1) {
		t.Fatalf("a target no taller than the current height is never obstructed")
	}
	if !r.Obstructed(w, body, Standing, 0.1) {
		t.Fatalf("expected the standing height to be obstructed")
	}
	// height - 2r + check + offset
	if want := float32(2 - 1 + 0.1 + 0.001); math32.Abs(w.lastCastLen-want) > 1e-5 {
		t.Fatalf("unexpected probe distance %v, want %v", w.lastCastLen, want)
	}

	r.Request(Standing, body)
	r.Revert(body)
	if r.State() != Crouched {
		t.Fatalf("expected the regulator to revert to the last valid state")
	}
	r.Advance(body, 0.1)
	if body.Height() != 1.3 {
		t.Fatalf("expected the height to stay crouched, got %v", body.Height())
	}
}

func TestHeightRetargetAfterRetune(t *testing.T) {
	body := newMockBody()
	r := NewHeightRegulator(2, 1.3, 1.5, Standing)
	r.Apply(body)

	if r.Retarget(body) {
		t.Fatalf("a capsule already at its state height needs no transition")
	}
	r.SetTuning(1.8, 1.3, 1.5)
	if body.Height() != 2 {
		t.Fatalf("retuning alone must not resize the capsule")
	}
	if !r.Retarget(body) || !r.Changing() || r.PrevValid() != Standing {
		t.Fatalf("expected a shrinking transition towards the new standing height")
	}
	if r.Retarget(body) {
		t.Fatalf("a running transition must not be restarted")
	}
	for i := 0; i < 10; i++ {
		r.Advance(body, 0.05)
	}
	if r.Changing() || body.Height() != 1.8 {
		t.Fatalf("expected the capsule to settle at 1.8, got %v", body.Height())
	}

	r.SetTuning(2.2, 1.3, 1.5)
	r.Retarget(body)
	r.Cancel()
	r.Advance(body, 0.05)
	if r.Changing() || body.Height() != 1.8 {
		t.Fatalf("a cancelled transition must hold the current height, got %v", body.Height())
	}
}
