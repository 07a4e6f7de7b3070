package component

import "testing"

func TestJumpDebouncer(t *testing.T) {
	j := JumpDebouncer{Delay: 0.2}
	if j.Pending() || j.Consume() {
		t.Fatalf("nothing is pending before a press")
	}

	j.Press()
	j.Advance(0.15)
	if !j.Pending() {
		t.Fatalf("expected the jump to still be buffered after 0.15s")
	}
	if !j.Consume() || j.Pending() {
		t.Fatalf("expected to consume the buffered jump exactly once")
	}
	if j.Consume() {
		t.Fatalf("a consumed jump cannot be consumed again")
	}

	j.Press()
	j.Advance(0.25)
	if j.Pending() {
		t.Fatalf("expected the jump to be revoked after the delay")
	}

	// Pressing again restarts the countdown.
	j.Press()
	j.Advance(0.15)
	j.Press()
	j.Advance(0.15)
	if !j.Pending() {
		t.Fatalf("a new press must restart the countdown")
	}
}
