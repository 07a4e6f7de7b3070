package main

import (
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/virtual"
)

// cue is a change of input at a point in time.
type cue struct {
	at float32
	do func(in *input.Scripted, b input.Bindings, c *virtual.Capsule)
}

// scenario walks onto the ice, runs, jumps, crouches, turns towards the platform and walks onto
// it. The timeline is stretched by the agent index so agents do not move in lockstep.
func scenario(agent int) []cue {
	offset := float32(agent) * 0.25
	return []cue{
		{0.5 + offset, func(in *input.Scripted, b input.Bindings, _ *virtual.Capsule) {
			in.SetAxis(b.Vertical, 1)
		}},
		{2, func(in *input.Scripted, b input.Bindings, _ *virtual.Capsule) {
			in.Press(b.Run)
		}},
		{4, func(in *input.Scripted, b input.Bindings, _ *virtual.Capsule) {
			in.Release(b.Run)
			in.Press(b.Jump)
		}},
		{4.1, func(in *input.Scripted, b input.Bindings, _ *virtual.Capsule) {
			in.Release(b.Jump)
		}},
		{6, func(in *input.Scripted, b input.Bindings, _ *virtual.Capsule) {
			in.SetAxis(b.Vertical, 0)
			in.Press(b.Crouch)
		}},
		{7.5, func(in *input.Scripted, b input.Bindings, c *virtual.Capsule) {
			in.Release(b.Crouch)
			c.SetYaw(-90)
		}},
		{8, func(in *input.Scripted, b input.Bindings, _ *virtual.Capsule) {
			in.SetAxis(b.Vertical, 1)
		}},
		{9.5, func(in *input.Scripted, b input.Bindings, _ *virtual.Capsule) {
			in.SetAxis(b.Vertical, 0)
		}},
	}
}
