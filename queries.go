package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/component"
	"github.com/oomph-ac/locomotion/config"
	"github.com/oomph-ac/locomotion/event"
	"github.com/oomph-ac/locomotion/movement"
)

// IsGrounded reports whether ground was found below the body this tick.
func (c *Controller) IsGrounded() bool {
	return c.grounded
}

// IsSliding reports whether the character is sliding down a steep or slippery surface.
func (c *Controller) IsSliding() bool {
	return c.slide.Sliding
}

// IsJumping reports whether the character is in a jump that has not landed yet.
func (c *Controller) IsJumping() bool {
	return c.jumping
}

// IsCrouched reports whether the character is crouched or crouching.
func (c *Controller) IsCrouched() bool {
	return c.height.State() == component.Crouched
}

// IsStanding reports whether the character is standing or standing up.
func (c *Controller) IsStanding() bool {
	return c.height.State() == component.Standing
}

// IsChangingHeight reports whether a height transition is in progress.
func (c *Controller) IsChangingHeight() bool {
	return c.height.Changing()
}

// IsRunning reports whether the character spends run energy.
func (c *Controller) IsRunning() bool {
	return c.energy.Running()
}

// DesiresMove reports whether the move input of the last tick asked for movement.
func (c *Controller) DesiresMove() bool {
	return c.frame.DesiresMove()
}

// RunEnergy returns the current run energy.
func (c *Controller) RunEnergy() int {
	return c.energy.Energy()
}

// RunEnergyFraction returns the run energy divided by its maximum.
func (c *Controller) RunEnergyFraction() float32 {
	return c.energy.Fraction()
}

// GroundTag returns the tag of the ground, or an empty string without ground.
func (c *Controller) GroundTag() string {
	return c.ground.Tag
}

// Ground returns the ground snapshot of the last tick.
func (c *Controller) Ground() component.GroundInfo {
	return c.ground
}

// CapsuleVelocity returns the velocity of the body.
func (c *Controller) CapsuleVelocity() mgl32.Vec3 {
	return c.body.Velocity()
}

// AirborneTime returns how long the character has been off the ground, as of the last tick.
func (c *Controller) AirborneTime() float32 {
	return c.airborneTime
}

// Mode returns the motion mode used by the last tick.
func (c *Controller) Mode() movement.Mode {
	return c.mode
}

// Frame returns the number of ticks processed.
func (c *Controller) Frame() uint64 {
	return c.tick
}

// Config returns the configuration in use.
func (c *Controller) Config() config.Config {
	return c.cfg
}

// Events returns the bus the controller publishes to.
func (c *Controller) Events() *event.Bus {
	return c.events
}
