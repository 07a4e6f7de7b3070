// Package locomotion implements a first-person character locomotion controller. Each tick it
// turns player intent into a displacement of a capsule body, handling slopes, sliding, moving
// platforms, crouching, buffered jumps and stamina-gated running, and reports landings, jumps
// and parent changes as events.
package locomotion

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/component"
	"github.com/oomph-ac/locomotion/config"
	"github.com/oomph-ac/locomotion/event"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/movement"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/oomph-ac/locomotion/omath"
	"github.com/oomph-ac/locomotion/world"
	"github.com/sasha-s/go-deadlock"
)

// Controller moves a single capsule body. All methods except Reconfigure must be called from
// the goroutine that ticks the controller.
type Controller struct {
	body     world.Body
	provider world.Provider
	cfg      config.Config
	log      *slog.Logger

	source input.Source
	reader *input.Reader
	events *event.Bus

	pendingMu  deadlock.Mutex
	pending    *config.Config
	pendingIn  *input.Reader
	hasPending bool

	sensor    component.GroundSensor
	slideTags component.TagSet
	height    *component.HeightRegulator
	energy    *component.RunEnergyRegulator
	jump      component.JumpDebouncer
	slide     component.Slide
	platform  component.PlatformTracker

	ground       component.GroundInfo
	grounded     bool
	prevGrounded bool
	jumping      bool
	airborneTime float32

	state movement.State
	mode  movement.Mode
	frame input.Frame
	tick  uint64
}

// Option configures optional collaborators of a Controller.
type Option func(*Controller)

// WithLogger sets the logger. slog.Default is used otherwise.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithInput binds the controller to src using the bindings of the configuration, so that Tick
// samples it every tick.
func WithInput(src input.Source) Option {
	return func(c *Controller) {
		c.source = src
	}
}

// WithEventBus makes the controller publish to bus instead of a bus of its own.
func WithEventBus(bus *event.Bus) Option {
	return func(c *Controller) {
		c.events = bus
	}
}

// New returns a controller for body querying provider. The configuration is validated and the
// capsule is set to the initial height right away.
func New(body world.Body, provider world.Provider, cfg config.Config, opts ...Option) (*Controller, error) {
	if body == nil || provider == nil {
		return nil, oerror.New("locomotion: body and provider are required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, oerror.Wrap(err, "locomotion")
	}

	c := &Controller{
		body:     body,
		provider: provider,
		ground:   component.NoGround(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	if c.events == nil {
		c.events = event.NewBus(event.DefaultQueueSize)
	}
	if c.source != nil {
		r, err := input.Bind(c.source, cfg.Input)
		if err != nil {
			return nil, oerror.Wrap(err, "locomotion")
		}
		c.reader = r
	}

	initial, _ := cfg.InitialHeightState()
	c.height = component.NewHeightRegulator(cfg.Height.Standing, cfg.Height.Crouched, cfg.Height.ChangeRate, initial)
	c.energy = component.NewRunEnergyRegulator(cfg.RunEnergy.Required, cfg.RunEnergy.Max, cfg.RunEnergy.RegenInterval, cfg.RunEnergy.DegenInterval)
	c.sensor.Provider = provider
	c.apply(cfg)

	c.height.Apply(body)
	return c, nil
}

// Reconfigure validates cfg and schedules it to replace the current configuration at the start
// of the next tick. It may be called from any goroutine.
func (c *Controller) Reconfigure(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	var r *input.Reader
	if c.source != nil {
		var err error
		if r, err = input.Bind(c.source, cfg.Input); err != nil {
			return err
		}
	}

	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	c.pending, c.pendingIn, c.hasPending = &cfg, r, true
	return nil
}

func (c *Controller) applyPending() {
	c.pendingMu.Lock()
	if !c.hasPending {
		c.pendingMu.Unlock()
		return
	}
	cfg, r := *c.pending, c.pendingIn
	c.pending, c.pendingIn, c.hasPending = nil, nil, false
	c.pendingMu.Unlock()

	if r != nil {
		c.reader = r
	}
	c.apply(cfg)
	c.log.Info("applied new configuration", "frame", c.tick)
}

func (c *Controller) apply(cfg config.Config) {
	c.cfg = cfg
	c.sensor.Offset = cfg.Ground.CheckOffset
	c.slideTags = component.NewTagSet(cfg.SlideTags...)
	c.jump.Delay = cfg.JumpRevokeDelay
	c.height.SetTuning(cfg.Height.Standing, cfg.Height.Crouched, cfg.Height.ChangeRate)
	c.energy.SetTuning(cfg.RunEnergy.Required, cfg.RunEnergy.Max, cfg.RunEnergy.RegenInterval, cfg.RunEnergy.DegenInterval)
}

// Tick samples the bound input and advances the controller by dt seconds. Without bound input
// the controller behaves as if no input was given.
func (c *Controller) Tick(dt float32) mgl32.Vec3 {
	var f input.Frame
	if c.reader != nil {
		f = c.reader.Sample()
	}
	return c.Step(dt, f)
}

// Step advances the controller by dt seconds with the input f and returns the displacement
// passed to the body. A non-positive dt leaves every state untouched and returns zero.
func (c *Controller) Step(dt float32, f input.Frame) mgl32.Vec3 {
	if dt <= 0 {
		return mgl32.Vec3{}
	}
	c.tick++
	c.applyPending()
	c.frame = f

	c.preGroundUpdate(dt)
	c.senseGround()
	c.slide.Classify(c.grounded, c.ground, c.body.SlopeLimit(), c.slideTags, c.body.Velocity())
	c.postGroundUpdate()

	motion := c.resolveMotion(dt)
	if c.cfg.Overlap.Avoid {
		motion = movement.AvoidOverlaps(c.provider, c.body, c.cfg.Overlap.Mask, motion)
	}
	c.body.Move(motion)

	if c.cfg.Debug {
		c.log.Debug("locomotion tick",
			"frame", c.tick,
			"mode", c.mode,
			"grounded", c.grounded,
			"sliding", c.slide.Sliding,
			"jumping", c.jumping,
			"crouched", c.IsCrouched(),
			"running", c.IsRunning(),
			"energy", c.energy.Energy(),
			"height", c.body.Height(),
			"motion", motion,
		)
	}
	c.events.Flush()
	return motion
}

// preGroundUpdate handles intent that must see this tick's input edges exactly once, using the
// grounded state of the previous tick.
func (c *Controller) preGroundUpdate(dt float32) {
	f := c.frame

	want := component.Standing
	if f.Crouch.Held && c.grounded {
		want = component.Crouched
	}
	c.height.Request(want, c.body)
	if c.height.Retarget(c.body) && c.height.Obstructed(c.provider, c.body, c.height.State(), c.cfg.Height.CheckDistance) {
		// Retried every frame until the space above is clear.
		c.height.Cancel()
	}
	if c.height.Changing() && c.height.Obstructed(c.provider, c.body, c.height.State(), c.cfg.Height.CheckDistance) {
		c.height.Revert(c.body)
	}
	c.height.Advance(c.body, dt)

	c.energy.Advance(dt)
	c.energy.Update(f.DesiresMove(), c.height.State() == component.Crouched, f.Run)

	c.jump.Advance(dt)
	if f.Jump.Pressed {
		c.jump.Press()
	}

	if c.grounded {
		c.airborneTime = 0
	} else {
		c.airborneTime += dt
	}
}

func (c *Controller) senseGround() {
	c.prevGrounded = c.grounded
	r := c.body.Radius()
	origin := c.body.Position().Add(omath.Up.Mul(r))
	c.ground = c.sensor.Sense(c.body, origin, r, c.cfg.Ground.CheckDistance, c.cfg.Ground.Mask)
	c.grounded = c.ground.Valid()
}

// postGroundUpdate updates the jump, landing, parenting and platform state from the new ground.
func (c *Controller) postGroundUpdate() {
	prevParent := c.body.Parent()
	if c.grounded {
		if !c.prevGrounded || c.slide.Sliding {
			c.jumping = false
		}
		if !c.prevGrounded && !c.slide.Sliding && c.airborneTime > c.cfg.AirRegisterTime {
			c.publish(event.Landed)
		}

		var parent world.Transform
		if c.cfg.Ground.ParentableMask.Contains(c.ground.Layer) {
			parent = c.ground.Transform
		}
		if parent != prevParent {
			c.body.SetParent(parent)
		}
		c.platform.Update(c.ground, !c.prevGrounded || parent != prevParent)
	} else if prevParent != nil {
		c.body.SetParent(nil)
	}

	if c.body.Parent() != prevParent {
		c.publish(event.Reparented)
	}
}

func (c *Controller) resolveMotion(dt float32) mgl32.Vec3 {
	c.state = movement.State{
		Grounded:       c.grounded,
		Sliding:        c.slide.Sliding,
		JumpPending:    c.jump.Pending(),
		Crouched:       c.height.State() == component.Crouched,
		Running:        c.energy.Running(),
		Move:           c.frame.Move,
		Rotation:       c.body.Rotation(),
		Velocity:       c.body.Velocity(),
		EnergyFraction: c.energy.Fraction(),
		Ground:         c.ground,
		Slide:          &c.slide,
		Platform:       &c.platform,
	}
	motion, mode := movement.Resolve(&c.state, &c.cfg, dt)
	c.mode = mode
	if mode == movement.ModeJumping && c.jump.Consume() {
		c.jumping = true
		c.publish(event.Jumped)
	}
	return motion
}

func (c *Controller) publish(t event.Type) {
	if c.cfg.Debug {
		c.log.Debug("locomotion event", "event", t, "frame", c.tick)
	}
	c.events.Publish(event.Event{Type: t, Frame: c.tick})
}
