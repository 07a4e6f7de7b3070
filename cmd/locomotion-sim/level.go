package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/config"
	"github.com/oomph-ac/locomotion/virtual"
	"github.com/oomph-ac/locomotion/world"
)

const (
	platformLayer = 1
	iceTag        = "Ice"
)

// level is the test course every agent runs through: a floor with an ice patch, a steep ramp
// and a rotating platform.
type level struct {
	w        *virtual.World
	platform *virtual.Solid
	spawn    mgl32.Vec3
}

func newLevel() *level {
	w := virtual.NewWorld()
	floor := virtual.NewBox("floor", mgl32.Vec3{-50, -1, -50}, mgl32.Vec3{50, 0, 50}).WithTag("Ground")
	// The ice sits slightly above the floor so the sensor prefers it.
	ice := virtual.NewBox("ice", mgl32.Vec3{-2, -0.5, 6}, mgl32.Vec3{2, 0.01, 10}).WithTag(iceTag)
	ramp := virtual.NewRamp("ramp", mgl32.Vec3{0, 2, 14}, 3, 2, 50).WithTag("Rock")
	platform := virtual.NewBox("platform", mgl32.Vec3{-10, -0.5, -2}, mgl32.Vec3{-6, 0.25, 2}).WithLayer(platformLayer)
	w.Add(floor, ice, ramp, platform)
	w.SetMotion(platform, mgl32.Vec3{}, 30)

	return &level{w: w, platform: platform}
}

// adapt makes cfg aware of the level: the platform layer is parentable and ice is slippery.
func adapt(cfg config.Config) config.Config {
	cfg.Ground.ParentableMask |= world.Layers(platformLayer)
	for _, tag := range cfg.SlideTags {
		if tag == iceTag {
			return cfg
		}
	}
	cfg.SlideTags = append(append([]string(nil), cfg.SlideTags...), iceTag)
	return cfg
}
