package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/omath"
)

// Slide classifies whether the character slides and caches the slide motion of the last tick.
type Slide struct {
	Sliding           bool
	PreviouslySliding bool

	// PrevSlideMove is the gravity-driven velocity along the slope of the last tick.
	PrevSlideMove mgl32.Vec3
	// PrevInputMove is the player-driven velocity of the last tick.
	PrevInputMove mgl32.Vec3
}

// Classify updates the sliding flags. The character slides when grounded on ground steeper
// than slopeLimit or tagged as slippery. Entering a slide seeds the motion cache from velocity.
//
// Flat ground has no downhill direction, so its Orthogonal is the fixed horizontal axis picked
// by omath.OrthoNormalize, (0, 0, -1). On a flat surface that slides through its tag, the slide
// cache therefore keeps only the Z part of the entry velocity; the full horizontal velocity is
// carried by the input cache instead.
func (s *Slide) Classify(grounded bool, g GroundInfo, slopeLimit float32, tags TagSet, velocity mgl32.Vec3) bool {
	s.PreviouslySliding = s.Sliding
	s.Sliding = grounded && (g.Slope > slopeLimit || tags.Contains(g.Tag))

	if s.Sliding && !s.PreviouslySliding {
		s.PrevSlideMove = omath.Project(velocity, g.Orthogonal)

		flat := omath.Flat(velocity)
		s.PrevInputMove = BiasAgainstSlope(omath.SafeNormalize(flat), g.Normal).Mul(flat.Len())
	}
	return s.Sliding
}

// Reset clears the flags and the motion cache.
func (s *Slide) Reset() {
	*s = Slide{}
}

// BiasAgainstSlope removes from the unit direction dir the part that pushes into the slope
// described by normal, so that input never fights a slide. Directions away from the slope
// are returned unchanged.
func BiasAgainstSlope(dir, normal mgl32.Vec3) mgl32.Vec3 {
	flatNormal := omath.SafeNormalize(omath.Flat(normal))
	dot := dir.Dot(flatNormal)
	if dot < 0 {
		return flatNormal.Mul(-dot).Add(dir)
	}
	return dir
}
