package virtual

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// clipEpsilon is the gap under which two box faces count as touching.
const clipEpsilon = 1e-6

// clipVelocity clips the velocity of the moving box, which is non-zero on a single axis, so
// that it stops at the face of the stationary box. Boxes that already overlap are pushed apart
// along the axis of least penetration instead.
func clipVelocity(stationary, moving cube.BBox, vel mgl32.Vec3) mgl32.Vec3 {
	if hasZeroVolume(stationary) {
		return vel
	}

	var (
		// depth is the overlap along each axis, or the negative gap on a separating axis.
		depth [3]float32
		// side is -1 where moving lies towards the minimum of stationary and 1 otherwise.
		side          [3]float32
		gapAxis, gaps int
	)
	for i := 0; i < 3; i++ {
		below := snapToZero(moving.Max()[i] - stationary.Min()[i])
		above := snapToZero(stationary.Max()[i] - moving.Min()[i])
		switch {
		case below <= 0:
			depth[i], side[i] = below, -1
		case above <= 0:
			depth[i], side[i] = above, 1
		case below < above:
			depth[i], side[i] = below, -1
			continue
		default:
			depth[i], side[i] = above, 1
			continue
		}
		gapAxis = i
		if gaps++; gaps > 1 {
			return vel
		}
	}

	if gaps == 0 {
		axis := 0
		for i := 1; i < 3; i++ {
			if depth[i] < depth[axis] {
				axis = i
			}
		}
		if push := depth[axis] * side[axis]; push > 0 {
			vel[axis] = max(push, vel[axis])
		} else {
			vel[axis] = min(push, vel[axis])
		}
		return vel
	}

	if depth[gapAxis]-side[gapAxis]*vel[gapAxis] > 0 {
		vel[gapAxis] = depth[gapAxis] * side[gapAxis]
	}
	return vel
}

func snapToZero(v float32) float32 {
	if math32.Abs(v) <= clipEpsilon {
		return 0
	}
	return v
}

// boxPenetration returns the axis-aligned direction and depth that separate a from b.
func boxPenetration(a, b cube.BBox) (mgl32.Vec3, float32, bool) {
	var (
		best    = float32(math32.MaxFloat32)
		bestDir mgl32.Vec3
	)
	for i := 0; i < 3; i++ {
		neg := a.Max()[i] - b.Min()[i]
		pos := b.Max()[i] - a.Min()[i]
		if neg <= 0 || pos <= 0 {
			return mgl32.Vec3{}, 0, false
		}
		if neg < best {
			best = neg
			bestDir = mgl32.Vec3{}
			bestDir[i] = -1
		}
		if pos < best {
			best = pos
			bestDir = mgl32.Vec3{}
			bestDir[i] = 1
		}
	}
	return bestDir, best, true
}

func hasZeroVolume(bb cube.BBox) bool {
	return bb.Min() == bb.Max()
}

// faceNormal returns the outward normal of a box face.
func faceNormal(f cube.Face) mgl32.Vec3 {
	switch f {
	case cube.FaceDown:
		return mgl32.Vec3{0, -1, 0}
	case cube.FaceUp:
		return mgl32.Vec3{0, 1, 0}
	case cube.FaceNorth:
		return mgl32.Vec3{0, 0, -1}
	case cube.FaceSouth:
		return mgl32.Vec3{0, 0, 1}
	case cube.FaceWest:
		return mgl32.Vec3{-1, 0, 0}
	case cube.FaceEast:
		return mgl32.Vec3{1, 0, 0}
	}
	return mgl32.Vec3{0, 1, 0}
}

func clampToBox(p mgl32.Vec3, bb cube.BBox) mgl32.Vec3 {
	lo, hi := bb.Min(), bb.Max()
	return mgl32.Vec3{
		mgl32.Clamp(p[0], lo[0], hi[0]),
		mgl32.Clamp(p[1], lo[1], hi[1]),
		mgl32.Clamp(p[2], lo[2], hi[2]),
	}
}
