package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Float32ApproxEq reports whether a and b are within eps of each other.
func Float32ApproxEq(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

// Vec3ApproxEq reports whether every component of a and b is within eps of the other.
func Vec3ApproxEq(a, b mgl32.Vec3, eps float32) bool {
	for i := range 3 {
		if !Float32ApproxEq(a[i], b[i], eps) {
			return false
		}
	}
	return true
}
