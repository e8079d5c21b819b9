package mat

import (
	"math"
)

// Perspective returns the perspective projection with a vertical field of
// view of fovy degrees.
func Perspective(fovy, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(Radians(fovy)/2)
	d := far - near
	return Mat4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, -(near + far) / d, -2 * near * far / d},
		{0, 0, -1, 0},
	}
}
