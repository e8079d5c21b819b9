package mat

import (
	"fmt"
)

// Ortho returns the orthographic projection of the box
// [left, right] x [bottom, top] x [-near, -far] to the clip cube.
func Ortho(left, right, bottom, top, near, far float64) (Mat4, error) {
	switch {
	case left == right:
		return Mat4{}, fmt.Errorf("ortho: %w: left and right are equal", ErrDegenerate)
	case bottom == top:
		return Mat4{}, fmt.Errorf("ortho: %w: bottom and top are equal", ErrDegenerate)
	case near == far:
		return Mat4{}, fmt.Errorf("ortho: %w: near and far are equal", ErrDegenerate)
	}

	w := right - left
	h := top - bottom
	d := far - near

	return Mat4{
		{2 / w, 0, 0, -(left + right) / w},
		{0, 2 / h, 0, -(top + bottom) / h},
		{0, 0, -2 / d, -(near + far) / d},
		{0, 0, 0, 1},
	}, nil
}
