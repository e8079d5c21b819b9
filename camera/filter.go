package camera

import (
	"github.com/seqsense/mvgl/mat"
)

// BoxFilter is a transform mapping a box to the unit cube [0, 1]^3.
type BoxFilter mat.Mat4

// NewBoxFilter returns the filter of the axis-aligned box [min, max].
func NewBoxFilter(min, max mat.Vec3) BoxFilter {
	d := max.Sub(min)
	return BoxFilter(mat.Scale(1/d[0], 1/d[1], 1/d[2]).Mul(mat.Translate(-min[0], -min[1], -min[2])))
}

// Filter returns true if p is outside of the box.
func (m BoxFilter) Filter(p mat.Vec3) bool {
	return !m.FilterInv(p)
}

// FilterInv returns true if p is inside of the box.
func (m BoxFilter) FilterInv(p mat.Vec3) bool {
	q := mat.Mat4(m).TransformAffine(p)
	for _, a := range q {
		if a < 0 || 1 < a {
			return false
		}
	}
	return true
}

// Frustum tests points against the clip volume of a view-projection matrix.
type Frustum mat.Mat4

// Contains reports whether p is inside the view volume.
func (f Frustum) Contains(p mat.Vec3) bool {
	c := mat.Mat4(f).MulVec(mat.Vec4FromVec3(p))
	w := c[3]
	if w <= 0 {
		return false
	}
	for _, a := range c[:3] {
		if a < -w || w < a {
			return false
		}
	}
	return true
}

// Frustum returns the view volume of the camera.
func (c *Config) Frustum() (Frustum, error) {
	vp, err := c.ViewProjection()
	if err != nil {
		return Frustum{}, err
	}
	return Frustum(vp), nil
}
