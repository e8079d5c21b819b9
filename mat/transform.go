package mat

import (
	"math"
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Translate2 returns the 2D homogeneous translation by (x, y).
func Translate2(x, y float64) Mat3 {
	return Mat3{
		{1, 0, x},
		{0, 1, y},
		{0, 0, 1},
	}
}

// Translate returns the 3D homogeneous translation by (x, y, z).
func Translate(x, y, z float64) Mat4 {
	return Mat4{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

func Scale(x, y, z float64) Mat4 {
	return Mat4{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// Rotate returns the rotation by ang degrees around axis.
// axis does not need to be normalized. Rotate(ang, Vec3{0, 0, 1}) equals
// RotateZ(ang), and likewise for the other axes.
func Rotate(ang float64, axis Vec3) Mat4 {
	v := axis.Normalized()
	x, y, z := v[0], v[1], v[2]

	s, c := math.Sincos(Radians(ang))
	omc := 1 - c

	return Mat4{
		{x*x*omc + c, x*y*omc - z*s, x*z*omc + y*s, 0},
		{x*y*omc + z*s, y*y*omc + c, y*z*omc - x*s, 0},
		{x*z*omc - y*s, y*z*omc + x*s, z*z*omc + c, 0},
		{0, 0, 0, 1},
	}
}

// RotateAxis is Rotate with the axis given by its components.
func RotateAxis(ang, x, y, z float64) Mat4 {
	return Rotate(ang, Vec3{x, y, z})
}

func RotateX(ang float64) Mat4 {
	s, c := math.Sincos(Radians(ang))
	return Mat4{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

func RotateY(ang float64) Mat4 {
	s, c := math.Sincos(Radians(ang))
	return Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func RotateZ(ang float64) Mat4 {
	s, c := math.Sincos(Radians(ang))
	return Mat4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// LookAt returns the view matrix of a camera at eye looking toward at.
// up is re-orthogonalized against the view direction.
// If eye equals at, the identity is returned. The result is undefined if
// the view direction and up are collinear.
func LookAt(eye, at, up Vec3) Mat4 {
	if eye == at {
		return Ident4()
	}

	v := at.Sub(eye).Normalized()
	n := v.Cross(up).Normalized()
	u := n.Cross(v).Normalized()
	v = v.Neg()

	return Mat4{
		{n[0], n[1], n[2], -n.Dot(eye)},
		{u[0], u[1], u[2], -u.Dot(eye)},
		{v[0], v[1], v[2], -v.Dot(eye)},
		{0, 0, 0, 1},
	}
}
