package mat

import (
	"math"
)

type Vec3 [3]float64

func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Vec3FromScalar returns (s, s, s).
func Vec3FromScalar(s float64) Vec3 {
	return Vec3{s, s, s}
}

// Vec3FromVec2 returns (v.x, v.y, 0).
func Vec3FromVec2(v Vec2) Vec3 {
	return Vec3{v[0], v[1], 0}
}

// Vec3FromVector returns the first three components of v.
// A Vec2 is padded with z=0.
func Vec3FromVector(v Vector) Vec3 {
	switch v := v.(type) {
	case Vec2:
		return Vec3FromVec2(v)
	case Vec3:
		return v
	case Vec4:
		return Vec3{v[0], v[1], v[2]}
	}
	return Vec3{}
}

// Vec3Of builds a Vec3 from zero arguments, one vector or Scalar,
// or three Scalars.
func Vec3Of(args ...Arg) (Vec3, error) {
	switch shapeOf(args) {
	case shapeEmpty:
		return Vec3{}, nil
	case shapeScalar:
		return Vec3FromScalar(float64(args[0].(Scalar))), nil
	case shapeVector:
		return Vec3FromVector(args[0].(Vector)), nil
	case shapeScalars:
		if len(args) == 3 {
			s := scalars(args)
			return Vec3{s[0], s[1], s[2]}, nil
		}
	}
	return Vec3{}, argError("vec3", args, 0, 1, 3)
}

func (v Vec3) Add(a Vec3) Vec3 {
	return Vec3{v[0] + a[0], v[1] + a[1], v[2] + a[2]}
}

func (v Vec3) Sub(a Vec3) Vec3 {
	return Vec3{v[0] - a[0], v[1] - a[1], v[2] - a[2]}
}

// Mul scales v by a.
func (v Vec3) Mul(a float64) Vec3 {
	return Vec3{v[0] * a, v[1] * a, v[2] * a}
}

// MulElem returns the elementwise product.
func (v Vec3) MulElem(a Vec3) Vec3 {
	return Vec3{v[0] * a[0], v[1] * a[1], v[2] * a[2]}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (v Vec3) Dot(a Vec3) float64 {
	return v[0]*a[0] + v[1]*a[1] + v[2]*a[2]
}

func (v Vec3) Cross(a Vec3) Vec3 {
	return Vec3{
		v[1]*a[2] - v[2]*a[1],
		v[2]*a[0] - v[0]*a[2],
		v[0]*a[1] - v[1]*a[0],
	}
}

func (v Vec3) NormSq() float64 {
	return v.Dot(v)
}

func (v Vec3) Norm() float64 {
	return math.Sqrt(v.NormSq())
}

func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	return Vec3{v[0] / n, v[1] / n, v[2] / n}
}

// NormalizedExcludeLast normalizes (x, y) and keeps z as is.
func (v Vec3) NormalizedExcludeLast() Vec3 {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1])
	return Vec3{v[0] / n, v[1] / n, v[2]}
}

// Lerp returns (1-s)*v + s*a.
func (v Vec3) Lerp(a Vec3, s float64) Vec3 {
	return Vec3{lerp(v[0], a[0], s), lerp(v[1], a[1], s), lerp(v[2], a[2], s)}
}
