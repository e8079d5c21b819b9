package mat

import (
	"math"
)

type Vec2 [2]float64

func NewVec2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Vec2FromScalar returns (s, s).
func Vec2FromScalar(s float64) Vec2 {
	return Vec2{s, s}
}

// Vec2FromVector returns the first two components of v.
func Vec2FromVector(v Vector) Vec2 {
	switch v := v.(type) {
	case Vec2:
		return v
	case Vec3:
		return Vec2{v[0], v[1]}
	case Vec4:
		return Vec2{v[0], v[1]}
	}
	return Vec2{}
}

// Vec2Of builds a Vec2 from zero arguments, one vector or Scalar,
// or two Scalars.
func Vec2Of(args ...Arg) (Vec2, error) {
	switch shapeOf(args) {
	case shapeEmpty:
		return Vec2{}, nil
	case shapeScalar:
		return Vec2FromScalar(float64(args[0].(Scalar))), nil
	case shapeVector:
		return Vec2FromVector(args[0].(Vector)), nil
	case shapeScalars:
		if len(args) == 2 {
			s := scalars(args)
			return Vec2{s[0], s[1]}, nil
		}
	}
	return Vec2{}, argError("vec2", args, 0, 1, 2)
}

func (v Vec2) Add(a Vec2) Vec2 {
	return Vec2{v[0] + a[0], v[1] + a[1]}
}

func (v Vec2) Sub(a Vec2) Vec2 {
	return Vec2{v[0] - a[0], v[1] - a[1]}
}

// Mul scales v by a.
func (v Vec2) Mul(a float64) Vec2 {
	return Vec2{v[0] * a, v[1] * a}
}

// MulElem returns the elementwise product.
func (v Vec2) MulElem(a Vec2) Vec2 {
	return Vec2{v[0] * a[0], v[1] * a[1]}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v[0], -v[1]}
}

func (v Vec2) Dot(a Vec2) float64 {
	return v[0]*a[0] + v[1]*a[1]
}

func (v Vec2) NormSq() float64 {
	return v.Dot(v)
}

func (v Vec2) Norm() float64 {
	return math.Sqrt(v.NormSq())
}

func (v Vec2) Normalized() Vec2 {
	n := v.Norm()
	return Vec2{v[0] / n, v[1] / n}
}

// NormalizedExcludeLast scales x by |x| and keeps y as is.
func (v Vec2) NormalizedExcludeLast() Vec2 {
	n := math.Abs(v[0])
	return Vec2{v[0] / n, v[1]}
}

// Lerp returns (1-s)*v + s*a.
func (v Vec2) Lerp(a Vec2, s float64) Vec2 {
	return Vec2{lerp(v[0], a[0], s), lerp(v[1], a[1], s)}
}
