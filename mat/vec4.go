package mat

import (
	"math"
)

type Vec4 [4]float64

func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// Vec4FromScalar returns (s, s, s, 1).
// The homogeneous coordinate is 1, unlike Vec2FromScalar and Vec3FromScalar.
func Vec4FromScalar(s float64) Vec4 {
	return Vec4{s, s, s, 1}
}

// Vec4FromVec2 returns the point (v.x, v.y, 0, 1).
func Vec4FromVec2(v Vec2) Vec4 {
	return Vec4{v[0], v[1], 0, 1}
}

// Vec4FromVec3 returns the point (v.x, v.y, v.z, 1).
func Vec4FromVec3(v Vec3) Vec4 {
	return Vec4{v[0], v[1], v[2], 1}
}

// Vec4FromVector converts v to homogeneous coordinates.
func Vec4FromVector(v Vector) Vec4 {
	switch v := v.(type) {
	case Vec2:
		return Vec4FromVec2(v)
	case Vec3:
		return Vec4FromVec3(v)
	case Vec4:
		return v
	}
	return Vec4{}
}

// Vec4Append returns (v.x, v.y, v.z, w).
func Vec4Append(v Vec3, w float64) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// Vec4Prepend returns (s, v.x, v.y, v.z).
func Vec4Prepend(s float64, v Vec3) Vec4 {
	return Vec4{s, v[0], v[1], v[2]}
}

// Vec4Of builds a Vec4 from zero arguments, one vector, Scalar or
// four element Floats, a (Scalar, Vec3) or (Vec3, Scalar) pair,
// or four Scalars.
func Vec4Of(args ...Arg) (Vec4, error) {
	switch shapeOf(args) {
	case shapeEmpty:
		return Vec4{}, nil
	case shapeScalar:
		return Vec4FromScalar(float64(args[0].(Scalar))), nil
	case shapeVector:
		return Vec4FromVector(args[0].(Vector)), nil
	case shapeFloats:
		if f := args[0].(Floats); len(f) == 4 {
			return Vec4{f[0], f[1], f[2], f[3]}, nil
		}
	case shapeScalarVector:
		if v, ok := args[1].(Vec3); ok {
			return Vec4Prepend(float64(args[0].(Scalar)), v), nil
		}
	case shapeVectorScalar:
		if v, ok := args[0].(Vec3); ok {
			return Vec4Append(v, float64(args[1].(Scalar))), nil
		}
	case shapeScalars:
		if len(args) == 4 {
			s := scalars(args)
			return Vec4{s[0], s[1], s[2], s[3]}, nil
		}
	}
	return Vec4{}, argError("vec4", args, 0, 1, 2, 4)
}

func (v Vec4) Add(a Vec4) Vec4 {
	return Vec4{v[0] + a[0], v[1] + a[1], v[2] + a[2], v[3] + a[3]}
}

func (v Vec4) Sub(a Vec4) Vec4 {
	return Vec4{v[0] - a[0], v[1] - a[1], v[2] - a[2], v[3] - a[3]}
}

// Mul scales v by a.
func (v Vec4) Mul(a float64) Vec4 {
	return Vec4{v[0] * a, v[1] * a, v[2] * a, v[3] * a}
}

// MulElem returns the elementwise product.
func (v Vec4) MulElem(a Vec4) Vec4 {
	return Vec4{v[0] * a[0], v[1] * a[1], v[2] * a[2], v[3] * a[3]}
}

func (v Vec4) Neg() Vec4 {
	return Vec4{-v[0], -v[1], -v[2], -v[3]}
}

func (v Vec4) Dot(a Vec4) float64 {
	return v[0]*a[0] + v[1]*a[1] + v[2]*a[2] + v[3]*a[3]
}

// Cross returns the cross product of the xyz parts. w is ignored.
func (v Vec4) Cross(a Vec4) Vec3 {
	return v.XYZ().Cross(a.XYZ())
}

// XYZ drops the homogeneous coordinate.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

func (v Vec4) NormSq() float64 {
	return v.Dot(v)
}

func (v Vec4) Norm() float64 {
	return math.Sqrt(v.NormSq())
}

func (v Vec4) Normalized() Vec4 {
	n := v.Norm()
	return Vec4{v[0] / n, v[1] / n, v[2] / n, v[3] / n}
}

// NormalizedExcludeLast normalizes the xyz part and keeps w as is.
func (v Vec4) NormalizedExcludeLast() Vec4 {
	return Vec4Append(v.XYZ().Normalized(), v[3])
}

// Lerp returns (1-s)*v + s*a.
func (v Vec4) Lerp(a Vec4, s float64) Vec4 {
	return Vec4{
		lerp(v[0], a[0], s), lerp(v[1], a[1], s),
		lerp(v[2], a[2], s), lerp(v[3], a[3], s),
	}
}
