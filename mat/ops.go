package mat

import (
	"math"
)

func lerp(a, b, s float64) float64 {
	return (1.0-s)*a + s*b
}

// Components returns a copy of the components of v.
func Components(v Vector) []float64 {
	switch v := v.(type) {
	case Vec2:
		return v[:]
	case Vec3:
		return v[:]
	case Vec4:
		return v[:]
	}
	return nil
}

// Entries returns a copy of the entries of m in row-major order.
func Entries(m Matrix) []float64 {
	var out []float64
	switch m := m.(type) {
	case Mat2:
		for _, r := range m {
			out = append(out, r[:]...)
		}
	case Mat3:
		for _, r := range m {
			out = append(out, r[:]...)
		}
	case Mat4:
		for _, r := range m {
			out = append(out, r[:]...)
		}
	}
	return out
}

// sameShape reports whether u and v are vectors or matrices with the same tag.
func sameShape(u, v Value) bool {
	tu, tv := Classify(u), Classify(v)
	if tu.Kind != KindVector && tu.Kind != KindMatrix {
		return false
	}
	return tu == tv
}

// Equal reports whether u and v have the same tag and exactly equal entries.
// Both must be vectors or matrices. Values with different tags, including
// a Vec3 and a Vec4, are an error.
func Equal(u, v Value) (bool, error) {
	if !sameShape(u, v) {
		return false, mismatch("equal", u, v)
	}
	return u == v, nil
}

// ApproxEqual is Equal with an absolute tolerance of eps per entry.
func ApproxEqual(u, v Value, eps float64) (bool, error) {
	if !sameShape(u, v) {
		return false, mismatch("approx equal", u, v)
	}
	a, b := entriesOf(u), entriesOf(v)
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false, nil
		}
	}
	return true, nil
}

func entriesOf(v Value) []float64 {
	switch v := v.(type) {
	case Vector:
		return Components(v)
	case Matrix:
		return Entries(v)
	}
	return nil
}

// Add returns the elementwise sum of two values with the same tag.
func Add(u, v Value) (Value, error) {
	switch u := u.(type) {
	case Scalar:
		if v, ok := v.(Scalar); ok {
			return u + v, nil
		}
	case Vec2:
		if v, ok := v.(Vec2); ok {
			return u.Add(v), nil
		}
	case Vec3:
		if v, ok := v.(Vec3); ok {
			return u.Add(v), nil
		}
	case Vec4:
		if v, ok := v.(Vec4); ok {
			return u.Add(v), nil
		}
	case Mat2:
		if v, ok := v.(Mat2); ok {
			return u.Add(v), nil
		}
	case Mat3:
		if v, ok := v.(Mat3); ok {
			return u.Add(v), nil
		}
	case Mat4:
		if v, ok := v.(Mat4); ok {
			return u.Add(v), nil
		}
	}
	return nil, mismatch("add", u, v)
}

// Subtract returns the elementwise difference of two values with the same tag.
func Subtract(u, v Value) (Value, error) {
	switch u := u.(type) {
	case Scalar:
		if v, ok := v.(Scalar); ok {
			return u - v, nil
		}
	case Vec2:
		if v, ok := v.(Vec2); ok {
			return u.Sub(v), nil
		}
	case Vec3:
		if v, ok := v.(Vec3); ok {
			return u.Sub(v), nil
		}
	case Vec4:
		if v, ok := v.(Vec4); ok {
			return u.Sub(v), nil
		}
	case Mat2:
		if v, ok := v.(Mat2); ok {
			return u.Sub(v), nil
		}
	case Mat3:
		if v, ok := v.(Mat3); ok {
			return u.Sub(v), nil
		}
	case Mat4:
		if v, ok := v.(Mat4); ok {
			return u.Sub(v), nil
		}
	}
	return nil, mismatch("subtract", u, v)
}

// Negate flips the sign of every component of u.
func Negate(u Vector) Vector {
	switch u := u.(type) {
	case Vec2:
		return u.Neg()
	case Vec3:
		return u.Neg()
	case Vec4:
		return u.Neg()
	}
	return nil
}

// Mult multiplies u and v according to their kinds:
//
//   - Scalar * Scalar: product
//   - Scalar * vector or matrix: every entry scaled
//   - matrix * vector of the same dimension: matrix-vector product
//   - matrix * matrix of the same dimension: matrix product
//   - vector * vector of the same dimension: elementwise product
//
// The product of two vectors is not the inner product, use Dot for that.
func Mult(u, v Value) (Value, error) {
	if s, ok := u.(Scalar); ok {
		return scale(float64(s), v)
	}
	switch u := u.(type) {
	case Vec2:
		if v, ok := v.(Vec2); ok {
			return u.MulElem(v), nil
		}
	case Vec3:
		if v, ok := v.(Vec3); ok {
			return u.MulElem(v), nil
		}
	case Vec4:
		if v, ok := v.(Vec4); ok {
			return u.MulElem(v), nil
		}
	case Mat2:
		switch v := v.(type) {
		case Vec2:
			return u.MulVec(v), nil
		case Mat2:
			return u.Mul(v), nil
		}
	case Mat3:
		switch v := v.(type) {
		case Vec3:
			return u.MulVec(v), nil
		case Mat3:
			return u.Mul(v), nil
		}
	case Mat4:
		switch v := v.(type) {
		case Vec4:
			return u.MulVec(v), nil
		case Mat4:
			return u.Mul(v), nil
		}
	}
	return nil, mismatch("mult", u, v)
}

func scale(s float64, v Value) (Value, error) {
	switch v := v.(type) {
	case Scalar:
		return Scalar(s) * v, nil
	case Vec2:
		return v.Mul(s), nil
	case Vec3:
		return v.Mul(s), nil
	case Vec4:
		return v.Mul(s), nil
	case Mat2:
		return v.MulScalar(s), nil
	case Mat3:
		return v.MulScalar(s), nil
	case Mat4:
		return v.MulScalar(s), nil
	}
	return nil, mismatch("mult", Scalar(s), v)
}

// Dot returns the inner product of two vectors of the same dimension.
func Dot(u, v Vector) (float64, error) {
	switch u := u.(type) {
	case Vec2:
		if v, ok := v.(Vec2); ok {
			return u.Dot(v), nil
		}
	case Vec3:
		if v, ok := v.(Vec3); ok {
			return u.Dot(v), nil
		}
	case Vec4:
		if v, ok := v.(Vec4); ok {
			return u.Dot(v), nil
		}
	}
	return 0, mismatch("dot", u, v)
}

// Cross returns the cross product of two Vec3 or two Vec4.
// The w component of Vec4 operands is ignored.
func Cross(u, v Vector) (Vec3, error) {
	switch u := u.(type) {
	case Vec3:
		if v, ok := v.(Vec3); ok {
			return u.Cross(v), nil
		}
	case Vec4:
		if v, ok := v.(Vec4); ok {
			return u.Cross(v), nil
		}
	}
	return Vec3{}, mismatch("cross", u, v)
}

// Length returns the Euclidean norm of u.
func Length(u Vector) float64 {
	switch u := u.(type) {
	case Vec2:
		return u.Norm()
	case Vec3:
		return u.Norm()
	case Vec4:
		return u.Norm()
	}
	return 0
}

// Normalize divides u by its norm. If excludeLast is set, the norm is taken
// over all but the last component and the last component is copied as is.
// A zero norm gives non-finite components.
func Normalize(u Vector, excludeLast bool) Vector {
	switch u := u.(type) {
	case Vec2:
		if excludeLast {
			return u.NormalizedExcludeLast()
		}
		return u.Normalized()
	case Vec3:
		if excludeLast {
			return u.NormalizedExcludeLast()
		}
		return u.Normalized()
	case Vec4:
		if excludeLast {
			return u.NormalizedExcludeLast()
		}
		return u.Normalized()
	}
	return nil
}

// Mix interpolates linearly, (1-s)*u + s*v, between two Scalars or two
// vectors of the same dimension.
func Mix(u, v Value, s float64) (Value, error) {
	switch u := u.(type) {
	case Scalar:
		if v, ok := v.(Scalar); ok {
			return Scalar(lerp(float64(u), float64(v), s)), nil
		}
	case Vec2:
		if v, ok := v.(Vec2); ok {
			return u.Lerp(v, s), nil
		}
	case Vec3:
		if v, ok := v.(Vec3); ok {
			return u.Lerp(v, s), nil
		}
	case Vec4:
		if v, ok := v.(Vec4); ok {
			return u.Lerp(v, s), nil
		}
	}
	return nil, mismatch("mix", u, v)
}
