package mat

type Mat2 [2][2]float64

// Ident2 returns the 2x2 identity matrix.
func Ident2() Mat2 {
	return Mat2{{1, 0}, {0, 1}}
}

// NewMat2 returns the matrix with the given entries in row-major order.
func NewMat2(a00, a01, a10, a11 float64) Mat2 {
	return Mat2{{a00, a01}, {a10, a11}}
}

// Mat2FromArray fills a Mat2 in row-major order.
func Mat2FromArray(a [4]float64) Mat2 {
	return NewMat2(a[0], a[1], a[2], a[3])
}

// Mat2Of builds a Mat2 from zero arguments (identity), a Mat2,
// a four element Floats or four Scalars, all in row-major order.
func Mat2Of(args ...Arg) (Mat2, error) {
	switch shapeOf(args) {
	case shapeEmpty:
		return Ident2(), nil
	case shapeMatrix:
		if m, ok := args[0].(Mat2); ok {
			return m, nil
		}
	case shapeFloats:
		if f := args[0].(Floats); len(f) == 4 {
			return Mat2FromArray([4]float64(f)), nil
		}
	case shapeScalars:
		if len(args) == 4 {
			return Mat2FromArray([4]float64(scalars(args))), nil
		}
	}
	return Mat2{}, argError("mat2", args, 0, 1, 4)
}

func (m Mat2) Add(a Mat2) Mat2 {
	var out Mat2
	for i := range m {
		for j := range m[i] {
			out[i][j] = m[i][j] + a[i][j]
		}
	}
	return out
}

func (m Mat2) Sub(a Mat2) Mat2 {
	var out Mat2
	for i := range m {
		for j := range m[i] {
			out[i][j] = m[i][j] - a[i][j]
		}
	}
	return out
}

// MulScalar scales every entry by s.
func (m Mat2) MulScalar(s float64) Mat2 {
	var out Mat2
	for i := range m {
		for j := range m[i] {
			out[i][j] = m[i][j] * s
		}
	}
	return out
}

func (m Mat2) Mul(a Mat2) Mat2 {
	var out Mat2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			var sum float64
			for k := 0; k < 2; k++ {
				sum += m[i][k] * a[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{
		m[0][0]*v[0] + m[0][1]*v[1],
		m[1][0]*v[0] + m[1][1]*v[1],
	}
}

func (m Mat2) Transpose() Mat2 {
	return Mat2{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}}
}

func (m Mat2) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Inv returns the inverse of m.
// The result is not finite if m is singular.
func (m Mat2) Inv() Mat2 {
	d := m.Det()
	return Mat2{
		{m[1][1] / d, -m[0][1] / d},
		{-m[1][0] / d, m[0][0] / d},
	}
}
