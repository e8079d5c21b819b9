package mat

type Mat3 [3][3]float64

// Ident3 returns the 3x3 identity matrix.
func Ident3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Mat3FromArray fills a Mat3 in row-major order.
func Mat3FromArray(a [9]float64) Mat3 {
	var m Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = a[3*i+j]
		}
	}
	return m
}

// Mat3Of builds a Mat3 from zero arguments (identity), a Mat3,
// a nine element Floats or nine Scalars, all in row-major order.
func Mat3Of(args ...Arg) (Mat3, error) {
	switch shapeOf(args) {
	case shapeEmpty:
		return Ident3(), nil
	case shapeMatrix:
		if m, ok := args[0].(Mat3); ok {
			return m, nil
		}
	case shapeFloats:
		if f := args[0].(Floats); len(f) == 9 {
			return Mat3FromArray([9]float64(f)), nil
		}
	case shapeScalars:
		if len(args) == 9 {
			return Mat3FromArray([9]float64(scalars(args))), nil
		}
	}
	return Mat3{}, argError("mat3", args, 0, 1, 9)
}

func (m Mat3) Add(a Mat3) Mat3 {
	var out Mat3
	for i := range m {
		for j := range m[i] {
			out[i][j] = m[i][j] + a[i][j]
		}
	}
	return out
}

func (m Mat3) Sub(a Mat3) Mat3 {
	var out Mat3
	for i := range m {
		for j := range m[i] {
			out[i][j] = m[i][j] - a[i][j]
		}
	}
	return out
}

// MulScalar scales every entry by s.
func (m Mat3) MulScalar(s float64) Mat3 {
	var out Mat3
	for i := range m {
		for j := range m[i] {
			out[i][j] = m[i][j] * s
		}
	}
	return out
}

func (m Mat3) Mul(a Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[i][k] * a[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func (m Mat3) MulVec(v Vec3) Vec3 {
	var out Vec3
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			out[i] += m[i][k] * v[k]
		}
	}
	return out
}

func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Det evaluates the determinant by the rule of Sarrus.
func (m Mat3) Det() float64 {
	return m[0][0]*m[1][1]*m[2][2] +
		m[0][1]*m[1][2]*m[2][0] +
		m[0][2]*m[2][1]*m[1][0] -
		m[2][0]*m[1][1]*m[0][2] -
		m[1][0]*m[0][1]*m[2][2] -
		m[0][0]*m[1][2]*m[2][1]
}

// minor returns m without row r and column c.
func (m Mat3) minor(r, c int) Mat2 {
	var out Mat2
	for i, ii := 0, 0; i < 3; i++ {
		if i == r {
			continue
		}
		for j, jj := 0, 0; j < 3; j++ {
			if j == c {
				continue
			}
			out[ii][jj] = m[i][j]
			jj++
		}
		ii++
	}
	return out
}

// Inv returns the adjugate of m divided by its determinant.
// The result is not finite if m is singular.
func (m Mat3) Inv() Mat3 {
	d := m.Det()
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = checkerboard(i, j) * m.minor(j, i).Det() / d
		}
	}
	return out
}

// Upper returns the top-left 2x2 block.
func (m Mat3) Upper() Mat2 {
	return Mat2{{m[0][0], m[0][1]}, {m[1][0], m[1][1]}}
}

func checkerboard(i, j int) float64 {
	if (i+j)%2 == 0 {
		return 1
	}
	return -1
}
