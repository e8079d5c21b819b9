package mat

type Mat4 [4][4]float64

// Ident4 returns the 4x4 identity matrix.
func Ident4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mat4FromArray fills a Mat4 in row-major order.
func Mat4FromArray(a [16]float64) Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = a[4*i+j]
		}
	}
	return m
}

// Mat4FromRows uses r0 to r3 as the rows of the matrix.
func Mat4FromRows(r0, r1, r2, r3 Vec4) Mat4 {
	return Mat4{r0, r1, r2, r3}
}

// Mat4Of builds a Mat4 from zero arguments (identity), a Mat4,
// a sixteen element Floats, four Vec4 rows or sixteen Scalars.
func Mat4Of(args ...Arg) (Mat4, error) {
	switch shapeOf(args) {
	case shapeEmpty:
		return Ident4(), nil
	case shapeMatrix:
		if m, ok := args[0].(Mat4); ok {
			return m, nil
		}
	case shapeFloats:
		if f := args[0].(Floats); len(f) == 16 {
			return Mat4FromArray([16]float64(f)), nil
		}
	case shapeVectors:
		if len(args) != 4 {
			break
		}
		var rows [4]Vec4
		for i, a := range args {
			r, ok := a.(Vec4)
			if !ok {
				return Mat4{}, argError("mat4", args, 4)
			}
			rows[i] = r
		}
		return Mat4FromRows(rows[0], rows[1], rows[2], rows[3]), nil
	case shapeScalars:
		if len(args) == 16 {
			return Mat4FromArray([16]float64(scalars(args))), nil
		}
	}
	return Mat4{}, argError("mat4", args, 0, 1, 4, 16)
}

func (m Mat4) Add(a Mat4) Mat4 {
	var out Mat4
	for i := range m {
		for j := range m[i] {
			out[i][j] = m[i][j] + a[i][j]
		}
	}
	return out
}

func (m Mat4) Sub(a Mat4) Mat4 {
	var out Mat4
	for i := range m {
		for j := range m[i] {
			out[i][j] = m[i][j] - a[i][j]
		}
	}
	return out
}

// MulScalar scales every entry by s.
func (m Mat4) MulScalar(s float64) Mat4 {
	var out Mat4
	for i := range m {
		for j := range m[i] {
			out[i][j] = m[i][j] * s
		}
	}
	return out
}

func (m Mat4) Mul(a Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[i][k] * a[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func (m Mat4) MulVec(v Vec4) Vec4 {
	var out Vec4
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			out[i] += m[i][k] * v[k]
		}
	}
	return out
}

// TransformAffine applies m to the point a, assuming the last row of m
// is (0, 0, 0, 1).
func (m Mat4) TransformAffine(a Vec3) Vec3 {
	var out Vec3
	out[0] = m[0][0]*a[0] + m[0][1]*a[1] + m[0][2]*a[2] + m[0][3]
	out[1] = m[1][0]*a[0] + m[1][1]*a[1] + m[1][2]*a[2] + m[1][3]
	out[2] = m[2][0]*a[0] + m[2][1]*a[1] + m[2][2]*a[2] + m[2][3]
	return out
}

func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// minor returns m without row r and column c.
func (m Mat4) minor(r, c int) Mat3 {
	var out Mat3
	for i, ii := 0, 0; i < 4; i++ {
		if i == r {
			continue
		}
		for j, jj := 0, 0; j < 4; j++ {
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

// Det expands the determinant along the first row.
func (m Mat4) Det() float64 {
	return m[0][0]*m.minor(0, 0).Det() -
		m[0][1]*m.minor(0, 1).Det() +
		m[0][2]*m.minor(0, 2).Det() -
		m[0][3]*m.minor(0, 3).Det()
}

// Inv returns the adjugate of m divided by its determinant.
// The result is not finite if m is singular.
func (m Mat4) Inv() Mat4 {
	d := m.Det()
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = checkerboard(i, j) * m.minor(j, i).Det() / d
		}
	}
	return out
}

// Upper returns the top-left 3x3 block, the linear part of an affine map.
func (m Mat4) Upper() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][j]
		}
	}
	return out
}
