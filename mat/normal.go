package mat

import (
	"fmt"
)

// NormalMatrix returns the inverse transpose of m.
func NormalMatrix(m Mat4) Mat4 {
	return m.Transpose().Inv()
}

// NormalMatrix3 returns the top-left 3x3 block of the inverse transpose of m,
// the matrix that transforms surface normals under m.
func NormalMatrix3(m Mat4) Mat3 {
	return NormalMatrix(m).Upper()
}

// NormalMatrixOf is NormalMatrix for a dynamically typed matrix.
// m must be a Mat4. If linearOnly is set the 3x3 block is returned.
func NormalMatrixOf(m Matrix, linearOnly bool) (Matrix, error) {
	m4, ok := m.(Mat4)
	if !ok {
		return nil, fmt.Errorf("normal matrix: %w: %s, want mat4", ErrTypeMismatch, Classify(m))
	}
	if linearOnly {
		return NormalMatrix3(m4), nil
	}
	return NormalMatrix(m4), nil
}
