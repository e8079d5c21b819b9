package mat

import (
	"fmt"
	"math"
)

// Det returns the determinant of m.
func Det(m Matrix) float64 {
	switch m := m.(type) {
	case Mat2:
		return m.Det()
	case Mat3:
		return m.Det()
	case Mat4:
		return m.Det()
	}
	return math.NaN()
}

// Inverse returns the inverse of m computed from signed cofactors.
// Singularity is not detected: a zero determinant gives non-finite entries.
// Use InverseChecked to get an error instead.
func Inverse(m Matrix) Matrix {
	switch m := m.(type) {
	case Mat2:
		return m.Inv()
	case Mat3:
		return m.Inv()
	case Mat4:
		return m.Inv()
	}
	return nil
}

// InverseChecked is Inverse returning ErrSingular if |det(m)| <= eps.
func InverseChecked(m Matrix, eps float64) (Matrix, error) {
	if m == nil {
		return nil, fmt.Errorf("inverse: %w: %s", ErrTypeMismatch, Classify(m))
	}
	if d := Det(m); math.Abs(d) <= eps || math.IsNaN(d) {
		return nil, fmt.Errorf("inverse: %w: det=%g", ErrSingular, d)
	}
	return Inverse(m), nil
}

// Transpose swaps the rows and columns of m.
func Transpose(m Matrix) Matrix {
	switch m := m.(type) {
	case Mat2:
		return m.Transpose()
	case Mat3:
		return m.Transpose()
	case Mat4:
		return m.Transpose()
	}
	return nil
}
