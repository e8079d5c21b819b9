package mat

import (
	"math"
	"strconv"
	"strings"
)

// cut rounds a to three decimals for printing.
// Negative zero is printed as 0.
func cut(a float64) float64 {
	r := math.Round(a*1000) / 1000
	if r == 0 {
		return 0
	}
	return r
}

func formatRow(b *strings.Builder, r []float64) {
	for j, a := range r {
		if j > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(cut(a), 'g', -1, 64))
	}
}

func formatVec(name string, v []float64) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	formatRow(&b, v)
	b.WriteByte(')')
	return b.String()
}

func formatMat(rows [][]float64) string {
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		formatRow(&b, r)
	}
	return b.String()
}

func (v Vec2) String() string { return formatVec("vec2", v[:]) }
func (v Vec3) String() string { return formatVec("vec3", v[:]) }
func (v Vec4) String() string { return formatVec("vec4", v[:]) }

// String prints one row per line with entries rounded to three decimals.
func (m Mat2) String() string { return formatMat([][]float64{m[0][:], m[1][:]}) }
func (m Mat3) String() string { return formatMat([][]float64{m[0][:], m[1][:], m[2][:]}) }
func (m Mat4) String() string {
	return formatMat([][]float64{m[0][:], m[1][:], m[2][:], m[3][:]})
}
