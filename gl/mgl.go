package gl

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/seqsense/mvgl/mat"
)

// Mgl32Mat4 converts m to a mathgl matrix. Both mathgl and the flattened
// form are column-major, so no reordering happens here.
func Mgl32Mat4(m mat.Mat4) mgl32.Mat4 {
	var out [16]float32
	mat.FlattenMat4Into(&out, m)
	return mgl32.Mat4(out)
}

func FromMgl32Mat4(m mgl32.Mat4) mat.Mat4 {
	var out mat.Mat4
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			out[i][j] = float64(m.At(i, j))
		}
	}
	return out
}

func Mgl32Vec3(v mat.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func Mgl32Vec4(v mat.Vec4) mgl32.Vec4 {
	return mgl32.Vec4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}
