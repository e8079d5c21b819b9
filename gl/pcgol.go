package gl

import (
	pcmat "github.com/seqsense/pcgol/mat"

	"github.com/seqsense/mvgl/mat"
)

// PCGolMat4 converts m to the column-major float32 matrix of pcgol.
func PCGolMat4(m mat.Mat4) pcmat.Mat4 {
	var out [16]float32
	mat.FlattenMat4Into(&out, m)
	return pcmat.Mat4(out)
}

// FromPCGolMat4 converts a pcgol matrix back to row-major float64.
func FromPCGolMat4(m pcmat.Mat4) mat.Mat4 {
	var out mat.Mat4
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			out[i][j] = float64(m[4*j+i])
		}
	}
	return out
}

func PCGolVec3(v mat.Vec3) pcmat.Vec3 {
	return pcmat.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func FromPCGolVec3(v pcmat.Vec3) mat.Vec3 {
	return mat.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
