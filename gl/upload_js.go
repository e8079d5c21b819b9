package gl

import (
	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/mvgl/mat"
)

// UniformMatrix4 sets the mat4 uniform at loc to m.
func UniformMatrix4(gl *webgl.WebGL, loc webgl.Location, m mat.Mat4) {
	gl.UniformMatrix4fv(loc, false, PCGolMat4(m))
}

// Uniform3 sets the vec3 uniform at loc to v.
func Uniform3(gl *webgl.WebGL, loc webgl.Location, v mat.Vec3) {
	gl.Uniform3fv(loc, PCGolVec3(v))
}

// Upload stores data to the buffer bound to target.
func Upload(gl *webgl.WebGL, target webgl.BufferType, data BufferData, usage webgl.BufferUsage) {
	gl.BufferData(target, webgl.ByteArrayBuffer(data.Bytes()), usage)
}
