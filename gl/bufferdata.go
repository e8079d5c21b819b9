// Package gl connects mat values to GPU APIs: flattened upload buffers,
// conversion to the float32 types of pcgol and mathgl used by renderers,
// and uniform and buffer upload on webgl-go for js builds.
package gl

import (
	"github.com/seqsense/mvgl/mat"
)

// BufferData is a byte view of data to be uploaded to a GPU buffer.
type BufferData interface {
	Bytes() []byte
}

type Float32ArrayBuffer []float32

func (b Float32ArrayBuffer) Bytes() []byte {
	return float32SliceAsByteSlice([]float32(b))
}

type ByteArrayBuffer []byte

func (b ByteArrayBuffer) Bytes() []byte {
	return b
}

// Flatten lays out vs, which must all have the same tag, as one buffer.
// Matrices are stored column-major.
func Flatten(vs ...mat.Flattener) (Float32ArrayBuffer, error) {
	f, err := mat.FlattenValues(vs)
	if err != nil {
		return nil, err
	}
	return Float32ArrayBuffer(f), nil
}
