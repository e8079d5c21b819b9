package gl

import (
	"errors"
	"fmt"

	"github.com/seqsense/mvgl/mat"
)

// ErrBufferFull is returned by Buffer.Push when the values do not fit.
var ErrBufferFull = errors.New("buffer full")

// Buffer is a fixed size float32 buffer which values are pushed to
// in flattened form, e.g. to stream particle positions every frame.
// Buffer is not safe for concurrent use.
type Buffer struct {
	buf []float32
	n   int
}

// NewBuffer allocates a buffer of size floats.
func NewBuffer(size int) *Buffer {
	return &Buffer{buf: make([]float32, size)}
}

// Push appends vs. Either all of vs is stored or, if they do not fit,
// none of them and ErrBufferFull is returned.
func (b *Buffer) Push(vs ...mat.Flattener) error {
	var need int
	for i, v := range vs {
		if v == nil {
			return fmt.Errorf("push: %w: element %d is nil", mat.ErrTypeMismatch, i)
		}
		need += v.Tag().Size()
	}
	if b.n+need > len(b.buf) {
		return fmt.Errorf("push %d floats at %d/%d: %w", need, b.n, len(b.buf), ErrBufferFull)
	}
	out := b.buf[:b.n]
	for _, v := range vs {
		out = v.AppendFloat32(out)
	}
	b.n = len(out)
	return nil
}

// Len returns the number of floats pushed.
func (b *Buffer) Len() int {
	return b.n
}

// Cap returns the size of the buffer in floats.
func (b *Buffer) Cap() int {
	return len(b.buf)
}

// Floats returns the pushed floats. It is valid until the next Push or Reset.
func (b *Buffer) Floats() []float32 {
	return b.buf[:b.n]
}

func (b *Buffer) Bytes() []byte {
	return float32SliceAsByteSlice(b.Floats())
}

// Reset empties the buffer without releasing it.
func (b *Buffer) Reset() {
	b.n = 0
}
