package gl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqsense/mvgl/mat"
)

func TestBuffer(t *testing.T) {
	b := NewBuffer(8)
	assert.Equal(t, 8, b.Cap())
	assert.Equal(t, 0, b.Len())

	require.NoError(t, b.Push(mat.Vec3{1, 2, 3}, mat.Vec2{4, 5}))
	assert.Equal(t, []float32{1, 2, 3, 4, 5}, b.Floats())

	err := b.Push(mat.Vec4{6, 7, 8, 9})
	if !errors.Is(err, ErrBufferFull) {
		t.Fatalf("Expected ErrBufferFull, got %v", err)
	}
	assert.Equal(t, 5, b.Len(), "failed push must not store anything")

	require.NoError(t, b.Push(mat.Vec3{6, 7, 8}))
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8}, b.Floats())

	b.Reset()
	assert.Equal(t, 0, b.Len())
	require.NoError(t, b.Push(mat.Mat2{{1, 2}, {3, 4}}))
	assert.Equal(t, []float32{1, 3, 2, 4}, b.Floats())
}

func TestBuffer_nil(t *testing.T) {
	b := NewBuffer(4)
	err := b.Push(mat.Vec2{}, nil)
	if !errors.Is(err, mat.ErrTypeMismatch) {
		t.Fatalf("Expected ErrTypeMismatch, got %v", err)
	}
	assert.Equal(t, 0, b.Len())
}

func TestBufferData(t *testing.T) {
	assert.Nil(t, Float32ArrayBuffer(nil).Bytes())

	f := Float32ArrayBuffer{1, -2}
	bs := f.Bytes()
	require.Len(t, bs, 8)
	// Native byte order is little endian on every target we build for.
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f, 0x00, 0x00, 0x00, 0xc0}, bs)

	b := NewBuffer(4)
	require.NoError(t, b.Push(mat.Vec2{1, -2}))
	assert.Equal(t, bs, b.Bytes())

	assert.Equal(t, []byte{1, 2}, ByteArrayBuffer{1, 2}.Bytes())
}

func TestFlatten(t *testing.T) {
	f, err := Flatten(mat.Vec2{1, 2}, mat.Vec2{3, 4})
	require.NoError(t, err)
	assert.Equal(t, Float32ArrayBuffer{1, 2, 3, 4}, f)

	_, err = Flatten(mat.Vec2{1, 2}, mat.Vec3{3, 4, 5})
	if !errors.Is(err, mat.ErrTypeMismatch) {
		t.Fatalf("Expected ErrTypeMismatch, got %v", err)
	}
}
