package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	testCases := map[string]struct {
		v        Flattener
		expected []float32
	}{
		"Vec2": {Vec2{1, 2}, []float32{1, 2}},
		"Vec3": {Vec3{1, 2, 3}, []float32{1, 2, 3}},
		"Vec4": {Vec4{1, 2, 3, 4}, []float32{1, 2, 3, 4}},
		"Mat2": {Mat2{{1, 2}, {3, 4}}, []float32{1, 3, 2, 4}},
		"Mat3": {
			Mat3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
			[]float32{1, 4, 7, 2, 5, 8, 3, 6, 9},
		},
		"Mat4Identity": {
			Ident4(),
			[]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
		},
		"Mat4Translate": {
			Translate(1, 2, 3),
			[]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 1, 2, 3, 1},
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			out := Flatten(tt.v)
			assert.Equal(t, tt.expected, out)
			assert.Equal(t, tt.v.Tag().Size(), len(out))
		})
	}
}

func TestFlattenSlice(t *testing.T) {
	vs := []Vec3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {10, 11, 12}}
	out := FlattenSlice(vs)
	require.Len(t, out, 4*3)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, out)

	ms := []Mat2{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}}
	assert.Equal(t, []float32{1, 3, 2, 4, 5, 7, 6, 8}, FlattenSlice(ms))

	assert.Empty(t, FlattenSlice([]Vec4{}))
}

func TestFlattenValues_mixed(t *testing.T) {
	// Collections of interface type have their tags checked at runtime.
	vs := []Vector{Vec2{1, 2}, Vec4{3, 4, 5, 6}}
	fs := make([]Flattener, len(vs))
	for i, v := range vs {
		fs[i] = v
	}
	_, err := FlattenValues(fs)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	ms := []Flattener{Ident2(), Ident2()}
	out, err := FlattenValues(ms)
	require.NoError(t, err)
	assert.Len(t, out, len(ms)*Ident2().Tag().Size())
}

func TestFlattenValues(t *testing.T) {
	out, err := FlattenValues([]Flattener{Vec2{1, 2}, Vec2{3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4}, out)

	out, err = FlattenValues(nil)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = FlattenValues([]Flattener{Vec3{}, Vec4{}})
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = FlattenValues([]Flattener{Ident3(), nil})
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestFlattenMat4Into(t *testing.T) {
	var buf [16]float32
	for _, m := range []Mat4{
		Ident4(),
		Perspective(45, 1.5, 0.1, 100),
		LookAt(Vec3{1, 2, 3}, Vec3{}, Vec3{0, 1, 0}).Mul(RotateY(20)),
	} {
		FlattenMat4Into(&buf, m)
		assert.Equal(t, Flatten(m), buf[:])
	}
}

func BenchmarkFlattenMat4Into(b *testing.B) {
	var buf [16]float32
	m := Perspective(45, 1.5, 0.1, 100)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		FlattenMat4Into(&buf, m)
	}
}
