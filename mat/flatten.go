package mat

import (
	"fmt"
)

// Flattener is a value which can be laid out as float32 for GPU upload.
type Flattener interface {
	Tag() Tag
	// AppendFloat32 appends the value to dst.
	// Vectors are appended component by component and
	// matrices column by column.
	AppendFloat32(dst []float32) []float32
}

func (v Vec2) AppendFloat32(dst []float32) []float32 {
	return append(dst, float32(v[0]), float32(v[1]))
}

func (v Vec3) AppendFloat32(dst []float32) []float32 {
	return append(dst, float32(v[0]), float32(v[1]), float32(v[2]))
}

func (v Vec4) AppendFloat32(dst []float32) []float32 {
	return append(dst, float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3]))
}

func (m Mat2) AppendFloat32(dst []float32) []float32 {
	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			dst = append(dst, float32(m[i][j]))
		}
	}
	return dst
}

func (m Mat3) AppendFloat32(dst []float32) []float32 {
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			dst = append(dst, float32(m[i][j]))
		}
	}
	return dst
}

func (m Mat4) AppendFloat32(dst []float32) []float32 {
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			dst = append(dst, float32(m[i][j]))
		}
	}
	return dst
}

// Size returns the number of floats Flatten produces for a value tagged t.
func (t Tag) Size() int {
	switch t.Kind {
	case KindVector:
		return t.Dim
	case KindMatrix:
		return t.Dim * t.Dim
	}
	return 0
}

// Flatten returns v as a newly allocated float32 slice.
// Matrices are transposed to column-major order.
func Flatten(v Flattener) []float32 {
	return v.AppendFloat32(make([]float32, 0, v.Tag().Size()))
}

// Concrete is one of the concrete vector and matrix types.
type Concrete interface {
	Vec2 | Vec3 | Vec4 | Mat2 | Mat3 | Mat4
	Flattener
}

// FlattenSlice flattens vs into one contiguous slice of
// len(vs) times the element size. Slices of interface type
// go through FlattenValues.
func FlattenSlice[T Concrete](vs []T) []float32 {
	if len(vs) == 0 {
		return []float32{}
	}
	return appendAll(make([]float32, 0, len(vs)*vs[0].Tag().Size()), vs)
}

func appendAll[T Flattener](dst []float32, vs []T) []float32 {
	for _, v := range vs {
		dst = v.AppendFloat32(dst)
	}
	return dst
}

// FlattenValues is FlattenSlice for elements of dynamic type.
// All elements must have the same tag.
func FlattenValues(vs []Flattener) ([]float32, error) {
	if len(vs) == 0 {
		return []float32{}, nil
	}
	var tag Tag
	if vs[0] != nil {
		tag = vs[0].Tag()
	}
	for i, v := range vs {
		if v == nil || v.Tag() != tag {
			return nil, fmt.Errorf("flatten: %w: element %d is %s, want %s", ErrTypeMismatch, i, Classify(v), tag)
		}
	}
	return appendAll(make([]float32, 0, len(vs)*tag.Size()), vs), nil
}

// FlattenMat4Into writes m to dst in column-major order without allocating.
// dst is owned by the caller, which may reuse it across frames.
func FlattenMat4Into(dst *[16]float32, m Mat4) {
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			dst[4*j+i] = float32(m[i][j])
		}
	}
}
