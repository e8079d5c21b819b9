// Package mat provides 2, 3 and 4 dimensional vectors and square matrices
// with the transformation helpers needed to drive a WebGL style pipeline.
//
// Matrices are stored row-major. Flatten transposes them, so the float32
// output is column-major and can be uploaded to GPU uniforms directly.
package mat

import (
	"strconv"
)

// Kind is the kind of a library value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindScalar
	KindVector
	KindMatrix
)

// Tag identifies the kind and dimension of a value.
// Two values with the same tag have the same shape.
type Tag struct {
	Kind Kind
	Dim  int
}

func (t Tag) String() string {
	switch t.Kind {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vec" + strconv.Itoa(t.Dim)
	case KindMatrix:
		return "mat" + strconv.Itoa(t.Dim)
	}
	return "invalid"
}

// Valid reports whether t is a tag of a library value.
func (t Tag) Valid() bool {
	return t.Kind != KindInvalid
}

// Arg is an argument of the overloaded constructors
// (Vec2Of, Mat4Of and so on).
type Arg interface {
	isArg()
}

// Value is one of Scalar, Vec2, Vec3, Vec4, Mat2, Mat3 and Mat4.
type Value interface {
	Arg
	Tag() Tag
}

// Vector is one of Vec2, Vec3 and Vec4.
type Vector interface {
	Value
	Flattener
	isVector()
}

// Matrix is one of Mat2, Mat3 and Mat4.
type Matrix interface {
	Value
	Flattener
	isMatrix()
}

// Scalar is a plain number accepted by the dispatching operations.
type Scalar float64

// Floats is a flat sequence of numbers, used to fill a vector or matrix.
type Floats []float64

func (Scalar) isArg() {}
func (Floats) isArg() {}
func (Vec2) isArg()   {}
func (Vec3) isArg()   {}
func (Vec4) isArg()   {}
func (Mat2) isArg()   {}
func (Mat3) isArg()   {}
func (Mat4) isArg()   {}

func (Vec2) isVector() {}
func (Vec3) isVector() {}
func (Vec4) isVector() {}
func (Mat2) isMatrix() {}
func (Mat3) isMatrix() {}
func (Mat4) isMatrix() {}

func (Scalar) Tag() Tag { return Tag{Kind: KindScalar} }
func (Vec2) Tag() Tag   { return Tag{Kind: KindVector, Dim: 2} }
func (Vec3) Tag() Tag   { return Tag{Kind: KindVector, Dim: 3} }
func (Vec4) Tag() Tag   { return Tag{Kind: KindVector, Dim: 4} }
func (Mat2) Tag() Tag   { return Tag{Kind: KindMatrix, Dim: 2} }
func (Mat3) Tag() Tag   { return Tag{Kind: KindMatrix, Dim: 3} }
func (Mat4) Tag() Tag   { return Tag{Kind: KindMatrix, Dim: 4} }

// Classify returns the tag of v.
// Anything that is not a library value, including nil, gets the zero Tag.
func Classify(v interface{}) Tag {
	if t, ok := v.(Value); ok {
		return t.Tag()
	}
	return Tag{}
}

// IsVector reports whether v is a Vec2, Vec3 or Vec4.
func IsVector(v interface{}) bool {
	return Classify(v).Kind == KindVector
}

// IsMatrix reports whether v is a Mat2, Mat3 or Mat4.
func IsMatrix(v interface{}) bool {
	return Classify(v).Kind == KindMatrix
}
