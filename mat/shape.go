package mat

// shape is the argument pattern of an overloaded constructor call.
type shape int

const (
	shapeInvalid shape = iota
	shapeEmpty
	shapeScalar        // one Scalar
	shapeVector        // one vector
	shapeMatrix        // one matrix
	shapeFloats        // one Floats
	shapeScalarVector  // Scalar, vector
	shapeVectorScalar  // vector, Scalar
	shapeScalars       // two or more Scalars
	shapeVectors       // two or more vectors
)

func shapeOf(args []Arg) shape {
	switch len(args) {
	case 0:
		return shapeEmpty
	case 1:
		switch args[0].(type) {
		case Scalar:
			return shapeScalar
		case Floats:
			return shapeFloats
		case Vector:
			return shapeVector
		case Matrix:
			return shapeMatrix
		}
		return shapeInvalid
	case 2:
		_, s0 := args[0].(Scalar)
		_, s1 := args[1].(Scalar)
		_, v0 := args[0].(Vector)
		_, v1 := args[1].(Vector)
		switch {
		case s0 && v1:
			return shapeScalarVector
		case v0 && s1:
			return shapeVectorScalar
		}
	}
	if allScalars(args) {
		return shapeScalars
	}
	if allVectors(args) {
		return shapeVectors
	}
	return shapeInvalid
}

func allScalars(args []Arg) bool {
	for _, a := range args {
		if _, ok := a.(Scalar); !ok {
			return false
		}
	}
	return true
}

func allVectors(args []Arg) bool {
	for _, a := range args {
		if _, ok := a.(Vector); !ok {
			return false
		}
	}
	return true
}

func scalars(args []Arg) []float64 {
	out := make([]float64, len(args))
	for i, a := range args {
		out[i] = float64(a.(Scalar))
	}
	return out
}
