package mat

import (
	"errors"
	"fmt"
)

var (
	// ErrArity is returned when an operation gets an unsupported number of arguments.
	ErrArity = errors.New("wrong number of arguments")
	// ErrTypeMismatch is returned when an operand is not a library value
	// or its kind or dimension does not fit the operation.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrDegenerate is returned for zero-measure input such as an empty projection box.
	ErrDegenerate = errors.New("degenerate input")
	// ErrSingular is returned by InverseChecked for a matrix with no inverse.
	ErrSingular = fmt.Errorf("singular matrix: %w", ErrDegenerate)
)

func tagsOf(args []Arg) []string {
	s := make([]string, len(args))
	for i, a := range args {
		switch a := a.(type) {
		case Floats:
			s[i] = fmt.Sprintf("floats(%d)", len(a))
		default:
			s[i] = Classify(a).String()
		}
	}
	return s
}

// argError builds the error of an overloaded constructor.
// Argument counts listed in accepted fail as a type mismatch,
// any other count as an arity error.
func argError(op string, args []Arg, accepted ...int) error {
	for _, n := range accepted {
		if len(args) == n {
			return fmt.Errorf("%s: %w: got %v", op, ErrTypeMismatch, tagsOf(args))
		}
	}
	return fmt.Errorf("%s: %w: got %d, want one of %v", op, ErrArity, len(args), accepted)
}

func mismatch(op string, a, b Value) error {
	return fmt.Errorf("%s: %w: %s and %s", op, ErrTypeMismatch, Classify(a), Classify(b))
}
