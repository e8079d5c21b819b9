package mat

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func decodeFloats(value *yaml.Node, n int, op string) ([]float64, error) {
	var f []float64
	if err := value.Decode(&f); err != nil {
		return nil, err
	}
	if len(f) != n {
		return nil, fmt.Errorf("%s: line %d: %w: got %d values, want %d", op, value.Line, ErrArity, len(f), n)
	}
	return f, nil
}

func decodeRows(value *yaml.Node, n int, op string) ([][]float64, error) {
	var rows [][]float64
	if err := value.Decode(&rows); err != nil {
		return nil, err
	}
	if len(rows) != n {
		return nil, fmt.Errorf("%s: line %d: %w: got %d rows, want %d", op, value.Line, ErrArity, len(rows), n)
	}
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("%s: line %d: %w: row %d has %d values, want %d", op, value.Line, ErrArity, i, len(r), n)
		}
	}
	return rows, nil
}

func flowSeq(v []float64) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, a := range v {
		c := &yaml.Node{}
		if err := c.Encode(a); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, c)
	}
	return n, nil
}

func rowsSeq(rows ...[]float64) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode}
	for _, r := range rows {
		c, err := flowSeq(r)
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, c)
	}
	return n, nil
}

func (v Vec2) MarshalYAML() (interface{}, error) { return flowSeq(v[:]) }
func (v Vec3) MarshalYAML() (interface{}, error) { return flowSeq(v[:]) }
func (v Vec4) MarshalYAML() (interface{}, error) { return flowSeq(v[:]) }

func (m Mat2) MarshalYAML() (interface{}, error) {
	return rowsSeq(m[0][:], m[1][:])
}

func (m Mat3) MarshalYAML() (interface{}, error) {
	return rowsSeq(m[0][:], m[1][:], m[2][:])
}

func (m Mat4) MarshalYAML() (interface{}, error) {
	return rowsSeq(m[0][:], m[1][:], m[2][:], m[3][:])
}

func (v *Vec2) UnmarshalYAML(value *yaml.Node) error {
	f, err := decodeFloats(value, 2, "vec2")
	if err != nil {
		return err
	}
	copy(v[:], f)
	return nil
}

func (v *Vec3) UnmarshalYAML(value *yaml.Node) error {
	f, err := decodeFloats(value, 3, "vec3")
	if err != nil {
		return err
	}
	copy(v[:], f)
	return nil
}

func (v *Vec4) UnmarshalYAML(value *yaml.Node) error {
	f, err := decodeFloats(value, 4, "vec4")
	if err != nil {
		return err
	}
	copy(v[:], f)
	return nil
}

func (m *Mat2) UnmarshalYAML(value *yaml.Node) error {
	rows, err := decodeRows(value, 2, "mat2")
	if err != nil {
		return err
	}
	for i := range m {
		copy(m[i][:], rows[i])
	}
	return nil
}

func (m *Mat3) UnmarshalYAML(value *yaml.Node) error {
	rows, err := decodeRows(value, 3, "mat3")
	if err != nil {
		return err
	}
	for i := range m {
		copy(m[i][:], rows[i])
	}
	return nil
}

func (m *Mat4) UnmarshalYAML(value *yaml.Node) error {
	rows, err := decodeRows(value, 4, "mat4")
	if err != nil {
		return err
	}
	for i := range m {
		copy(m[i][:], rows[i])
	}
	return nil
}
