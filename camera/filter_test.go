package camera

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seqsense/mvgl/mat"
)

func TestBoxFilter(t *testing.T) {
	f := NewBoxFilter(mat.Vec3{2, 1, 0}, mat.Vec3{2.5, 2, 1})

	testCases := []struct {
		p        mat.Vec3
		expected bool
	}{
		{mat.NewVec3(0, 0, 0), true},
		{mat.NewVec3(2.1, 1.1, 0.1), false},
		{mat.NewVec3(2.4, 1.1, 0.1), false},
		{mat.NewVec3(2.6, 1.1, 0.1), true},
		{mat.NewVec3(2.1, 1.9, 0.1), false},
		{mat.NewVec3(2.1, 2.1, 0.1), true},
		{mat.NewVec3(2.1, 1.1, 0.9), false},
		{mat.NewVec3(2.1, 1.1, 1.1), true},
	}

	for i, tt := range testCases {
		res := f.Filter(tt.p)
		if res != tt.expected {
			t.Errorf(
				"[%d] Filter(%f, %f, %f) is expected to be %v",
				i, tt.p[0], tt.p[1], tt.p[2], tt.expected,
			)
		}
		resInv := f.FilterInv(tt.p)
		if resInv != (!tt.expected) {
			t.Errorf(
				"[%d] FilterInv(%f, %f, %f) is expected to be %v",
				i, tt.p[0], tt.p[1], tt.p[2], !tt.expected,
			)
		}
	}
}

func TestFrustum(t *testing.T) {
	c, err := Load(strings.NewReader(`
eye: [0, 0, 10]
at: [0, 0, 0]
up: [0, 1, 0]
projection: {fovy: 90, aspect: 1, near: 1, far: 20}
`))
	require.NoError(t, err)
	f, err := c.Frustum()
	require.NoError(t, err)

	testCases := []struct {
		p        mat.Vec3
		expected bool
	}{
		{mat.NewVec3(0, 0, 0), true},
		{mat.NewVec3(9, 0, 0), true},
		{mat.NewVec3(11, 0, 0), false},
		{mat.NewVec3(0, -9, 0), true},
		{mat.NewVec3(0, 0, 9.5), false},
		{mat.NewVec3(0, 0, -9.5), true},
		{mat.NewVec3(0, 0, -10.5), false},
		{mat.NewVec3(0, 0, 20), false},
	}
	for i, tt := range testCases {
		if res := f.Contains(tt.p); res != tt.expected {
			t.Errorf("[%d] Contains(%v) is expected to be %v", i, tt.p, tt.expected)
		}
	}
}
