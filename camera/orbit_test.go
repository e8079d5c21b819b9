package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seqsense/mvgl/mat"
)

func TestOrbit_Zoom(t *testing.T) {
	o := NewOrbit()
	o.Zoom(1)
	assert.InDelta(t, 105.1, o.Distance, 1e-9)

	o.Zoom(-1e6)
	assert.Equal(t, 0.0, o.Distance)
	o.Zoom(1e6)
	assert.Equal(t, 1000.0, o.Distance)

	o.Reset()
	assert.Equal(t, 100.0, o.Distance)
	assert.Equal(t, math.Pi/4, o.Pitch)
}

func TestOrbit_Snap(t *testing.T) {
	o := NewOrbit()
	o.Yaw = 1.4
	o.Pitch = 0.9
	o.SnapYaw()
	o.SnapPitch()
	assert.InDelta(t, math.Pi/2, o.Yaw, 1e-12)
	assert.InDelta(t, math.Pi/2, o.Pitch, 1e-12)
}

func TestOrbit_Move(t *testing.T) {
	o := NewOrbit()
	o.Move(0, 1, 0)
	assert.InDelta(t, 1, o.X, 1e-12)
	assert.InDelta(t, 0, o.Y, 1e-12)

	o.Move(1, 0, 0)
	assert.InDelta(t, 1, o.X, 1e-12)
	assert.InDelta(t, -1, o.Y, 1e-12)

	o.Move(0, 0, 3*math.Pi/2)
	assert.InDelta(t, -math.Pi/2, o.Yaw, 1e-12)
}

func TestOrbit_Drag(t *testing.T) {
	o := NewOrbit()

	o.Drag(100, 100)
	assert.Equal(t, *NewOrbit(), *o, "drag without start must be ignored")

	o.DragStart(ButtonRotate)
	o.Drag(50, 10)
	assert.InDelta(t, -1, o.Yaw, 1e-12)
	assert.InDelta(t, math.Pi/4, o.Pitch, 1e-12, "within deadband")

	o.DragEnd(50, -70)
	assert.InDelta(t, math.Pi/4+1, o.Pitch, 1e-12)

	o.Drag(0, 0)
	assert.InDelta(t, -1, o.Yaw, 1e-12, "drag after end must be ignored")

	o.DragStart(ButtonRotate)
	o.DragEnd(0, -1000)
	assert.Equal(t, math.Pi, o.Pitch)

	o.Yaw = 0
	o.DragStart(ButtonTranslate)
	o.DragEnd(10, 20)
	assert.InDelta(t, 1, o.X, 1e-12)
	assert.InDelta(t, -2, o.Y, 1e-12)
}

func TestOrbit_ModelView(t *testing.T) {
	o := NewOrbit()
	o.Pitch = 0
	o.Distance = 10
	o.X, o.Y = 1, 2

	// Looking down from 10 units above the target (-1, -2, 1.5).
	eye := o.Eye()
	assert.InDelta(t, -1, eye[0], 1e-9)
	assert.InDelta(t, -2, eye[1], 1e-9)
	assert.InDelta(t, 11.5, eye[2], 1e-9)

	target := o.ModelView().TransformAffine(mat.Vec3{-1, -2, 1.5})
	assert.InDelta(t, 0, target[0], 1e-9)
	assert.InDelta(t, 0, target[1], 1e-9)
	assert.InDelta(t, -10, target[2], 1e-9)

	o.FPS()
	eye = o.Eye()
	assert.InDelta(t, -1, eye[0], 1e-9)
	assert.InDelta(t, -2, eye[1], 1e-9)
	assert.InDelta(t, 1.5, eye[2], 1e-9)
}

func TestOrbit_Wheel(t *testing.T) {
	o := NewOrbit()
	o.wheel.Now = (&fakeClock{}).Now
	for i := 0; i < 8; i++ {
		o.Wheel(1)
	}
	// Detected as a notched wheel after a few events.
	o.Distance = 100
	assert.True(t, o.Wheel(1))
	assert.InDelta(t, 105.1, o.Distance, 1e-9)
	assert.True(t, o.Wheel(-1))
	assert.InDelta(t, 105.1-(105.1*0.05+0.1), o.Distance, 1e-9)
}

func TestOrbit_Wheel_step(t *testing.T) {
	testCases := map[string]struct {
		delta    float64
		expected float64
	}{
		"Up":   {delta: 100, expected: 100 + maxWheelStep*5.1},
		"Down": {delta: -100, expected: 100 - maxWheelStep*5.1},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			o := NewOrbit()
			o.wheel.Now = (&fakeClock{}).Now
			// A touchpad-like delta normalizes far above one notch.
			o.Wheel(tt.delta)
			assert.InDelta(t, tt.expected, o.Distance, 1e-9)
		})
	}
}
