package camera

import (
	"math"

	"github.com/seqsense/mvgl/mat"
)

const (
	defaultDistance = 100.0
	defaultPitch    = math.Pi / 4
	maxDistance     = 1000.0

	// Drag distance in pixels ignored on the pitch axis, so that a
	// horizontal drag does not tilt the view.
	yDeadband = 20

	rotateGain    = 0.02
	translateGain = 0.1

	// Largest zoom step of a single wheel event.
	maxWheelStep = 5.0
)

// Button is the mouse button which started a drag.
type Button int

const (
	ButtonRotate Button = iota
	ButtonTranslate
)

// Orbit is a camera orbiting a target point on the z=0 plane.
// Angles are in radians. Orbit is not safe for concurrent use.
type Orbit struct {
	X, Y       float64
	Yaw, Pitch float64
	Distance   float64

	// Offset applied along the view x axis, e.g. for stereo rendering.
	OffsetX float64

	x0, y0, yaw0, pitch0 float64
	dragButton           Button
	dragging             bool

	wheel WheelNormalizer
}

func NewOrbit() *Orbit {
	return &Orbit{
		Distance: defaultDistance,
		Pitch:    defaultPitch,
	}
}

func (o *Orbit) Reset() {
	o.Distance = defaultDistance
	o.Pitch = defaultPitch
}

// FPS moves the camera to the target looking horizontally.
func (o *Orbit) FPS() {
	o.Distance = 0
	o.Pitch = math.Pi / 2
}

func (o *Orbit) SnapYaw() {
	o.Yaw = math.Round(o.Yaw/(math.Pi/2)) * (math.Pi / 2)
}

func (o *Orbit) SnapPitch() {
	o.Pitch = math.Round(o.Pitch/(math.Pi/2)) * (math.Pi / 2)
}

// Zoom changes the distance proportionally to the current distance.
// The distance is clamped to [0, 1000].
func (o *Orbit) Zoom(d float64) {
	o.Distance += d * (o.Distance*0.05 + 0.1)
	if o.Distance < 0 {
		o.Distance = 0
	} else if o.Distance > maxDistance {
		o.Distance = maxDistance
	}
}

// Wheel zooms by a raw wheel delta normalized across input devices.
// A single event zooms by at most maxWheelStep.
// It returns false while the device type is still being detected.
func (o *Orbit) Wheel(delta float64) bool {
	d, ok := o.wheel.Normalize(delta)
	if d > maxWheelStep {
		d = maxWheelStep
	} else if d < -maxWheelStep {
		d = -maxWheelStep
	}
	o.Zoom(d)
	return ok
}

// Move translates the target in the camera frame and rotates by dyaw.
func (o *Orbit) Move(dx, dy, dyaw float64) {
	s, c := math.Sincos(o.Yaw)
	o.X += c*dy + s*dx
	o.Y += s*dy - c*dx
	o.Yaw += dyaw
	o.Yaw = math.Remainder(o.Yaw, 2*math.Pi)
}

func (o *Orbit) DragStart(b Button) {
	o.dragButton = b
	o.dragging = true
	o.yaw0 = o.Yaw
	o.pitch0 = o.Pitch
	o.x0 = o.X
	o.y0 = o.Y
}

// Drag updates the view by the pointer displacement in pixels
// since DragStart.
func (o *Orbit) Drag(dx, dy float64) {
	if !o.dragging {
		return
	}
	switch o.dragButton {
	case ButtonRotate:
		o.Yaw = o.yaw0 - rotateGain*dx
		if dy < -yDeadband {
			dy += yDeadband
		} else if dy > yDeadband {
			dy -= yDeadband
		} else {
			dy = 0
		}
		o.Pitch = o.pitch0 - rotateGain*dy
		if o.Pitch < 0 {
			o.Pitch = 0
		} else if o.Pitch > math.Pi {
			o.Pitch = math.Pi
		}
	case ButtonTranslate:
		s, c := math.Sincos(o.Yaw)
		o.X = o.x0 + translateGain*(dx*c+dy*s)
		o.Y = o.y0 + translateGain*(dx*s-dy*c)
	}
}

func (o *Orbit) DragEnd(dx, dy float64) {
	if !o.dragging {
		return
	}
	o.Drag(dx, dy)
	o.dragging = false
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ModelView returns the model-view matrix of the current view.
func (o *Orbit) ModelView() mat.Mat4 {
	return mat.Translate(o.OffsetX, 0, -o.Distance).
		Mul(mat.RotateX(degrees(o.Pitch))).
		Mul(mat.RotateZ(degrees(o.Yaw))).
		Mul(mat.Translate(o.X, o.Y, -1.5))
}

// Eye returns the camera position in world coordinates.
func (o *Orbit) Eye() mat.Vec3 {
	return o.ModelView().Inv().TransformAffine(mat.Vec3{})
}
