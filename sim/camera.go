package sim

import (
	"math"

	"github.com/helioviz/orrery/constants"
	"github.com/helioviz/orrery/vmath"
)

// Pose holds the spherical-coordinate camera parameters
// Pitch and Yaw are degrees; Distance is scene units
type Pose struct {
	Distance float64
	Pitch    float64
	Yaw      float64
	Zoom     float64
}

// DefaultPose is the canonical overview framing
func DefaultPose() Pose {
	return Pose{
		Distance: constants.DefaultCameraDistance,
		Pitch:    constants.DefaultCameraPitch,
		Yaw:      constants.DefaultCameraYaw,
		Zoom:     constants.DefaultCameraZoom,
	}
}

// Rig owns the current camera pose and the in-flight transition, if any
// All four pose components blend independently through the same ease curve
type Rig struct {
	Pose Pose

	start    Pose
	target   Pose
	progress float64
	active   bool
}

// NewRig starts at the overview pose with no animation
func NewRig() Rig {
	return Rig{Pose: DefaultPose()}
}

// BeginTransition captures the current pose as the start and activates
// the animation toward target
func (r *Rig) BeginTransition(target Pose) {
	r.start = r.Pose
	r.target = target
	r.progress = 0
	r.active = true
}

// Tick advances an active transition by one fixed step
// At completion the pose pins exactly to the target
func (r *Rig) Tick() {
	if !r.active {
		return
	}

	r.progress += constants.AnimationStep
	if r.progress >= 1.0 {
		r.progress = 1.0
		r.Pose = r.target
		r.active = false
		return
	}

	t := vmath.SmoothStep(r.progress)
	r.Pose = Pose{
		Distance: vmath.Lerp(r.start.Distance, r.target.Distance, t),
		Pitch:    vmath.Lerp(r.start.Pitch, r.target.Pitch, t),
		Yaw:      vmath.Lerp(r.start.Yaw, r.target.Yaw, t),
		Zoom:     vmath.Lerp(r.start.Zoom, r.target.Zoom, t),
	}
}

// Animating reports whether a transition is in flight
func (r *Rig) Animating() bool {
	return r.active
}

// Drag applies pointer-drag rotation deltas in cells
func (r *Rig) Drag(dx, dy float64) {
	r.Pose.Yaw += dx * constants.DragSensitivity
	r.Pose.Pitch = vmath.Clamp(
		r.Pose.Pitch+dy*constants.DragSensitivity,
		-constants.PitchLimit, constants.PitchLimit,
	)
}

// Scroll applies one wheel notch of zoom
func (r *Rig) Scroll(zoomIn bool) {
	if zoomIn {
		r.Pose.Zoom *= constants.ZoomInFactor
	} else {
		r.Pose.Zoom *= constants.ZoomOutFactor
	}
	r.Pose.Zoom = vmath.Clamp(r.Pose.Zoom, constants.ZoomMin, constants.ZoomMax)
}

// ResetOrientation snaps pitch, yaw and zoom back to the overview values
// without animating; distance is left alone
func (r *Rig) ResetOrientation() {
	r.Pose.Pitch = constants.DefaultCameraPitch
	r.Pose.Yaw = constants.DefaultCameraYaw
	r.Pose.Zoom = constants.DefaultCameraZoom
}

// Eye returns the camera position orbiting the given look-at point
func (p Pose) Eye(lookAt vmath.Vec3) vmath.Vec3 {
	d := p.Distance * p.Zoom
	yaw := vmath.Deg2Rad(p.Yaw)
	pitch := vmath.Deg2Rad(p.Pitch)
	return vmath.Vec3{
		X: lookAt.X + d*math.Sin(yaw)*math.Cos(pitch),
		Y: lookAt.Y + d*math.Sin(pitch),
		Z: lookAt.Z + d*math.Cos(yaw)*math.Cos(pitch),
	}
}
