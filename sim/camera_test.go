package sim

import (
	"math"
	"testing"

	"github.com/helioviz/orrery/constants"
	"github.com/helioviz/orrery/vmath"
)

// TestDefaultPose verifies the overview framing values
func TestDefaultPose(t *testing.T) {
	p := DefaultPose()
	if p.Distance != 250 || p.Pitch != 30 || p.Yaw != 45 || p.Zoom != 1 {
		t.Errorf("Unexpected default pose: %+v", p)
	}
}

// TestTransitionCompletes verifies a transition reaches the target
// exactly and deactivates after enough ticks
func TestTransitionCompletes(t *testing.T) {
	r := NewRig()
	target := Pose{Distance: 17.5, Pitch: 20, Yaw: 45, Zoom: 1}
	r.BeginTransition(target)

	if !r.Animating() {
		t.Fatal("Expected rig to animate after BeginTransition")
	}

	steps := int(math.Ceil(1.0/constants.AnimationStep)) + 1
	for i := 0; i < steps; i++ {
		r.Tick()
	}

	if r.Animating() {
		t.Errorf("Transition still active after %d ticks", steps)
	}
	if r.Pose != target {
		t.Errorf("Pose did not pin to target: got %+v, want %+v", r.Pose, target)
	}
}

// TestTransitionMonotonic verifies the eased distance approach never
// overshoots or backtracks between the endpoints
func TestTransitionMonotonic(t *testing.T) {
	r := NewRig()
	r.BeginTransition(Pose{Distance: 50, Pitch: 20, Yaw: 45, Zoom: 1})

	prev := r.Pose.Distance
	for i := 0; i < 60; i++ {
		r.Tick()
		if r.Pose.Distance > prev {
			t.Fatalf("Distance increased during shrink transition at tick %d: %v -> %v", i, prev, r.Pose.Distance)
		}
		if r.Pose.Distance < 50 {
			t.Fatalf("Distance overshot target at tick %d: %v", i, r.Pose.Distance)
		}
		prev = r.Pose.Distance
	}
}

// TestTickWithoutTransition verifies an idle rig never drifts
func TestTickWithoutTransition(t *testing.T) {
	r := NewRig()
	before := r.Pose
	for i := 0; i < 10; i++ {
		r.Tick()
	}
	if r.Pose != before {
		t.Errorf("Idle rig drifted: %+v -> %+v", r.Pose, before)
	}
}

// TestDragClampsPitch verifies pitch clamps at ±89 degrees
func TestDragClampsPitch(t *testing.T) {
	r := NewRig()

	r.Drag(0, 100000)
	if r.Pose.Pitch != constants.PitchLimit {
		t.Errorf("Expected pitch clamped to %v, got %v", constants.PitchLimit, r.Pose.Pitch)
	}

	r.Drag(0, -200000)
	if r.Pose.Pitch != -constants.PitchLimit {
		t.Errorf("Expected pitch clamped to %v, got %v", -constants.PitchLimit, r.Pose.Pitch)
	}
}

// TestDragSensitivity verifies 0.5 degrees per unit of pointer motion
func TestDragSensitivity(t *testing.T) {
	r := NewRig()
	startYaw := r.Pose.Yaw

	r.Drag(10, 0)
	if got := r.Pose.Yaw - startYaw; got != 5.0 {
		t.Errorf("Expected yaw delta 5.0 for dx=10, got %v", got)
	}
}

// TestScrollClampsZoom verifies the multiplicative zoom hits its bounds
func TestScrollClampsZoom(t *testing.T) {
	r := NewRig()

	for i := 0; i < 100; i++ {
		r.Scroll(true)
	}
	if r.Pose.Zoom != constants.ZoomMin {
		t.Errorf("Expected zoom floor %v, got %v", constants.ZoomMin, r.Pose.Zoom)
	}

	for i := 0; i < 100; i++ {
		r.Scroll(false)
	}
	if r.Pose.Zoom != constants.ZoomMax {
		t.Errorf("Expected zoom ceiling %v, got %v", constants.ZoomMax, r.Pose.Zoom)
	}
}

// TestResetOrientationKeepsDistance verifies the reset snaps angles and
// zoom but leaves distance alone
func TestResetOrientationKeepsDistance(t *testing.T) {
	r := NewRig()
	r.Pose = Pose{Distance: 123, Pitch: -40, Yaw: 200, Zoom: 3}

	r.ResetOrientation()

	want := Pose{Distance: 123, Pitch: 30, Yaw: 45, Zoom: 1}
	if r.Pose != want {
		t.Errorf("Expected %+v after reset, got %+v", want, r.Pose)
	}
}

// TestEyeMatchesSphericalFormula spot-checks the orbit-camera position
func TestEyeMatchesSphericalFormula(t *testing.T) {
	p := Pose{Distance: 100, Pitch: 0, Yaw: 0, Zoom: 1}
	eye := p.Eye(vmath.Vec3{})

	if math.Abs(eye.X) > 1e-9 || math.Abs(eye.Y) > 1e-9 || math.Abs(eye.Z-100) > 1e-9 {
		t.Errorf("Expected eye (0,0,100) for yaw=0 pitch=0, got %+v", eye)
	}

	p.Pitch = 90
	eye = p.Eye(vmath.Vec3{})
	if math.Abs(eye.Y-100) > 1e-9 {
		t.Errorf("Expected eye straight up at pitch 90, got %+v", eye)
	}
}
