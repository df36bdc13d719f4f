package sim

import (
	"math"
	"testing"

	"github.com/helioviz/orrery/constants"
)

// TestFocusOnStartsTransition verifies the focus state change and the
// inspection-pose camera target
func TestFocusOnStartsTransition(t *testing.T) {
	s := NewScene()

	if !s.FocusOn(earthIndex) {
		t.Fatal("FocusOn(Earth) failed")
	}
	if !s.Focused() || s.FocusIndex != earthIndex {
		t.Errorf("Expected focus on planet %d, got %d", earthIndex, s.FocusIndex)
	}
	if !s.Camera.Animating() {
		t.Error("Expected camera transition after FocusOn")
	}
	if s.Hovered != Unfocused {
		t.Error("Hover should clear on focus")
	}

	// Run the transition to completion and check the inspection pose
	for i := 0; i < 60; i++ {
		s.Camera.Tick()
	}

	earth := &s.Planets[earthIndex]
	wantDist := earth.Radius * constants.FocusDistanceScale
	if wantDist < constants.FocusDistanceMin {
		wantDist = constants.FocusDistanceMin
	}
	want := Pose{Distance: wantDist, Pitch: 20, Yaw: 45, Zoom: 1}
	if s.Camera.Pose != want {
		t.Errorf("Expected inspection pose %+v, got %+v", want, s.Camera.Pose)
	}
}

// TestFocusDistanceFloor verifies small bodies get the minimum distance
func TestFocusDistanceFloor(t *testing.T) {
	s := NewScene()

	// Mercury: radius 3.0, 3.0*3.5 = 10.5 < 15
	if !s.FocusOn(0) {
		t.Fatal("FocusOn(Mercury) failed")
	}
	for i := 0; i < 60; i++ {
		s.Camera.Tick()
	}
	if s.Camera.Pose.Distance != constants.FocusDistanceMin {
		t.Errorf("Expected distance floor %v for Mercury, got %v",
			constants.FocusDistanceMin, s.Camera.Pose.Distance)
	}
}

// TestFocusOnRejectsWhileFocused verifies clicks during focus are ignored
func TestFocusOnRejectsWhileFocused(t *testing.T) {
	s := NewScene()
	s.FocusOn(earthIndex)

	if s.FocusOn(3) {
		t.Error("FocusOn should reject a new target while focused")
	}
	if s.FocusIndex != earthIndex {
		t.Errorf("Focus target changed to %d", s.FocusIndex)
	}
}

// TestFocusOnRejectsBadIndex verifies out-of-range indices are refused
func TestFocusOnRejectsBadIndex(t *testing.T) {
	s := NewScene()

	for _, i := range []int{-1, len(s.Planets), 99} {
		if s.FocusOn(i) {
			t.Errorf("FocusOn(%d) should fail", i)
		}
		if s.Focused() {
			t.Fatalf("Scene focused after rejected FocusOn(%d)", i)
		}
	}
}

// TestReturnToOverview verifies the glide back to the default pose
func TestReturnToOverview(t *testing.T) {
	s := NewScene()
	s.FocusOn(earthIndex)
	for i := 0; i < 60; i++ {
		s.Camera.Tick()
	}

	if !s.ReturnToOverview() {
		t.Fatal("ReturnToOverview failed while focused")
	}
	if s.Focused() {
		t.Error("Scene still focused after ReturnToOverview")
	}

	for i := 0; i < 60; i++ {
		s.Camera.Tick()
	}
	if s.Camera.Pose != DefaultPose() {
		t.Errorf("Expected default pose after return, got %+v", s.Camera.Pose)
	}

	if s.ReturnToOverview() {
		t.Error("ReturnToOverview should fail when already in overview")
	}
}

// TestToggleGravity verifies the demo flag, the drop-height reset and
// the focused-only restriction
func TestToggleGravity(t *testing.T) {
	s := NewScene()

	if s.ToggleGravity() {
		t.Error("ToggleGravity should fail while unfocused")
	}

	s.FocusOn(earthIndex)
	earth := &s.Planets[earthIndex]

	if !s.ToggleGravity() {
		t.Fatal("ToggleGravity failed while focused")
	}
	wantHeight := earth.Radius + constants.GravityDropHeight
	if s.Gravity.Height != wantHeight || s.Gravity.Velocity != 0 {
		t.Errorf("Expected ball at height %v with zero velocity, got %v / %v",
			wantHeight, s.Gravity.Height, s.Gravity.Velocity)
	}

	if s.ToggleGravity() {
		t.Error("Second toggle should disable the demo")
	}
}

// TestGravityStep verifies one damped integration step
func TestGravityStep(t *testing.T) {
	s := NewScene()
	s.FocusOn(earthIndex)
	s.ToggleGravity()
	earth := &s.Planets[earthIndex]

	h0 := s.Gravity.Height
	s.Tick(0.016)

	wantV := -earth.Gravity * 0.016 * constants.GravityDamping
	if math.Abs(s.Gravity.Velocity-wantV) > 1e-12 {
		t.Errorf("Expected velocity %v after one step, got %v", wantV, s.Gravity.Velocity)
	}
	if math.Abs(s.Gravity.Height-(h0+wantV)) > 1e-12 {
		t.Errorf("Expected height %v after one step, got %v", h0+wantV, s.Gravity.Height)
	}
}

// TestGravityImpactResets verifies the ball resets at the surface
func TestGravityImpactResets(t *testing.T) {
	s := NewScene()
	s.FocusOn(earthIndex)
	s.ToggleGravity()
	earth := &s.Planets[earthIndex]

	// Drive the ball into the surface
	s.Gravity.Height = earth.Radius + 0.001
	s.Gravity.Velocity = -1.0
	s.Tick(0.016)

	wantHeight := earth.Radius + constants.GravityDropHeight
	if s.Gravity.Height != wantHeight || s.Gravity.Velocity != 0 {
		t.Errorf("Expected reset to height %v, got %v / velocity %v",
			wantHeight, s.Gravity.Height, s.Gravity.Velocity)
	}
}

// TestFocusDisablesGravity verifies a fresh focus clears a stale demo
func TestFocusDisablesGravity(t *testing.T) {
	s := NewScene()
	s.FocusOn(earthIndex)
	s.ToggleGravity()
	s.ReturnToOverview()

	if s.Gravity.Enabled {
		t.Error("Gravity demo survived ReturnToOverview")
	}

	s.FocusOn(3)
	if s.Gravity.Enabled {
		t.Error("Gravity demo enabled on fresh focus")
	}
}
