package sim

import "github.com/helioviz/orrery/constants"

// GravityDemo is the focused-body free-fall overlay: a ball dropped from
// above the surface, artificially damped, reset to the drop height on
// impact. Illustrative only, not projectile physics.
type GravityDemo struct {
	Enabled  bool
	Height   float64
	Velocity float64
}

// Focused reports whether a planet is currently focused
func (s *Scene) Focused() bool {
	return s.FocusIndex >= 0 && s.FocusIndex < len(s.Planets)
}

// FocusedBody returns the focused planet, or nil
func (s *Scene) FocusedBody() *Body {
	if !s.Focused() {
		return nil
	}
	return &s.Planets[s.FocusIndex]
}

// FocusOn transitions Unfocused → Focused(i) and starts the camera glide
// toward the inspection pose. Clicks while already focused are ignored;
// only the unfocused state accepts new focus targets.
func (s *Scene) FocusOn(i int) bool {
	if s.Focused() {
		return false
	}
	if i < 0 || i >= len(s.Planets) {
		return false
	}

	p := &s.Planets[i]
	distance := p.Radius * constants.FocusDistanceScale
	if distance < constants.FocusDistanceMin {
		distance = constants.FocusDistanceMin
	}

	s.FocusIndex = i
	s.Hovered = Unfocused
	s.Gravity.Enabled = false
	s.resetGravityBall(p.Radius)

	s.Camera.BeginTransition(Pose{
		Distance: distance,
		Pitch:    constants.FocusPitch,
		Yaw:      constants.FocusYaw,
		Zoom:     constants.FocusZoom,
	})
	return true
}

// ReturnToOverview transitions Focused(i) → Unfocused, gliding the camera
// back to the default pose
func (s *Scene) ReturnToOverview() bool {
	if !s.Focused() {
		return false
	}

	s.FocusIndex = Unfocused
	s.Gravity.Enabled = false
	s.Camera.BeginTransition(DefaultPose())
	return true
}

// ToggleGravity flips the free-fall overlay; focused state only
// This is a sub-state flag, not a focus transition
func (s *Scene) ToggleGravity() bool {
	p := s.FocusedBody()
	if p == nil {
		return false
	}

	s.Gravity.Enabled = !s.Gravity.Enabled
	if s.Gravity.Enabled {
		s.resetGravityBall(p.Radius)
	}
	return s.Gravity.Enabled
}

func (s *Scene) resetGravityBall(surfaceRadius float64) {
	s.Gravity.Height = surfaceRadius + constants.GravityDropHeight
	s.Gravity.Velocity = 0
}

// advanceGravity steps the demo ball while enabled and focused
// Impact resets the ball to the drop height rather than bouncing
func (s *Scene) advanceGravity(dt float64) {
	p := s.FocusedBody()
	if p == nil || !s.Gravity.Enabled {
		return
	}

	s.Gravity.Velocity -= p.Gravity * dt * constants.GravityDamping
	s.Gravity.Height += s.Gravity.Velocity

	if s.Gravity.Height <= p.Radius {
		s.resetGravityBall(p.Radius)
	}
}
