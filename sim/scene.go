package sim

import (
	"github.com/helioviz/orrery/constants"
	"github.com/helioviz/orrery/vmath"
)

// Unfocused marks the overview state in FocusIndex and Hovered
const Unfocused = -1

// Scene is the explicit owned state struct for the whole simulation:
// body registry, camera rig, focus state and UI-facing toggles
// Accessed only from the single tick-and-event goroutine, no locking
type Scene struct {
	Sun     Body
	Planets []Body

	Camera Rig

	// Speed is the global time multiplier applied to orbital motion
	Speed      float64
	ShowOrbits bool

	// Elapsed accumulates scaled simulation time for local-time display
	Elapsed float64

	// FocusIndex is the focused planet index, or Unfocused
	FocusIndex int

	// Hovered is the planet under the pointer, or Unfocused
	Hovered int

	// Pointer position in cells, for hover queries and tooltip placement
	PointerX, PointerY int

	Gravity GravityDemo
}

// NewScene builds the registry and the default camera
func NewScene() *Scene {
	sun, planets := solarSystem()
	return &Scene{
		Sun:        sun,
		Planets:    planets,
		Camera:     NewRig(),
		Speed:      1.0,
		ShowOrbits: true,
		FocusIndex: Unfocused,
		Hovered:    Unfocused,
	}
}

// Tick advances the simulation by dt seconds: orbital integration,
// camera animation, then the gravity overlay
func (s *Scene) Tick(dt float64) {
	s.advanceBodies(dt)
	s.Camera.Tick()
	s.advanceGravity(dt)
}

// PlanetPosition returns planet i's world position
// Out-of-range indices yield the origin so callers never fail
func (s *Scene) PlanetPosition(i int) vmath.Vec3 {
	if i < 0 || i >= len(s.Planets) {
		return vmath.Vec3{}
	}
	return s.Planets[i].Position()
}

// LookAt is the camera target: the focused planet, else the system center
func (s *Scene) LookAt() vmath.Vec3 {
	if s.Focused() {
		return s.PlanetPosition(s.FocusIndex)
	}
	return vmath.Vec3{}
}

// CameraEye is the current world-space camera position
func (s *Scene) CameraEye() vmath.Vec3 {
	return s.Camera.Pose.Eye(s.LookAt())
}

// AdjustSpeed nudges the global speed multiplier, floored at the minimum
func (s *Scene) AdjustSpeed(delta float64) {
	s.Speed += delta
	if s.Speed < constants.SpeedMin {
		s.Speed = constants.SpeedMin
	}
}

// ToggleOrbits flips orbit-path visibility
func (s *Scene) ToggleOrbits() {
	s.ShowOrbits = !s.ShowOrbits
}
