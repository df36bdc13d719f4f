package sim

import (
	"testing"

	"github.com/helioviz/orrery/vmath"
)

// flatProject maps world X/Z straight to screen coordinates so tests can
// reason about distances without a real camera
func flatProject(p vmath.Vec3) (float64, float64, float64, bool) {
	return p.X, p.Z, 10.0, true
}

// TestHitTestExact verifies a query on a planet's projection returns it
func TestHitTestExact(t *testing.T) {
	s := NewScene()
	earth := s.Planets[earthIndex]

	// All angles start at 0, so Earth projects to (orbitRadius, 0)
	got := s.HitTest(earth.OrbitRadius, 0, flatProject, 2.0)
	if got != earthIndex {
		t.Errorf("Expected hit on planet %d, got %d", earthIndex, got)
	}
}

// TestHitTestMiss verifies empty space returns no hit
func TestHitTestMiss(t *testing.T) {
	s := NewScene()

	if got := s.HitTest(5000, 5000, flatProject, 2.0); got != Unfocused {
		t.Errorf("Expected no hit in empty space, got %d", got)
	}
}

// TestHitTestFirstMatch verifies registry order breaks threshold ties
func TestHitTestFirstMatch(t *testing.T) {
	s := NewScene()

	// Midpoint between Mercury (40) and Venus (55): both within a wide
	// threshold, Mercury wins as the earlier registry entry
	if got := s.HitTest(47.5, 0, flatProject, 10.0); got != 0 {
		t.Errorf("Expected first-match Mercury (0), got %d", got)
	}
}

// TestHitTestSkipsUnprojectable verifies bodies behind the camera are
// never hit
func TestHitTestSkipsUnprojectable(t *testing.T) {
	s := NewScene()

	never := func(p vmath.Vec3) (float64, float64, float64, bool) {
		return 0, 0, 0, false
	}
	if got := s.HitTest(0, 0, never, 1000); got != Unfocused {
		t.Errorf("Expected no hit when nothing projects, got %d", got)
	}
}
