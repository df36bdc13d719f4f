package vmath

import (
	"math"
	"testing"
)

// TestProjectCenter verifies the look-at point lands at screen center
func TestProjectCenter(t *testing.T) {
	cam := NewCamera(Vec3{Z: 100}, Vec3{}, 120, 40)

	sx, sy, depth, ok := cam.Project(Vec3{})
	if !ok {
		t.Fatal("Look-at point failed to project")
	}
	if math.Abs(sx-60) > 1e-9 || math.Abs(sy-20) > 1e-9 {
		t.Errorf("Expected screen center (60, 20), got (%v, %v)", sx, sy)
	}
	if math.Abs(depth-100) > 1e-9 {
		t.Errorf("Expected depth 100, got %v", depth)
	}
}

// TestProjectBehindCamera verifies near-plane rejection
func TestProjectBehindCamera(t *testing.T) {
	cam := NewCamera(Vec3{Z: 100}, Vec3{}, 120, 40)

	if _, _, _, ok := cam.Project(Vec3{Z: 200}); ok {
		t.Error("Point behind the camera should not project")
	}
	if _, _, _, ok := cam.Project(Vec3{Z: 100}); ok {
		t.Error("Point at the eye should not project")
	}
}

// TestProjectOffsetDirection verifies world up maps toward smaller row
// numbers and camera-right toward larger columns
func TestProjectOffsetDirection(t *testing.T) {
	cam := NewCamera(Vec3{Z: 100}, Vec3{}, 120, 40)

	_, upY, _, ok := cam.Project(Vec3{Y: 10})
	if !ok || upY >= 20 {
		t.Errorf("World up should project above center, got row %v", upY)
	}

	// right = forward × worldUp = (0,0,-1)×(0,1,0) = (1,0,0)
	rightX, _, _, ok := cam.Project(Vec3{X: 10})
	if !ok || rightX <= 60 {
		t.Errorf("World +X should project right of center, got column %v", rightX)
	}
}

// TestProjectDepthScaling verifies farther points shrink toward center
func TestProjectDepthScaling(t *testing.T) {
	cam := NewCamera(Vec3{Z: 100}, Vec3{}, 120, 40)

	nearX, _, _, _ := cam.Project(Vec3{X: 10, Z: 50})
	farX, _, _, _ := cam.Project(Vec3{X: 10, Z: -50})

	if (nearX-60) <= (farX-60) {
		t.Errorf("Near offset %v should exceed far offset %v", nearX-60, farX-60)
	}
}

// TestDegenerateLookAt verifies the fallback bases never collapse
func TestDegenerateLookAt(t *testing.T) {
	// Eye coincides with target
	cam := NewCamera(Vec3{}, Vec3{}, 80, 24)
	if cam.Forward == (Vec3{}) || cam.Right == (Vec3{}) {
		t.Error("Coincident eye/target produced a degenerate basis")
	}

	// Looking straight down
	cam = NewCamera(Vec3{Y: 100}, Vec3{}, 80, 24)
	if cam.Right == (Vec3{}) {
		t.Error("Vertical view produced a degenerate right vector")
	}
}

// TestRadiusCells verifies apparent size shrinks with depth
func TestRadiusCells(t *testing.T) {
	cam := NewCamera(Vec3{Z: 100}, Vec3{}, 120, 40)

	near := cam.RadiusCells(5, 50)
	far := cam.RadiusCells(5, 200)
	if near <= far {
		t.Errorf("Near radius %v should exceed far radius %v", near, far)
	}
	if cam.RadiusCells(5, 0.5) != 0 {
		t.Error("Radius inside the near plane should be zero")
	}
}

// TestScreenDist verifies the cell aspect correction: one row counts as
// two cell widths
func TestScreenDist(t *testing.T) {
	if got := ScreenDist(0, 0, 3, 0); got != 3 {
		t.Errorf("Horizontal distance = %v, want 3", got)
	}
	if got := ScreenDist(0, 0, 0, 2); got != 4 {
		t.Errorf("Vertical distance = %v, want 4 (aspect corrected)", got)
	}
	if got := ScreenDist(0, 0, 3, 2); math.Abs(got-5) > 1e-12 {
		t.Errorf("Diagonal distance = %v, want 5", got)
	}
}
