package vmath

import "math"

// Terminal cells are roughly twice as tall as they are wide
// CellAspect converts row units into cell-width units
const CellAspect = 0.5

// Camera projection constants
const (
	// FovDegrees is the vertical field of view
	FovDegrees = 45.0

	// NearPlane rejects points at or behind the eye
	NearPlane = 1.0
)

// Camera is a view+projection snapshot for one frame
// Built fresh from the current pose, consumed by renderers and hit-testing
type Camera struct {
	Eye     Vec3
	Right   Vec3
	Up      Vec3
	Forward Vec3

	Width  int
	Height int

	fovScale float64
	aspect   float64
}

// NewCamera builds a look-at camera for a width×height cell grid
func NewCamera(eye, target Vec3, width, height int) Camera {
	forward := V3Normalize(V3Sub(target, eye))
	if forward == (Vec3{}) {
		forward = Vec3{Z: -1}
	}
	worldUp := Vec3{Y: 1}
	right := V3Normalize(V3Cross(forward, worldUp))
	if right == (Vec3{}) {
		// Looking straight up or down
		right = Vec3{X: 1}
	}
	up := V3Cross(right, forward)

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	return Camera{
		Eye:      eye,
		Right:    right,
		Up:       up,
		Forward:  forward,
		Width:    width,
		Height:   height,
		fovScale: 1.0 / math.Tan(Deg2Rad(FovDegrees)/2.0),
		aspect:   float64(width) * CellAspect / float64(height),
	}
}

// Project maps a world point to fractional cell coordinates
// Returns the view-space depth for painter ordering
// ok is false for points at or behind the near plane
func (c *Camera) Project(p Vec3) (sx, sy, depth float64, ok bool) {
	rel := V3Sub(p, c.Eye)
	cz := V3Dot(rel, c.Forward)
	if cz < NearPlane {
		return 0, 0, 0, false
	}
	cx := V3Dot(rel, c.Right)
	cy := V3Dot(rel, c.Up)

	ndcX := cx / cz * c.fovScale / c.aspect
	ndcY := cy / cz * c.fovScale

	sx = (ndcX + 1.0) / 2.0 * float64(c.Width)
	sy = (1.0 - ndcY) / 2.0 * float64(c.Height)
	return sx, sy, cz, true
}

// RadiusCells returns the apparent horizontal extent in cell-width units
// of a sphere of the given world radius at the given view depth
// The vertical extent in rows is this value times CellAspect
func (c *Camera) RadiusCells(worldRadius, depth float64) float64 {
	if depth < NearPlane {
		return 0
	}
	return worldRadius / depth * c.fovScale * float64(c.Height) / 2.0 / CellAspect
}

// ScreenDist returns the distance between two cell coordinates in
// cell-width units, correcting for the cell aspect ratio
func ScreenDist(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := (ay - by) / CellAspect
	return math.Sqrt(dx*dx + dy*dy)
}
