package render

import (
	"github.com/helioviz/orrery/constants"
	"github.com/helioviz/orrery/sim"
	"github.com/helioviz/orrery/vmath"
)

// Context is the per-frame view snapshot handed to every renderer
// It carries the camera built from the current pose; its Project method
// is also the projection provider consumed by hit-testing
type Context struct {
	Scene  *sim.Scene
	Cam    vmath.Camera
	Width  int
	Height int
}

// NewContext snapshots the scene's camera for a width×height cell grid
func NewContext(scene *sim.Scene, width, height int) Context {
	cam := vmath.NewCamera(scene.CameraEye(), scene.LookAt(), width, height)
	return Context{
		Scene:  scene,
		Cam:    cam,
		Width:  width,
		Height: height,
	}
}

// Project maps a world point to fractional cell coordinates
// Satisfies sim.ProjectFunc
func (c *Context) Project(p vmath.Vec3) (sx, sy, depth float64, ok bool) {
	return c.Cam.Project(p)
}

// HitThreshold is the hit-test radius in cell-width units for this frame
func (c *Context) HitThreshold() float64 {
	t := float64(c.Width) * constants.HitRadiusFrac
	if t < constants.HitRadiusMin {
		t = constants.HitRadiusMin
	}
	return t
}
