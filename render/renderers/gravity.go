package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/helioviz/orrery/constants"
	"github.com/helioviz/orrery/render"
	"github.com/helioviz/orrery/sim"
	"github.com/helioviz/orrery/vmath"
)

// Ball placement beside the focused body
const (
	ballOffset      = 5.0
	ballRadius      = 0.5
	groundNear      = 3.0
	groundFar       = 7.0
	groundHalfWidth = 2.0
)

// GravityRenderer draws the free-fall demo beside the focused body:
// a falling ball and two ground reference lines at the surface plane
type GravityRenderer struct {
	scene *sim.Scene
}

// NewGravityRenderer creates the gravity demo renderer
func NewGravityRenderer(scene *sim.Scene) *GravityRenderer {
	return &GravityRenderer{scene: scene}
}

// IsVisible requires focus and the demo toggle
func (r *GravityRenderer) IsVisible() bool {
	return r.scene.Focused() && r.scene.Gravity.Enabled
}

// Render implements render.SystemRenderer
func (r *GravityRenderer) Render(ctx render.Context, buf *render.Buffer) {
	p := r.scene.FocusedBody()
	if p == nil {
		return
	}

	center := p.Position()
	scale := constants.FocusRenderScale

	// Ground reference lines flanking the drop column
	markStyle := tcell.StyleDefault.Foreground(render.RgbGroundMark).Background(render.Background)
	for _, z := range []float64{-groundHalfWidth, groundHalfWidth} {
		for t := 0.0; t <= 1.0; t += 0.1 {
			x := p.Radius + groundNear + (groundFar-groundNear)*t
			point := vmath.Vec3{
				X: center.X + x*scale,
				Y: 0,
				Z: center.Z + z*scale,
			}
			sx, sy, _, ok := ctx.Project(point)
			if !ok {
				continue
			}
			buf.Set(int(sx), int(sy), '─', markStyle)
		}
	}

	// Falling ball
	ballPos := vmath.Vec3{
		X: center.X + (p.Radius+ballOffset)*scale,
		Y: r.scene.Gravity.Height * scale,
		Z: center.Z,
	}
	sx, sy, depth, ok := ctx.Project(ballPos)
	if !ok {
		return
	}

	rx := ctx.Cam.RadiusCells(ballRadius*scale, depth)
	cx, cy := int(math.Round(sx)), int(math.Round(sy))
	ballStyle := tcell.StyleDefault.Foreground(render.RgbGravityBall).Background(render.Background)

	if rx < 0.5 {
		buf.Set(cx, cy, '•', ballStyle)
		return
	}

	ry := rx * vmath.CellAspect
	for dy := -int(math.Ceil(ry)); dy <= int(math.Ceil(ry)); dy++ {
		for dx := -int(math.Ceil(rx)); dx <= int(math.Ceil(rx)); dx++ {
			nx := float64(dx) / rx
			ny := float64(dy) / ry
			if nx*nx+ny*ny > 1 {
				continue
			}
			buf.Set(cx+dx, cy+dy, '●', ballStyle)
		}
	}
}
