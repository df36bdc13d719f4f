package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/helioviz/orrery/render"
	"github.com/helioviz/orrery/sim"
	"github.com/helioviz/orrery/vmath"
)

const (
	planetOrbitSegments = 100
	moonOrbitSegments   = 50
)

// OrbitsRenderer traces each body's circular orbit path
type OrbitsRenderer struct {
	scene *sim.Scene
}

// NewOrbitsRenderer creates an orbit path renderer
func NewOrbitsRenderer(scene *sim.Scene) *OrbitsRenderer {
	return &OrbitsRenderer{scene: scene}
}

// IsVisible honors the orbit toggle and hides paths during focus
func (r *OrbitsRenderer) IsVisible() bool {
	return r.scene.ShowOrbits && !r.scene.Focused()
}

// Render implements render.SystemRenderer
func (r *OrbitsRenderer) Render(ctx render.Context, buf *render.Buffer) {
	planetStyle := tcell.StyleDefault.Foreground(render.RgbOrbitPath).Background(render.Background)
	moonStyle := tcell.StyleDefault.Foreground(render.RgbMoonOrbit).Background(render.Background)

	for i := range r.scene.Planets {
		p := &r.scene.Planets[i]
		traceCircle(ctx, buf, vmath.Vec3{}, p.OrbitRadius, planetOrbitSegments, planetStyle)

		center := p.Position()
		for j := range p.Moons {
			traceCircle(ctx, buf, center, p.Moons[j].OrbitRadius, moonOrbitSegments, moonStyle)
		}
	}
}

// traceCircle projects evenly spaced samples of an XZ-plane circle
func traceCircle(ctx render.Context, buf *render.Buffer, center vmath.Vec3, radius float64, segments int, style tcell.Style) {
	for k := 0; k < segments; k++ {
		angle := 2 * math.Pi * float64(k) / float64(segments)
		p := vmath.Vec3{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y,
			Z: center.Z + radius*math.Sin(angle),
		}

		sx, sy, _, ok := ctx.Project(p)
		if !ok {
			continue
		}
		buf.Set(int(sx), int(sy), '·', style)
	}
}
