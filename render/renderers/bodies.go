package renderers

import (
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/helioviz/orrery/constants"
	"github.com/helioviz/orrery/render"
	"github.com/helioviz/orrery/sim"
	"github.com/helioviz/orrery/vmath"
)

// sphereDraw is one projected body awaiting rasterization
type sphereDraw struct {
	pos     vmath.Vec3
	radius  float64
	color   colorful.Color
	axisDeg float64 // axis rotation + texture phase, degrees
	tiltDeg float64
	selfLit bool

	sx, sy, depth float64
}

// ringDraw is a tilted annulus around a planet
type ringDraw struct {
	center  vmath.Vec3
	inner   float64
	outer   float64
	tiltDeg float64
	color   colorful.Color
}

// BodiesRenderer rasterizes the sun, planets, moons and rings as shaded
// discs, painter-ordered far to near
//
// In focus mode only the focused planet and its moons draw, enlarged for
// inspection; the sun and the rest of the system are hidden
type BodiesRenderer struct {
	scene *sim.Scene
}

// NewBodiesRenderer creates the body renderer
func NewBodiesRenderer(scene *sim.Scene) *BodiesRenderer {
	return &BodiesRenderer{scene: scene}
}

// Render implements render.SystemRenderer
func (r *BodiesRenderer) Render(ctx render.Context, buf *render.Buffer) {
	s := r.scene

	var spheres []sphereDraw
	var rings []ringDraw

	appendPlanet := func(p *sim.Body, scale float64) {
		pos := p.Position()
		spheres = append(spheres, sphereDraw{
			pos:     pos,
			radius:  p.Radius * scale,
			color:   render.TintColor(p.Color),
			axisDeg: p.AxisRotation + p.TextureRotation,
			tiltDeg: p.Tilt,
		})

		if p.HasRings {
			rings = append(rings, ringDraw{
				center:  pos,
				inner:   p.RingInner * scale,
				outer:   p.RingOuter * scale,
				tiltDeg: p.Tilt,
				color:   render.TintColor(p.Color),
			})
		}

		for j := range p.Moons {
			m := &p.Moons[j]
			offset := vmath.V3Sub(p.MoonPosition(m), pos)
			spheres = append(spheres, sphereDraw{
				pos:    vmath.V3Add(pos, vmath.V3Scale(offset, scale)),
				radius: m.Radius * scale,
				color:  render.TintColor(m.Color),
			})
		}
	}

	if s.Focused() {
		appendPlanet(s.FocusedBody(), constants.FocusRenderScale)
	} else {
		spheres = append(spheres, sphereDraw{
			pos:     vmath.Vec3{},
			radius:  s.Sun.Radius,
			color:   render.TintColor(s.Sun.Color),
			axisDeg: s.Sun.AxisRotation,
			selfLit: true,
		})
		for i := range s.Planets {
			appendPlanet(&s.Planets[i], 1.0)
		}
	}

	// Project and cull
	visible := spheres[:0]
	for _, d := range spheres {
		sx, sy, depth, ok := ctx.Project(d.pos)
		if !ok {
			continue
		}
		d.sx, d.sy, d.depth = sx, sy, depth
		visible = append(visible, d)
	}
	// Painter ordering, far first
	sort.SliceStable(visible, func(a, b int) bool {
		return visible[a].depth > visible[b].depth
	})

	for _, d := range visible {
		drawSphere(ctx, buf, d)
		for _, rg := range rings {
			if rg.center == d.pos {
				drawRing(ctx, buf, rg, d)
			}
		}
	}
}

// drawSphere rasterizes one shaded disc
// The surface normal is reconstructed per cell; lighting comes from the
// sun at the origin with a small ambient floor, and a longitude band
// pattern moves with the body's axis rotation
func drawSphere(ctx render.Context, buf *render.Buffer, d sphereDraw) {
	rx := ctx.Cam.RadiusCells(d.radius, d.depth)
	cx, cy := int(math.Round(d.sx)), int(math.Round(d.sy))

	if rx < 0.5 {
		// Sub-cell body: single dot
		buf.Set(cx, cy, '•', tcell.StyleDefault.
			Foreground(render.Shade(d.color, 0.8)).
			Background(render.Background))
		return
	}

	ry := rx * vmath.CellAspect
	tilt := vmath.Deg2Rad(d.tiltDeg)
	ca, sa := math.Cos(tilt), math.Sin(tilt)
	phase := vmath.Deg2Rad(d.axisDeg)

	light := vmath.V3Normalize(vmath.V3Scale(d.pos, -1))

	maxDX := int(math.Ceil(rx))
	maxDY := int(math.Ceil(ry))

	for dy := -maxDY; dy <= maxDY; dy++ {
		for dx := -maxDX; dx <= maxDX; dx++ {
			nx0 := float64(dx) / rx
			ny0 := float64(dy) / ry

			// Screen-space approximation of axial tilt
			nx := nx0*ca + ny0*sa
			ny := -nx0*sa + ny0*ca

			d2 := nx*nx + ny*ny
			if d2 > 1 {
				continue
			}
			nz := math.Sqrt(1 - d2)

			var intensity float64
			if d.selfLit {
				intensity = 0.75 + 0.25*nz
			} else {
				normal := vmath.V3Add(
					vmath.V3Add(
						vmath.V3Scale(ctx.Cam.Right, nx),
						vmath.V3Scale(ctx.Cam.Up, -ny),
					),
					vmath.V3Scale(ctx.Cam.Forward, -nz),
				)
				intensity = vmath.V3Dot(normal, light)
				if intensity < 0.12 {
					intensity = 0.12
				}
			}

			// Surface phase bands make the axis rotation visible
			lon := math.Atan2(nx, nz) + phase
			lat := math.Asin(vmath.Clamp(ny, -1, 1))
			intensity *= 1.0 + 0.08*math.Sin(3*lon+2*lat)
			intensity = vmath.Clamp(intensity, 0, 1)

			buf.Set(cx+dx, cy+dy, render.ShadeRune(intensity), tcell.StyleDefault.
				Foreground(render.Shade(d.color, intensity)).
				Background(render.Background))
		}
	}
}

// drawRing plots a tilted annulus as banded sample points
// Points on the far side of the ring hidden behind the planet disc skip
func drawRing(ctx render.Context, buf *render.Buffer, rg ringDraw, planet sphereDraw) {
	const segments = 180

	ca, sa := math.Cos(vmath.Deg2Rad(rg.tiltDeg)), math.Sin(vmath.Deg2Rad(rg.tiltDeg))
	steps := int(rg.outer-rg.inner) + 2

	discRX := ctx.Cam.RadiusCells(planet.radius, planet.depth)

	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		c, s := math.Cos(angle), math.Sin(angle)

		// Band pattern around the circumference stands in for a texture
		bands := math.Sin(float64(i)/float64(segments)*40.0)*0.3 + 0.7

		for k := 0; k < steps; k++ {
			v := float64(k) / float64(steps-1)
			rho := rg.inner + (rg.outer-rg.inner)*v

			// Local ring point rotated by tilt around the Z axis
			lx := rho * c
			lz := rho * s
			p := vmath.Vec3{
				X: rg.center.X + lx*ca,
				Y: rg.center.Y + lx*sa,
				Z: rg.center.Z + lz,
			}

			sx, sy, depth, ok := ctx.Project(p)
			if !ok {
				continue
			}
			if depth > planet.depth && vmath.ScreenDist(sx, sy, planet.sx, planet.sy) < discRX {
				continue
			}

			fade := 1.0 - math.Abs(v-0.5)*2.0
			intensity := vmath.Clamp(bands*(0.35+0.65*fade), 0, 1)

			buf.Set(int(sx), int(sy), '·', tcell.StyleDefault.
				Foreground(render.Shade(rg.color, intensity)).
				Background(render.Background))
		}
	}
}
