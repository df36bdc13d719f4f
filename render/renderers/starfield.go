package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/helioviz/orrery/constants"
	"github.com/helioviz/orrery/render"
	"github.com/helioviz/orrery/sim"
	"github.com/helioviz/orrery/vmath"
)

type star struct {
	pos        vmath.Vec3
	brightness float64
	warm       bool
	cool       bool
}

// StarfieldRenderer draws the fixed galaxy backdrop
// Star positions are generated once from a fixed seed: a flattened disc
// with a dense center
type StarfieldRenderer struct {
	scene *sim.Scene
	stars []star
}

// NewStarfieldRenderer generates count stars deterministically
func NewStarfieldRenderer(scene *sim.Scene, count int) *StarfieldRenderer {
	if count < 0 {
		count = 0
	}
	rng := vmath.NewFastRand(constants.StarfieldSeed)
	stars := make([]star, 0, count)

	for i := 0; i < count; i++ {
		angle := rng.Float() * 2 * math.Pi
		distance := math.Pow(rng.Float(), 0.6) * constants.StarfieldRadius

		s := star{
			pos: vmath.Vec3{
				X: math.Cos(angle)*distance + (rng.Float()-0.5)*300.0,
				Y: (rng.Float() - 0.5) * 200.0,
				Z: math.Sin(angle)*distance + (rng.Float()-0.5)*300.0,
			},
			brightness: 0.3 + rng.Float()*0.7,
		}

		// 60% white, 20% cool blue, 20% warm
		tone := rng.Float()
		s.cool = tone >= 0.6 && tone < 0.8
		s.warm = tone >= 0.8

		stars = append(stars, s)
	}

	return &StarfieldRenderer{scene: scene, stars: stars}
}

// IsVisible hides the backdrop while a body is focused
func (r *StarfieldRenderer) IsVisible() bool {
	return !r.scene.Focused()
}

// Render implements render.SystemRenderer
func (r *StarfieldRenderer) Render(ctx render.Context, buf *render.Buffer) {
	for i := range r.stars {
		s := &r.stars[i]
		sx, sy, _, ok := ctx.Project(s.pos)
		if !ok {
			continue
		}

		x, y := int(sx), int(sy)
		if x < 0 || x >= ctx.Width || y < 0 || y >= ctx.Height {
			continue
		}

		var rn rune
		switch {
		case s.brightness < 0.5:
			rn = '·'
		case s.brightness < 0.8:
			rn = '*'
		default:
			rn = '✦'
		}

		v := int32(80 + s.brightness*175)
		var color tcell.Color
		switch {
		case s.cool:
			color = tcell.NewRGBColor(v*7/10, v*8/10, v)
		case s.warm:
			color = tcell.NewRGBColor(v, v*9/10, v*7/10)
		default:
			color = tcell.NewRGBColor(v, v, v)
		}

		buf.Set(x, y, rn, tcell.StyleDefault.Foreground(color).Background(render.Background))
	}
}
