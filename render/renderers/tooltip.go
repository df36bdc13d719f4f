package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/helioviz/orrery/constants"
	"github.com/helioviz/orrery/render"
	"github.com/helioviz/orrery/sim"
)

// TooltipRenderer shows body details beside the pointer while hovering
// Overview mode only; focus mode uses the info panel instead
type TooltipRenderer struct {
	scene *sim.Scene
}

// NewTooltipRenderer creates the hover tooltip renderer
func NewTooltipRenderer(scene *sim.Scene) *TooltipRenderer {
	return &TooltipRenderer{scene: scene}
}

// IsVisible requires an unfocused scene with a hovered body
func (r *TooltipRenderer) IsVisible() bool {
	s := r.scene
	return !s.Focused() && s.Hovered >= 0 && s.Hovered < len(s.Planets)
}

// Render implements render.SystemRenderer
func (r *TooltipRenderer) Render(ctx render.Context, buf *render.Buffer) {
	s := r.scene
	if s.Hovered < 0 || s.Hovered >= len(s.Planets) {
		return
	}
	p := &s.Planets[s.Hovered]

	lines := []string{
		p.Name,
		fmt.Sprintf("Radius: %.1f units", p.Radius),
		fmt.Sprintf("Day Length: %.2f Earth days", p.DayLength),
		fmt.Sprintf("Year Length: %.1f Earth days", p.YearLength),
		fmt.Sprintf("Gravity: %.2f m/s²", p.Gravity),
		"Local Time: " + s.LocalTime(p),
	}

	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	width += 2 // one cell of padding each side

	x := s.PointerX + constants.TooltipOffsetX
	y := s.PointerY + constants.TooltipOffsetY
	if x+width > ctx.Width {
		x = s.PointerX - constants.TooltipOffsetX - width
	}
	if y+len(lines) > ctx.Height {
		y = ctx.Height - len(lines)
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	bg := tcell.StyleDefault.Background(render.RgbTooltipBg)
	title := bg.Foreground(render.RgbPanelText).Bold(true)
	body := bg.Foreground(render.RgbPanelDim)

	for i, line := range lines {
		style := body
		if i == 0 {
			style = title
		}
		for dx := 0; dx < width; dx++ {
			buf.Set(x+dx, y+i, ' ', bg)
		}
		buf.SetString(x+1, y+i, line, style)
	}
}
