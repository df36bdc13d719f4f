package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/helioviz/orrery/render"
	"github.com/helioviz/orrery/sim"
)

// InfoPanelRenderer shows the focused body's details and key help in the
// top-left corner
type InfoPanelRenderer struct {
	scene *sim.Scene
}

// NewInfoPanelRenderer creates the focus info panel renderer
func NewInfoPanelRenderer(scene *sim.Scene) *InfoPanelRenderer {
	return &InfoPanelRenderer{scene: scene}
}

// IsVisible requires a focused body
func (r *InfoPanelRenderer) IsVisible() bool {
	return r.scene.Focused()
}

// Render implements render.SystemRenderer
func (r *InfoPanelRenderer) Render(ctx render.Context, buf *render.Buffer) {
	p := r.scene.FocusedBody()
	if p == nil {
		return
	}

	title := tcell.StyleDefault.Foreground(render.RgbPanelText).Background(render.Background).Bold(true)
	text := tcell.StyleDefault.Foreground(render.RgbPanelText).Background(render.Background)
	dim := tcell.StyleDefault.Foreground(render.RgbPanelDim).Background(render.Background)

	x, y := 2, 1
	buf.SetString(x, y, fmt.Sprintf("═══ %s ═══", p.Name), title)
	y += 2

	stats := []string{
		fmt.Sprintf("Radius: %.1f units", p.Radius),
		fmt.Sprintf("Day Length: %.2f Earth days", p.DayLength),
		fmt.Sprintf("Year Length: %.1f Earth days", p.YearLength),
		fmt.Sprintf("Gravity: %.2f m/s²", p.Gravity),
		"Local Time: " + r.scene.LocalTime(p),
	}
	for _, line := range stats {
		buf.SetString(x, y, line, text)
		y++
	}
	y++

	help := []string{
		"Press 'w' for Wikipedia",
		"Press 'g' to toggle gravity demo",
		"Press 'r' to return to solar system",
	}
	for _, line := range help {
		buf.SetString(x, y, line, dim)
		y++
	}

	if r.scene.Gravity.Enabled {
		y++
		buf.SetString(x, y, fmt.Sprintf("Gravity demo: ball falling at %.2f m/s²", p.Gravity), text)
	}
}
