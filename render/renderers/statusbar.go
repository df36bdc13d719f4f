package renderers

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/helioviz/orrery/audio"
	"github.com/helioviz/orrery/render"
	"github.com/helioviz/orrery/sim"
)

// StatusBarRenderer draws the status bar at the bottom
type StatusBarRenderer struct {
	scene *sim.Scene
	audio *audio.Engine

	// FPS tracking
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer(scene *sim.Scene, audioEngine *audio.Engine) *StatusBarRenderer {
	return &StatusBarRenderer{
		scene:         scene,
		audio:         audioEngine,
		lastFpsUpdate: time.Now(),
	}
}

// Render implements render.SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.Context, buf *render.Buffer) {
	s.frameCount++
	now := time.Now()
	if now.Sub(s.lastFpsUpdate) >= time.Second {
		s.currentFps = s.frameCount
		s.frameCount = 0
		s.lastFpsUpdate = now
	}

	barStyle := tcell.StyleDefault.Background(render.RgbStatusBg).Foreground(render.RgbPanelText)
	dimStyle := tcell.StyleDefault.Background(render.RgbStatusBg).Foreground(render.RgbPanelDim)

	y := ctx.Height - 1
	for x := 0; x < ctx.Width; x++ {
		buf.Set(x, y, ' ', barStyle)
	}

	orbits := "off"
	if s.scene.ShowOrbits {
		orbits = "on"
	}

	left := fmt.Sprintf(" %.1fx │ orbits %s │ %dfps", s.scene.Speed, orbits, s.currentFps)
	if s.audio != nil && s.audio.Ready() {
		if s.audio.IsMuted() {
			left += " │ muted"
		} else {
			left += " │ ♪"
		}
	}
	if p := s.scene.FocusedBody(); p != nil {
		left += " │ " + p.Name
	}
	buf.SetString(0, y, left, barStyle)

	hints := "drag rotate · wheel zoom · click focus · o orbits · +/- speed · r reset · q quit "
	x := ctx.Width - len([]rune(hints))
	if x > len([]rune(left))+2 {
		buf.SetString(x, y, hints, dimStyle)
	}
}
