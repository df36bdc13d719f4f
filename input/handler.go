package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/helioviz/orrery/audio"
	"github.com/helioviz/orrery/constants"
	"github.com/helioviz/orrery/render"
	"github.com/helioviz/orrery/sim"
)

// Handler maps terminal events onto scene mutations
// Runs on the main select loop, strictly interleaved with ticks
type Handler struct {
	scene *sim.Scene
	audio *audio.Engine

	width  int
	height int

	dragging     bool
	lastX, lastY int
	prevButtons  tcell.ButtonMask
}

// NewHandler creates an input handler for the given scene
func NewHandler(scene *sim.Scene, audioEngine *audio.Engine, width, height int) *Handler {
	return &Handler{
		scene:  scene,
		audio:  audioEngine,
		width:  width,
		height: height,
	}
}

// SetSize updates the projection dimensions after a resize
func (h *Handler) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// HandleEvent processes a tcell event and returns false if the program
// should exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	}
	return true
}

func (h *Handler) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false

	case 'o', 'O':
		h.scene.ToggleOrbits()
		h.playToggle()

	case '+', '=':
		h.scene.AdjustSpeed(constants.SpeedStep)

	case '-', '_':
		h.scene.AdjustSpeed(-constants.SpeedStep)

	case 'r', 'R':
		if h.scene.Focused() {
			h.scene.ReturnToOverview()
			if h.audio != nil {
				h.audio.PlayReturn()
			}
		} else {
			h.scene.Camera.ResetOrientation()
		}

	case 'w', 'W':
		if p := h.scene.FocusedBody(); p != nil {
			OpenURL(p.WikiURL)
		}

	case 'g', 'G':
		if h.scene.Focused() {
			h.scene.ToggleGravity()
			h.playToggle()
		}

	case 'm', 'M':
		if h.audio != nil {
			h.audio.ToggleMute()
		}
	}
	return true
}

func (h *Handler) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0
	wasPressed := h.prevButtons&tcell.Button1 != 0
	h.prevButtons = buttons

	h.scene.PointerX = x
	h.scene.PointerY = y

	switch {
	case buttons&tcell.WheelUp != 0:
		h.scene.Camera.Scroll(true)
	case buttons&tcell.WheelDown != 0:
		h.scene.Camera.Scroll(false)
	}

	if pressed && !wasPressed {
		// Fresh click: focus resolution first, drag as fallback
		// Clicks while focused never re-target; only drag starts
		if !h.scene.Focused() {
			if hit := h.hitTest(x, y); hit != sim.Unfocused {
				if h.scene.FocusOn(hit) && h.audio != nil {
					h.audio.PlayFocus()
				}
				return
			}
		}
		h.dragging = true
		h.lastX, h.lastY = x, y
		return
	}

	if !pressed {
		h.dragging = false
	}

	if h.dragging && pressed {
		dx := float64(x-h.lastX) * constants.CellPixelsX
		dy := float64(y-h.lastY) * constants.CellPixelsY
		h.scene.Camera.Drag(dx, dy)
		h.lastX, h.lastY = x, y
		return
	}

	// Passive motion drives hover resolution in overview mode
	if !h.scene.Focused() {
		h.scene.Hovered = h.hitTest(x, y)
	}
}

// hitTest projects the current registry through a fresh camera snapshot
func (h *Handler) hitTest(x, y int) int {
	ctx := render.NewContext(h.scene, h.width, h.height)
	return h.scene.HitTest(float64(x)+0.5, float64(y)+0.5, ctx.Project, ctx.HitThreshold())
}

func (h *Handler) playToggle() {
	if h.audio != nil {
		h.audio.PlayToggle()
	}
}
