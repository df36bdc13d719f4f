package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/helioviz/orrery/sim"
)

// Background is the deep-space backdrop color
var Background = tcell.NewRGBColor(0, 0, 5)

// Orbit path and UI colors
var (
	RgbOrbitPath   = tcell.NewRGBColor(102, 102, 128)
	RgbMoonOrbit   = tcell.NewRGBColor(77, 77, 102)
	RgbPanelText   = tcell.NewRGBColor(220, 220, 230)
	RgbPanelDim    = tcell.NewRGBColor(150, 150, 165)
	RgbTooltipBg   = tcell.NewRGBColor(25, 25, 40)
	RgbStatusBg    = tcell.NewRGBColor(20, 20, 32)
	RgbGravityBall = tcell.NewRGBColor(255, 77, 77)
	RgbGroundMark  = tcell.NewRGBColor(128, 128, 128)
)

// TintColor converts a registry tint into a colorful color
func TintColor(t sim.Tint) colorful.Color {
	return colorful.Color{R: t.R, G: t.G, B: t.B}.Clamped()
}

// ToTcell converts a colorful color to a terminal color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

var (
	shadeBlack = colorful.Color{}
	shadeWhite = colorful.Color{R: 1, G: 1, B: 1}
)

// Shade lights a base color by intensity in [0,1]
// Low intensity blends toward black in Lab space; the top of the range
// picks up a small white highlight
func Shade(base colorful.Color, intensity float64) tcell.Color {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}

	lit := shadeBlack.BlendLab(base, 0.15+0.85*intensity)
	if intensity > 0.9 {
		lit = lit.BlendLab(shadeWhite, (intensity-0.9)*2.0)
	}
	return ToTcell(lit)
}

// shadeRunes ramp from dim to solid surface coverage
var shadeRunes = []rune{'░', '▒', '▓', '█'}

// ShadeRune picks a fill rune for the given light intensity
func ShadeRune(intensity float64) rune {
	switch {
	case intensity < 0.25:
		return shadeRunes[0]
	case intensity < 0.5:
		return shadeRunes[1]
	case intensity < 0.75:
		return shadeRunes[2]
	default:
		return shadeRunes[3]
	}
}
