package sim

import "github.com/helioviz/orrery/vmath"

// ProjectFunc maps a world point to fractional cell coordinates
// The render layer supplies one built from the current camera
type ProjectFunc func(p vmath.Vec3) (sx, sy, depth float64, ok bool)

// HitTest resolves a pointer position to a planet index, or Unfocused
//
// Each planet's current position is projected to screen space; the first
// planet (in registry order) within threshold cell-width units wins, so
// ties break deterministically.
func (s *Scene) HitTest(x, y float64, project ProjectFunc, threshold float64) int {
	for i := range s.Planets {
		sx, sy, _, ok := project(s.Planets[i].Position())
		if !ok {
			continue
		}
		if vmath.ScreenDist(x, y, sx, sy) < threshold {
			return i
		}
	}
	return Unfocused
}
