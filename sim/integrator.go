package sim

import "github.com/helioviz/orrery/vmath"

// advanceBodies runs one integration step over the registry
//
// Focus policy: the focused planet's orbital angle, its moons and its own
// axis rotation are frozen so the camera holds a stable framing; every
// other body keeps moving. Bodies with zero day length never rotate.
func (s *Scene) advanceBodies(dt float64) {
	step := dt * s.Speed
	s.Elapsed += step

	// The sun advances its axis by RotationSpeed per tick, not per second
	s.Sun.AxisRotation = vmath.WrapDegrees(s.Sun.AxisRotation + s.Sun.RotationSpeed*s.Speed)

	for i := range s.Planets {
		p := &s.Planets[i]
		focused := i == s.FocusIndex

		if !focused {
			p.Angle = vmath.WrapRadians(p.Angle + p.OrbitSpeed*step)

			for j := range p.Moons {
				m := &p.Moons[j]
				m.Angle = vmath.WrapRadians(m.Angle + m.OrbitSpeed*step)
			}
		}

		if !focused && p.DayLength > 0 {
			perSecond := 360.0 / p.DayLength
			p.AxisRotation = vmath.WrapDegrees(p.AxisRotation + perSecond*step)
		}
	}
}
