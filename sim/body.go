package sim

import (
	"fmt"
	"math"

	"github.com/helioviz/orrery/vmath"
)

// Tint is a render hint color, components in [0,1]
// The renderer turns it into a shading ramp; it never fails to resolve
type Tint struct {
	R, G, B float64
}

// Moon orbits its parent body in the parent's local XZ plane
// One nesting level only: moons have no children
type Moon struct {
	Name        string
	Radius      float64
	OrbitRadius float64
	OrbitSpeed  float64 // rad/s
	Angle       float64 // wrapped to [0, 2π)
	Color       Tint
}

// Body is any orbiting entity in the registry
// Constructed once at startup, mutated every tick, never destroyed
type Body struct {
	Name        string
	Radius      float64
	OrbitRadius float64
	OrbitSpeed  float64 // rad/s around the system center
	RotationSpeed float64

	Angle        float64 // orbital angle, wrapped to [0, 2π)
	AxisRotation float64 // degrees, wrapped to [0, 360)

	Tilt      float64 // axial tilt, degrees
	DayLength float64 // Earth days per rotation, 0 = rotation undefined
	YearLength float64 // Earth days per orbit
	Gravity   float64 // surface gravity, m/s²

	HasRings  bool
	RingInner float64
	RingOuter float64

	// TextureRotation offsets the surface pattern phase, degrees
	TextureRotation float64

	Color   Tint
	WikiURL string

	Moons []Moon
}

// Position returns the body's world position on its circular orbit
func (b *Body) Position() vmath.Vec3 {
	return vmath.Vec3{
		X: b.OrbitRadius * math.Cos(b.Angle),
		Y: 0,
		Z: b.OrbitRadius * math.Sin(b.Angle),
	}
}

// MoonPosition returns a moon's world position around its parent
func (b *Body) MoonPosition(m *Moon) vmath.Vec3 {
	p := b.Position()
	return vmath.Vec3{
		X: p.X + m.OrbitRadius*math.Cos(m.Angle),
		Y: 0,
		Z: p.Z + m.OrbitRadius*math.Sin(m.Angle),
	}
}

// LocalTime formats the body's elapsed local time as day + clock
// Bodies with undefined rotation report "N/A"
func (s *Scene) LocalTime(b *Body) string {
	if b.DayLength == 0 {
		return "N/A"
	}

	rotations := s.Elapsed * s.Speed / (b.DayLength * 0.1)
	days := int(rotations)
	hourFraction := (rotations - float64(days)) * 24.0
	hours := int(hourFraction)
	minutes := int((hourFraction - float64(hours)) * 60.0)

	return fmt.Sprintf("Day %d, %02d:%02d", days, hours, minutes)
}
