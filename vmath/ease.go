package vmath

import "math"

// SmoothStep is the ease-in-out curve t²(3−2t)
// Zero first derivative at both ends, monotonic on [0,1]
func SmoothStep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3.0 - 2.0*t)
}

// Lerp blends linearly between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapRadians wraps an angle to [0, 2π)
func WrapRadians(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// WrapDegrees wraps an angle to [0, 360)
func WrapDegrees(a float64) float64 {
	a = math.Mod(a, 360.0)
	if a < 0 {
		a += 360.0
	}
	return a
}

// Deg2Rad converts degrees to radians
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}
