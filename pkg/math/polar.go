package math

import "math"

// Polar is a point in polar form. Angle is in radians, measured
// counter-clockwise from the positive x-axis.
type Polar struct {
	R     float64
	Angle float64
}

// PolarToCartesian converts p to x = r·cos(a), y = r·sin(a).
// The result is y-up; callers drawing on a y-down surface flip it.
func PolarToCartesian(p Polar) Vec2 {
	return Vec2{
		X: p.R * math.Cos(p.Angle),
		Y: p.R * math.Sin(p.Angle),
	}
}
