// Package math provides the angle and 2D vector helpers shared by the
// mandala renderer and the map viewer.
package math

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// FlipY mirrors the vector across the x-axis. Use it to move a point from
// the mathematical (y-up) convention onto a y-down raster surface.
func (v Vec2) FlipY() Vec2 {
	return Vec2{v.X, -v.Y}
}

// Swap exchanges the components, reflecting the point across y = x.
func (v Vec2) Swap() Vec2 {
	return Vec2{v.Y, v.X}
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
