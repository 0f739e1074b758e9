package math

import "math"

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// NormalizeAngle folds value into [0, modulus). Unlike math.Mod the result
// is never negative: NormalizeAngle(-10, 360) == 350.
// Non-finite input propagates as NaN.
func NormalizeAngle(value, modulus float64) float64 {
	return math.Mod(math.Mod(value, modulus)+modulus, modulus)
}

// DegToRad converts degrees to radians in [0, 2π).
func DegToRad(deg float64) float64 {
	return NormalizeAngle(deg*Tau/360, Tau)
}

// RadToDeg converts radians to degrees in [0, 360).
func RadToDeg(rad float64) float64 {
	return NormalizeAngle(rad*360/Tau, 360)
}
