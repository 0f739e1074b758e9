package mandala

import (
	gomath "math"

	"github.com/Faultbox/mandala/internal/solar"
	"github.com/Faultbox/mandala/pkg/math"
)

// frame is the geometry of one repaint, derived once per Update.
// Points are y-up; steps flip them for the surface.
type frame struct {
	values solar.Values

	angle     float64   // ray direction, 90° - azimuth, radians
	halfAngle float64   // 90° - azimuth/2, radians
	tip       math.Vec2 // end of the azimuth ray
	arcRadius float64
	z         float64 // half side of the mother and father squares

	finite bool
}

func newFrame(v solar.Values, solarRadius float64) frame {
	angle := math.DegToRad(90 - v.NorthAzimuthDeg)
	tip := math.PolarToCartesian(math.Polar{R: solarRadius, Angle: angle})
	z := gomath.Max(tip.X, tip.Y)

	return frame{
		values:    v,
		angle:     angle,
		halfAngle: math.DegToRad(90 - v.NorthAzimuthDeg/2),
		tip:       tip,
		arcRadius: solarRadius / 4,
		z:         z,
		finite:    tip.IsFinite() && !gomath.IsNaN(z) && !gomath.IsInf(z, 0),
	}
}

// circleRadius is the circumradius of the mother square.
func (f *frame) circleRadius() float64 {
	return gomath.Sqrt(2 * f.z * f.z)
}

// arcSweep returns the start angle and sweep, in surface (y-down) radians,
// of the azimuth arc. The arc starts at screen-up (3π/2) and always sweeps
// in the positive direction, clockwise on screen, until it meets the ray,
// so the swept angle equals the azimuth. A zero sweep means no arc.
func arcSweep(rayAngle float64) (start, sweep float64) {
	start = 3 * gomath.Pi / 2
	return start, math.NormalizeAngle(-rayAngle-start, math.Tau)
}
