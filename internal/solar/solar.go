// Package solar derives the solstice azimuth quantities the mandala is
// built from. The model is a fixed formula: the obliquity of the ecliptic
// is a constant, not an ephemeris value.
package solar

import (
	gomath "math"

	"github.com/Faultbox/mandala/pkg/math"
)

// ObliquityDeg is the obliquity of the ecliptic (Earth's axial tilt) in degrees.
const ObliquityDeg = 23.44

// Values holds the quantities derived from a single latitude.
type Values struct {
	LatitudeDeg     float64 // input latitude, degrees, unvalidated
	NorthAzimuthDeg float64 // [0, 360), NaN where the model is undefined
	K               float64 // tangent of the azimuth, may be NaN or ±Inf
}

// IsDefined reports whether the azimuth is a finite number.
func (v Values) IsDefined() bool {
	return !gomath.IsNaN(v.NorthAzimuthDeg) && !gomath.IsInf(v.NorthAzimuthDeg, 0)
}

// Model evaluates the azimuth formula. The obliquity terms are computed
// once by NewModel and reused for every Derive call.
type Model struct {
	ecliptic    float64 // radians
	sinEcliptic float64
}

// NewModel returns a Model for ObliquityDeg.
func NewModel() Model {
	ecliptic := math.DegToRad(ObliquityDeg)
	return Model{
		ecliptic:    ecliptic,
		sinEcliptic: gomath.Sin(ecliptic),
	}
}

// Ecliptic returns the obliquity in radians.
func (mdl Model) Ecliptic() float64 {
	return mdl.ecliptic
}

// Derive computes the north azimuth and k for a latitude in degrees.
//
//	cosLat = cos(lat)
//	az     = acos(sin(ε) / cosLat)
//	k      = tan(az)
//
// Where |sin(ε)/cosLat| > 1 (beyond the polar circles, or at the poles)
// acos is undefined and both outputs are NaN. That is not an error.
func (mdl Model) Derive(latitudeDeg float64) Values {
	cosLat := gomath.Cos(math.DegToRad(latitudeDeg))
	northAzimuth := gomath.Acos(mdl.sinEcliptic / cosLat)

	return Values{
		LatitudeDeg:     latitudeDeg,
		NorthAzimuthDeg: math.RadToDeg(northAzimuth),
		K:               gomath.Tan(northAzimuth),
	}
}

// Parallel is a named line of latitude.
type Parallel struct {
	Name        string
	LatitudeDeg float64
}

// ReferenceParallels returns the equator, the tropics and the polar
// circles implied by the model's obliquity, south to north. The polar
// circles are the bounds beyond which Derive yields NaN.
func ReferenceParallels() []Parallel {
	return []Parallel{
		{"Antarctic Circle", -(90 - ObliquityDeg)},
		{"Tropic of Capricorn", -ObliquityDeg},
		{"Equator", 0},
		{"Tropic of Cancer", ObliquityDeg},
		{"Arctic Circle", 90 - ObliquityDeg},
	}
}
