// Package worldmap is the viewer's map: an equirectangular projection of
// the globe fitted into a screen rectangle, and a procedural raster of it
// with graticule and reference parallels.
package worldmap

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/mandala/pkg/math"
)

// LatLng is a geographic position in degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

func (ll LatLng) String() string {
	return fmt.Sprintf("%.4f, %.4f", ll.Lat, ll.Lng)
}

// Projection maps LatLng to screen coordinates. The whole globe
// (360° x 180°) is fitted into the view keeping a 2:1 aspect and centered;
// the rest of the view is letterbox.
type Projection struct {
	origin math.Vec2 // screen position of (90°N, 180°W)
	scale  float64   // screen units per degree
}

// NewProjection fits the globe into a width x height view.
func NewProjection(width, height float64) Projection {
	scale := gomath.Max(gomath.Min(width/360, height/180), 0)
	return Projection{
		origin: math.Vec2{
			X: (width - 360*scale) / 2,
			Y: (height - 180*scale) / 2,
		},
		scale: scale,
	}
}

// Scale returns screen units per degree.
func (p Projection) Scale() float64 {
	return p.scale
}

// Bounds returns the map rectangle: top-left corner and size.
func (p Projection) Bounds() (x, y, width, height float64) {
	return p.origin.X, p.origin.Y, 360 * p.scale, 180 * p.scale
}

// ToScreen returns the screen position of ll.
func (p Projection) ToScreen(ll LatLng) math.Vec2 {
	return p.origin.Add(math.Vec2{
		X: (ll.Lng + 180) * p.scale,
		Y: (90 - ll.Lat) * p.scale,
	})
}

// ToLatLng converts a screen position to a LatLng. ok is false when the
// position falls outside the map.
func (p Projection) ToLatLng(x, y float64) (ll LatLng, ok bool) {
	if p.scale <= 0 {
		return LatLng{}, false
	}
	d := math.Vec2{X: x, Y: y}.Sub(p.origin).Scale(1 / p.scale)
	if d.X < 0 || d.X > 360 || d.Y < 0 || d.Y > 180 {
		return LatLng{}, false
	}
	return LatLng{Lat: 90 - d.Y, Lng: d.X - 180}, true
}

// Line is a graticule line between two positions.
type Line struct {
	From, To LatLng
}

// Graticule returns meridians and parallels every step degrees, including
// the map edges. A non-positive step yields only the edges.
func Graticule(step float64) []Line {
	var lines []Line
	for _, lng := range ticks(-180, 180, step) {
		lines = append(lines, Line{LatLng{90, lng}, LatLng{-90, lng}})
	}
	for _, lat := range ticks(-90, 90, step) {
		lines = append(lines, Line{LatLng{lat, -180}, LatLng{lat, 180}})
	}
	return lines
}

// ticks returns lo, lo+step, ... up to and including hi.
func ticks(lo, hi, step float64) []float64 {
	if !(step > 0) {
		return []float64{lo, hi}
	}
	n := int(gomath.Floor((hi-lo)/step + 1e-9))
	out := make([]float64, 0, n+2)
	for i := 0; i <= n; i++ {
		out = append(out, lo+float64(i)*step)
	}
	if out[len(out)-1] < hi {
		out = append(out, hi)
	}
	return out
}
