package mandala

import (
	"image/color"
	gomath "math"
	"strconv"

	"github.com/fogleman/gg"

	"github.com/Faultbox/mandala/pkg/math"
)

// Stroke widths and dash lengths are in surface pixels, so lines stay
// one or two device pixels wide at any pixel ratio.
const (
	hairline = 1.0
	heavy    = 2.0
)

const (
	labelGap     = 5  // between the azimuth arc and its label
	kLabelOffset = 12 // baseline of the k label, off the ray
)

var (
	axisColor       = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	azimuthColor    = color.RGBA{0x88, 0x88, 0x88, 0xff}
	rectColor       = color.RGBA{0xff, 0xa5, 0x00, 0xff} // orange
	motherColor     = color.RGBA{0x00, 0x00, 0xff, 0xff}
	fatherColor     = color.RGBA{0xff, 0x00, 0x00, 0xff}
	finisterreColor = color.RGBA{0xa5, 0x2a, 0x2a, 0xff} // brown
)

// step is one stage of a repaint. Steps marked geometric depend on the
// azimuth and are skipped when it is not finite.
type step struct {
	name      string
	geometric bool
	draw      func(md *Mandala, dc *gg.Context, f *frame)
}

// pipeline is the fixed paint order. Later steps draw over earlier ones.
var pipeline = []step{
	{"clear", false, (*Mandala).clear},
	{"axes", false, (*Mandala).drawAxes},
	{"azimuth", true, (*Mandala).drawAzimuth},
	{"solar rectangle", true, (*Mandala).drawSolarRect},
	{"lunar rectangle", true, (*Mandala).drawLunarRect},
	{"mother square", true, (*Mandala).drawMotherSquare},
	{"father square", true, (*Mandala).drawFatherSquare},
	{"finisterre circle", true, (*Mandala).drawFinisterreCircle},
}

// clear overwrites every pixel with transparent black. gg's Clear uses
// the Src operator, so nothing of the previous frame survives.
func (md *Mandala) clear(dc *gg.Context, _ *frame) {
	dc.SetColor(color.Transparent)
	dc.Clear()
}

func (md *Mandala) drawAxes(dc *gg.Context, _ *frame) {
	w2 := float64(md.width) / 2
	h2 := float64(md.height) / 2

	dc.SetLineWidth(hairline)
	dc.SetColor(axisColor)
	dc.MoveTo(-w2, 0)
	dc.LineTo(w2, 0)
	dc.MoveTo(0, -h2)
	dc.LineTo(0, h2)
	dc.Stroke()
}

func (md *Mandala) drawAzimuth(dc *gg.Context, f *frame) {
	dc.SetColor(azimuthColor)
	dc.SetLineWidth(hairline)

	ray := f.tip.FlipY()
	dc.MoveTo(0, 0)
	dc.LineTo(ray.X, ray.Y)
	dc.Stroke()

	if start, sweep := arcSweep(f.angle); sweep > 0 {
		dc.DrawArc(0, 0, f.arcRadius, start, start+sweep)
		dc.Stroke()
	}

	md.scoped(func(dc *gg.Context) {
		anchor := math.PolarToCartesian(math.Polar{R: f.arcRadius + labelGap, Angle: f.halfAngle}).FlipY()
		dc.Translate(anchor.X, anchor.Y)
		dc.Rotate(-f.halfAngle)
		md.drawLabel(dc, floorString(f.values.NorthAzimuthDeg, 2)+"°", 0, 0, 0, 0.5)
	})

	dc.Rotate(-f.angle)
	md.drawLabel(dc, floorString(f.values.K, 3), md.solarRadius/2, kLabelOffset, 0.5, 0)
}

// drawLabel draws s anchored at logical (x, y) in the current frame. The
// face is already sized in surface pixels, so the pixel ratio is undone
// first and glyphs are only rotated, never resampled to a larger size.
// It leaves the context scaled; callers run it last in a scope.
func (md *Mandala) drawLabel(dc *gg.Context, s string, x, y, ax, ay float64) {
	r := md.pixelRatio
	dc.Scale(1/r, 1/r)
	dc.DrawStringAnchored(s, x*r, y*r, ax, ay)
}

// drawSolarRect strokes the lunar rectangle reflected across y = x.
func (md *Mandala) drawSolarRect(dc *gg.Context, f *frame) {
	c := f.tip.Swap()

	dc.SetColor(rectColor)
	dc.SetLineWidth(heavy)
	dc.SetDash(heavy, heavy)
	dc.DrawRectangle(-c.X, -c.Y, 2*c.X, 2*c.Y)
	dc.Stroke()
}

func (md *Mandala) drawLunarRect(dc *gg.Context, f *frame) {
	c := f.tip

	dc.SetColor(rectColor)
	dc.SetLineWidth(heavy)
	dc.DrawRectangle(-c.X, -c.Y, 2*c.X, 2*c.Y)
	dc.Stroke()
}

// drawMotherSquare strokes the smallest centered square holding both
// rectangles.
func (md *Mandala) drawMotherSquare(dc *gg.Context, f *frame) {
	dc.SetColor(motherColor)
	dc.SetLineWidth(heavy)
	dc.DrawRectangle(-f.z, -f.z, 2*f.z, 2*f.z)
	dc.Stroke()
}

// drawFatherSquare is the mother square turned 45°.
func (md *Mandala) drawFatherSquare(dc *gg.Context, f *frame) {
	dc.SetColor(fatherColor)
	dc.SetLineWidth(heavy)
	dc.Rotate(gomath.Pi / 4)
	dc.DrawRectangle(-f.z, -f.z, 2*f.z, 2*f.z)
	dc.Stroke()
}

func (md *Mandala) drawFinisterreCircle(dc *gg.Context, f *frame) {
	dc.SetColor(finisterreColor)
	dc.SetLineWidth(heavy)
	dc.DrawArc(0, 0, f.circleRadius(), 0, math.Tau)
	dc.Stroke()
}

// floorString formats v floored to the given number of decimals, without
// trailing zeros: 23.4499 -> "23.44", 2.0 -> "2".
func floorString(v float64, decimals int) string {
	scale := gomath.Pow(10, float64(decimals))
	return strconv.FormatFloat(gomath.Floor(v*scale)/scale, 'f', -1, 64)
}
