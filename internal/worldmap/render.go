package worldmap

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/Faultbox/mandala/internal/solar"
)

// Palette.
var (
	LetterboxColor = color.RGBA{0x1a, 0x1a, 0x1f, 0xff}
	OceanColor     = color.RGBA{0x1d, 0x3d, 0x5c, 0xff}
	GridColor      = color.RGBA{0x4a, 0x6b, 0x8a, 0xff}
	EquatorColor   = color.RGBA{0xf0, 0xc0, 0x40, 0xff}
	TropicColor    = color.RGBA{0xe0, 0x80, 0x40, 0xff}
	PolarColor     = color.RGBA{0x90, 0xd0, 0xf0, 0xff}
)

// Options controls the map raster.
type Options struct {
	Width, Height int     // view size in screen units
	PixelRatio    float64 // raster pixels per screen unit, <= 0 means 1

	GraticuleStep          float64
	ShowReferenceParallels bool
}

// Render draws the map for a view into a new image. The image is
// PixelRatio times the view size; the projection for hit testing is
// NewProjection(Width, Height).
func Render(opts Options) *image.RGBA {
	ratio := opts.PixelRatio
	if !(ratio > 0) {
		ratio = 1
	}
	w := max(int(float64(opts.Width)*ratio+0.5), 0)
	h := max(int(float64(opts.Height)*ratio+0.5), 0)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img
	}

	proj := NewProjection(float64(opts.Width), float64(opts.Height))
	dc := gg.NewContextForRGBA(img)
	dc.Scale(ratio, ratio)
	dc.SetLineCapButt()

	dc.SetColor(LetterboxColor)
	dc.Clear()

	x, y, mw, mh := proj.Bounds()
	dc.SetColor(OceanColor)
	dc.DrawRectangle(x, y, mw, mh)
	dc.Fill()

	dc.SetColor(GridColor)
	dc.SetLineWidth(1)
	for _, l := range Graticule(opts.GraticuleStep) {
		from, to := proj.ToScreen(l.From), proj.ToScreen(l.To)
		dc.DrawLine(from.X, from.Y, to.X, to.Y)
	}
	dc.Stroke()

	if opts.ShowReferenceParallels {
		drawParallels(dc, proj)
	}
	return img
}

func drawParallels(dc *gg.Context, proj Projection) {
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetLineWidth(2)
	dc.SetDash(6, 4)

	for _, p := range solar.ReferenceParallels() {
		from := proj.ToScreen(LatLng{p.LatitudeDeg, -180})
		to := proj.ToScreen(LatLng{p.LatitudeDeg, 180})

		dc.SetColor(ParallelColor(p))
		dc.DrawLine(from.X, from.Y, to.X, to.Y)
		dc.Stroke()
		dc.DrawStringAnchored(p.Name, from.X+4, from.Y-3, 0, 0)
	}
	dc.SetDash()
}

// ParallelColor returns the highlight color of a reference parallel.
func ParallelColor(p solar.Parallel) color.RGBA {
	switch {
	case p.LatitudeDeg == 0:
		return EquatorColor
	case p.LatitudeDeg == solar.ObliquityDeg || p.LatitudeDeg == -solar.ObliquityDeg:
		return TropicColor
	default:
		return PolarColor
	}
}
