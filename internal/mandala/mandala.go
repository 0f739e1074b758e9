// Package mandala renders the solstice mandala for a latitude onto a
// persistent raster surface.
//
// A Mandala owns one RGBA surface for its whole lifetime. Every Update
// derives the azimuth values for the new latitude, clears the surface and
// repaints it in place; the surface is never reallocated, so callers may
// hold on to Surface() and re-display it after each Update.
//
// Drawing uses logical units with the origin at the surface center and y
// growing downwards. The surface itself is PixelRatio times larger than
// the logical size.
package mandala

import (
	"image"
	gomath "math"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/Faultbox/mandala/internal/logger"
	"github.com/Faultbox/mandala/internal/solar"
)

// Default logical size.
const (
	DefaultWidth  = 200
	DefaultHeight = 200
)

// safeMargin keeps the outer circle clear of the surface edge.
const safeMargin = 10

// Options configures a Mandala.
type Options struct {
	// Width and Height are the logical size. Zero selects the default;
	// negative values produce an empty surface.
	Width  int
	Height int

	// PixelRatio is the number of surface pixels per logical unit
	// (the host's device pixel ratio). Values <= 0 select 1.
	PixelRatio float64

	// Logger receives debug output. Defaults to the global logger.
	Logger *zap.Logger
}

// Mandala is the renderer. It is not safe for concurrent use.
type Mandala struct {
	width       int
	height      int
	pixelRatio  float64
	solarRadius float64

	model   solar.Model
	surface *image.RGBA
	dc      *gg.Context
	face    font.Face
	log     *zap.Logger

	values   solar.Values
	rendered bool
}

// New allocates the surface and sets up the centered, pixel-ratio scaled
// coordinate system. It never fails: bad sizes give a degenerate surface.
func New(opts Options) *Mandala {
	width := opts.Width
	if width == 0 {
		width = DefaultWidth
	}
	height := opts.Height
	if height == 0 {
		height = DefaultHeight
	}
	ratio := opts.PixelRatio
	if !(ratio > 0) || gomath.IsInf(ratio, 0) {
		ratio = 1
	}
	log := opts.Logger
	if log == nil {
		log = logger.Named("mandala")
	}

	md := &Mandala{
		width:       width,
		height:      height,
		pixelRatio:  ratio,
		solarRadius: (float64(min(width, height)) - safeMargin) * gomath.Sqrt2 / 4,
		model:       solar.NewModel(),
		log:         log,
	}

	md.surface = image.NewRGBA(image.Rect(0, 0, physical(width, ratio), physical(height, ratio)))
	md.dc = gg.NewContextForRGBA(md.surface)
	md.face = newLabelFace(log, ratio)

	// Base state every draw step starts from.
	md.dc.Scale(ratio, ratio)
	md.dc.Translate(float64(width)/2, float64(height)/2)
	md.dc.SetLineCapButt()
	md.dc.SetFontFace(md.face)

	log.Debug("mandala created",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float64("pixel_ratio", ratio),
		zap.Float64("solar_radius", md.solarRadius),
	)
	return md
}

// physical converts a logical length to whole surface pixels, never negative.
func physical(length int, ratio float64) int {
	return max(int(gomath.Round(float64(length)*ratio)), 0)
}

// Surface returns the drawing surface. It is the same image on every call
// and is only written to by Update.
func (md *Mandala) Surface() *image.RGBA {
	return md.surface
}

// Values returns the quantities derived by the last Update.
// Before the first Update it returns the zero Values.
func (md *Mandala) Values() solar.Values {
	return md.values
}

// Rendered reports whether Update has been called at least once.
func (md *Mandala) Rendered() bool {
	return md.rendered
}

// SolarRadius returns the length of the azimuth ray in logical units.
func (md *Mandala) SolarRadius() float64 {
	return md.solarRadius
}

// PixelRatio returns the surface pixels per logical unit.
func (md *Mandala) PixelRatio() float64 {
	return md.pixelRatio
}

// Size returns the logical width and height.
func (md *Mandala) Size() (int, int) {
	return md.width, md.height
}

// Update derives the values for latitudeDeg and repaints the whole surface.
// It runs to completion and never fails; latitudes where the azimuth is
// undefined leave only the axes on the surface.
func (md *Mandala) Update(latitudeDeg float64) {
	md.values = md.model.Derive(latitudeDeg)
	md.rendered = true

	if md.surface.Bounds().Empty() {
		md.log.Debug("empty surface, nothing to draw", zap.Float64("latitude", latitudeDeg))
		return
	}

	f := newFrame(md.values, md.solarRadius)
	for _, s := range pipeline {
		if s.geometric && !f.finite {
			md.log.Debug("skipping step with non-finite geometry",
				zap.String("step", s.name),
				zap.Float64("latitude", latitudeDeg),
			)
			continue
		}
		md.scoped(func(dc *gg.Context) {
			s.draw(md, dc, &f)
		})
	}

	md.log.Debug("mandala updated",
		zap.Float64("latitude", latitudeDeg),
		zap.Float64("azimuth", md.values.NorthAzimuthDeg),
		zap.Float64("k", md.values.K),
	)
}

// scoped runs fn with a snapshot of the drawing state. Transform, dash,
// color, line width and any unstroked path are restored when fn returns,
// including on panic.
func (md *Mandala) scoped(fn func(dc *gg.Context)) {
	md.dc.Push()
	defer md.dc.Pop()
	defer md.dc.ClearPath()
	fn(md.dc)
}
