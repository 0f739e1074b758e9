// Package popup is the map popup that shows the mandala for the clicked
// location. It holds the popup state and computes its on-screen layout;
// the chrome is rasterized with gg and the mandala surface is drawn into
// the content rectangle by the caller.
package popup

import (
	"fmt"

	"github.com/Faultbox/mandala/internal/solar"
	"github.com/Faultbox/mandala/internal/worldmap"
	"github.com/Faultbox/mandala/pkg/math"
)

// Layout constants in screen units.
const (
	Padding     = 10
	LineHeight  = 16
	TipHeight   = 10
	TipHalfBase = 8
	CloseSize   = 14
	textGap     = 6
)

// Popup is anchored at a LatLng and starts closed at (0, 0).
type Popup struct {
	anchor   worldmap.LatLng
	open     bool
	lines    []string
	contentW float64
	contentH float64
	revision int
}

// New creates a closed popup whose content area is contentW x contentH.
func New(contentW, contentH int) *Popup {
	return &Popup{
		contentW: float64(max(contentW, 0)),
		contentH: float64(max(contentH, 0)),
		lines:    []string{"Click the map"},
	}
}

// SetLatLng moves the anchor.
func (p *Popup) SetLatLng(ll worldmap.LatLng) {
	p.anchor = ll
}

// LatLng returns the anchor.
func (p *Popup) LatLng() worldmap.LatLng {
	return p.anchor
}

// Open shows the popup.
func (p *Popup) Open() {
	p.open = true
}

// IsOpen reports whether the popup is shown.
func (p *Popup) IsOpen() bool {
	return p.open
}

// Close hides the popup. The anchor and content are kept.
func (p *Popup) Close() {
	p.open = false
}

// Update refreshes the text for new derived values.
func (p *Popup) Update(v solar.Values) {
	p.lines = Describe(p.anchor, v)
	p.revision++
}

// Lines returns the text lines shown above the content.
func (p *Popup) Lines() []string {
	return p.lines
}

// Revision increases with every Update, so callers can tell when the
// rasterized chrome is stale.
func (p *Popup) Revision() int {
	return p.revision
}

// Size returns the popup box size, excluding the tip.
func (p *Popup) Size() (width, height float64) {
	width = p.contentW + 2*Padding
	height = Padding + float64(len(p.lines))*LineHeight + textGap + p.contentH + Padding
	return width, height
}

// Describe formats the values shown for a location.
func Describe(ll worldmap.LatLng, v solar.Values) []string {
	lines := []string{fmt.Sprintf("Lat %.4f°  Lng %.4f°", ll.Lat, ll.Lng)}
	if !v.IsDefined() {
		return append(lines, "Azimuth undefined beyond the polar circles")
	}
	return append(lines, fmt.Sprintf("Azimuth %.2f°  k %.3f", v.NorthAzimuthDeg, v.K))
}

// Rect is an axis-aligned rectangle in screen units.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout is the popup placed on screen.
type Layout struct {
	Box     Rect
	Content Rect // where the mandala surface goes
	Close   Rect

	// Tip triangle: apex at the anchor, base on the box edge.
	Tip     [3]math.Vec2
	Flipped bool // box below the anchor
}

// Rect places the popup over its anchor in a viewW x viewH view. The box
// is centered above the anchor; when it does not fit above, it goes below.
// It is then clamped inside the view and the tip follows the anchor along
// the box edge.
func (p *Popup) Rect(proj worldmap.Projection, viewW, viewH float64) Layout {
	anchor := proj.ToScreen(p.anchor)
	w, h := p.Size()

	l := Layout{}
	x := anchor.X - w/2
	y := anchor.Y - TipHeight - h
	if y < 0 {
		y = anchor.Y + TipHeight
		l.Flipped = true
	}
	x = clamp(x, 0, viewW-w)
	y = clamp(y, 0, viewH-h)

	l.Box = Rect{x, y, w, h}
	l.Content = Rect{
		X: x + Padding,
		Y: y + Padding + float64(len(p.lines))*LineHeight + textGap,
		W: p.contentW,
		H: p.contentH,
	}
	l.Close = Rect{x + w - CloseSize - 2, y + 2, CloseSize, CloseSize}

	tipX := clamp(anchor.X, x+TipHalfBase, x+w-TipHalfBase)
	baseY := y + h
	if l.Flipped {
		baseY = y
	}
	l.Tip = [3]math.Vec2{
		anchor,
		{X: tipX - TipHalfBase, Y: baseY},
		{X: tipX + TipHalfBase, Y: baseY},
	}
	return l
}

// Hit classifies a click against the layout.
type Hit int

const (
	HitNone Hit = iota
	HitBox
	HitClose
)

// HitTest classifies a click at (x, y).
func (l Layout) HitTest(x, y float64) Hit {
	switch {
	case l.Close.Contains(x, y):
		return HitClose
	case l.Box.Contains(x, y):
		return HitBox
	default:
		return HitNone
	}
}

// clamp limits v to [lo, hi]; lo wins when the range is empty.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
