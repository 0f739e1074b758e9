package popup

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

var (
	cardColor   = color.RGBA{0xff, 0xff, 0xff, 0xf2}
	borderColor = color.RGBA{0x99, 0x99, 0x99, 0xff}
	textColor   = color.RGBA{0x22, 0x22, 0x22, 0xff}
	closeColor  = color.RGBA{0x75, 0x75, 0x75, 0xff}
)

const cornerRadius = 6

// RenderCard rasterizes the popup chrome for a layout: background, text
// lines and close mark, at ratio pixels per screen unit. The image covers
// layout.Box; the content rectangle is left blank.
func (p *Popup) RenderCard(l Layout, ratio float64) *image.RGBA {
	if !(ratio > 0) {
		ratio = 1
	}
	w := max(int(l.Box.W*ratio+0.5), 0)
	h := max(int(l.Box.H*ratio+0.5), 0)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img
	}

	dc := gg.NewContextForRGBA(img)
	dc.Scale(ratio, ratio)

	dc.DrawRoundedRectangle(0.5, 0.5, l.Box.W-1, l.Box.H-1, cornerRadius)
	dc.SetColor(cardColor)
	dc.FillPreserve()
	dc.SetColor(borderColor)
	dc.SetLineWidth(1)
	dc.Stroke()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(textColor)
	for i, line := range p.lines {
		y := Padding + float64(i)*LineHeight
		dc.DrawStringAnchored(line, Padding, y, 0, 1)
	}

	// Close mark, relative to the box.
	cx := l.Close.X - l.Box.X
	cy := l.Close.Y - l.Box.Y
	dc.SetColor(closeColor)
	dc.SetLineWidth(1.5)
	dc.DrawLine(cx+3, cy+3, cx+CloseSize-3, cy+CloseSize-3)
	dc.DrawLine(cx+CloseSize-3, cy+3, cx+3, cy+CloseSize-3)
	dc.Stroke()

	return img
}
