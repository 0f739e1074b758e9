package mandala

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// labelSize is the label font size in logical units.
const labelSize = 12

var (
	goRegularOnce sync.Once
	goRegular     *opentype.Font
	goRegularErr  error
)

// newLabelFace returns a fresh Go Regular face for one Mandala, sized in
// surface pixels (labelSize * ratio). Faces keep glyph buffers and must not
// be shared between renderers; the parsed font can be.
func newLabelFace(log *zap.Logger, ratio float64) font.Face {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = opentype.Parse(goregular.TTF)
	})

	err := goRegularErr
	if err == nil {
		var face font.Face
		face, err = opentype.NewFace(goRegular, &opentype.FaceOptions{
			Size:    labelSize * ratio,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err == nil {
			return face
		}
	}

	log.Warn("label font unavailable, using basic font", zap.Error(err))
	return basicfont.Face7x13
}
