// Package texture uploads CPU raster images to OpenGL textures.
package texture

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture is a 2D RGBA texture mirroring an *image.RGBA. Pixels are stored
// top row first, so the image's y axis maps to increasing v.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// FromRGBA creates a texture and uploads img into it.
func FromRGBA(img *image.RGBA) *Texture {
	t := &Texture{}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	t.Update(img)
	return t
}

// Update re-uploads img. Same-sized images are written in place; a size
// change reallocates the texture storage but keeps the ID.
func (t *Texture) Update(img *image.RGBA) {
	b := img.Bounds()
	if b.Empty() {
		return
	}

	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))

	pix := gl.Ptr(&img.Pix[img.PixOffset(b.Min.X, b.Min.Y)])
	if b.Dx() == t.Width && b.Dy() == t.Height {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(b.Dx()), int32(b.Dy()),
			gl.RGBA, gl.UNSIGNED_BYTE, pix)
	} else {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, pix)
		t.Width, t.Height = b.Dx(), b.Dy()
	}

	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Delete releases the texture.
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
