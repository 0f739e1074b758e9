// Package ui2d provides a simple 2D rendering layer using OpenGL: solid
// quads and lines plus textured quads, drawn in submission order.
package ui2d

import (
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/mandala/internal/engine/shader"
	"github.com/Faultbox/mandala/pkg/math"
)

const (
	solidStride = 6 // x, y, r, g, b, a
	imageStride = 4 // x, y, u, v
)

// drawCmd is one entry of the frame's draw list. Consecutive solid
// primitives share a command; every image gets its own.
type drawCmd struct {
	texture uint32 // 0 for solid geometry
	first   int32  // first vertex
	count   int32
}

// Renderer handles 2D rendering with OpenGL. Coordinates are window
// screen coordinates with the origin at the top left.
type Renderer struct {
	screenWidth  int
	screenHeight int

	solidShader *shader.Program
	imageShader *shader.Program

	solidVAO uint32
	solidVBO uint32
	imageVAO uint32
	imageVBO uint32

	solidVertices []float32
	imageVertices []float32
	cmds          []drawCmd
}

// New creates a new 2D renderer for a screen of the given size.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		screenWidth:   width,
		screenHeight:  height,
		solidVertices: make([]float32, 0, 4096),
		imageVertices: make([]float32, 0, 256),
	}

	var err error
	r.solidShader, err = shader.New("solid", solidVertexShader, solidFragmentShader)
	if err != nil {
		return nil, err
	}
	r.imageShader, err = shader.New("image", imageVertexShader, imageFragmentShader)
	if err != nil {
		r.solidShader.Delete()
		return nil, err
	}

	r.solidVAO, r.solidVBO = createBuffers(solidStride, 4)
	r.imageVAO, r.imageVBO = createBuffers(imageStride, 2)

	return r, nil
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.screenWidth = width
	r.screenHeight = height
}

// GetScreenSize returns the current screen dimensions.
func (r *Renderer) GetScreenSize() (int, int) {
	return r.screenWidth, r.screenHeight
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	r.solidVertices = r.solidVertices[:0]
	r.imageVertices = r.imageVertices[:0]
	r.cmds = r.cmds[:0]
}

// End renders everything queued since Begin, in order.
func (r *Renderer) End() {
	if len(r.cmds) == 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := math.Ortho(0, float32(r.screenWidth), float32(r.screenHeight), 0, -1, 1)

	if len(r.solidVertices) > 0 {
		gl.BindBuffer(gl.ARRAY_BUFFER, r.solidVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(r.solidVertices)*4, unsafe.Pointer(&r.solidVertices[0]), gl.STREAM_DRAW)
	}
	if len(r.imageVertices) > 0 {
		gl.BindBuffer(gl.ARRAY_BUFFER, r.imageVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(r.imageVertices)*4, unsafe.Pointer(&r.imageVertices[0]), gl.STREAM_DRAW)
	}

	r.solidShader.Use()
	r.solidShader.SetMat4("uProjection", proj.Ptr())
	r.imageShader.Use()
	r.imageShader.SetMat4("uProjection", proj.Ptr())
	r.imageShader.SetInt("uTexture", 0)
	gl.ActiveTexture(gl.TEXTURE0)

	for _, cmd := range r.cmds {
		if cmd.texture == 0 {
			// Straight alpha vertex colors
			gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
			r.solidShader.Use()
			gl.BindVertexArray(r.solidVAO)
		} else {
			// image.RGBA pixels are alpha-premultiplied
			gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
			r.imageShader.Use()
			gl.BindTexture(gl.TEXTURE_2D, cmd.texture)
			gl.BindVertexArray(r.imageVAO)
		}
		gl.DrawArrays(gl.TRIANGLES, cmd.first, cmd.count)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	if r.solidVAO != 0 {
		gl.DeleteVertexArrays(1, &r.solidVAO)
	}
	if r.solidVBO != 0 {
		gl.DeleteBuffers(1, &r.solidVBO)
	}
	if r.imageVAO != 0 {
		gl.DeleteVertexArrays(1, &r.imageVAO)
	}
	if r.imageVBO != 0 {
		gl.DeleteBuffers(1, &r.imageVBO)
	}
	r.solidShader.Delete()
	r.imageShader.Delete()
}

// DrawRect draws a filled rectangle.
func (r *Renderer) DrawRect(x, y, width, height float32, color Color) {
	r.addSolid(
		x, y, x+width, y, x+width, y+height,
		x, y, x+width, y+height, x, y+height,
		color,
	)
}

// DrawRectOutline draws a rectangle outline.
func (r *Renderer) DrawRectOutline(x, y, width, height, thickness float32, color Color) {
	r.DrawRect(x, y, width, thickness, color)
	r.DrawRect(x, y+height-thickness, width, thickness, color)
	r.DrawRect(x, y+thickness, thickness, height-thickness*2, color)
	r.DrawRect(x+width-thickness, y+thickness, thickness, height-thickness*2, color)
}

// DrawLine draws a straight line as a quad of the given thickness.
func (r *Renderer) DrawLine(x0, y0, x1, y1, thickness float32, color Color) {
	dx, dy := x1-x0, y1-y0
	length := float32(gomath.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	// Half-thickness normal
	nx := -dy / length * thickness / 2
	ny := dx / length * thickness / 2

	r.addSolid(
		x0+nx, y0+ny, x1+nx, y1+ny, x1-nx, y1-ny,
		x0+nx, y0+ny, x1-nx, y1-ny, x0-nx, y0-ny,
		color,
	)
}

// DrawTriangle draws a filled triangle.
func (r *Renderer) DrawTriangle(x0, y0, x1, y1, x2, y2 float32, color Color) {
	r.solidVertices = append(r.solidVertices,
		x0, y0, color.R, color.G, color.B, color.A,
		x1, y1, color.R, color.G, color.B, color.A,
		x2, y2, color.R, color.G, color.B, color.A,
	)
	r.extend(0, 3)
}

// DrawImage draws a texture stretched over the rectangle. The texture's
// first row is drawn at the top.
func (r *Renderer) DrawImage(x, y, width, height float32, textureID uint32) {
	if textureID == 0 {
		return
	}
	r.imageVertices = append(r.imageVertices,
		x, y, 0, 0,
		x+width, y, 1, 0,
		x+width, y+height, 1, 1,
		x, y, 0, 0,
		x+width, y+height, 1, 1,
		x, y+height, 0, 1,
	)
	r.cmds = append(r.cmds, drawCmd{
		texture: textureID,
		first:   int32(len(r.imageVertices)/imageStride - 6),
		count:   6,
	})
}

// addSolid queues two triangles given as six x, y pairs.
func (r *Renderer) addSolid(x0, y0, x1, y1, x2, y2, x3, y3, x4, y4, x5, y5 float32, c Color) {
	r.solidVertices = append(r.solidVertices,
		x0, y0, c.R, c.G, c.B, c.A,
		x1, y1, c.R, c.G, c.B, c.A,
		x2, y2, c.R, c.G, c.B, c.A,
		x3, y3, c.R, c.G, c.B, c.A,
		x4, y4, c.R, c.G, c.B, c.A,
		x5, y5, c.R, c.G, c.B, c.A,
	)
	r.extend(0, 6)
}

// extend records count new vertices, merging into the previous command
// when it is of the same kind.
func (r *Renderer) extend(texture uint32, count int32) {
	if n := len(r.cmds); n > 0 && r.cmds[n-1].texture == texture {
		r.cmds[n-1].count += count
		return
	}
	r.cmds = append(r.cmds, drawCmd{
		texture: texture,
		first:   int32(len(r.solidVertices)/solidStride) - count,
		count:   count,
	})
}

// createBuffers creates a VAO/VBO pair whose layout is a 2-float position
// followed by extra floats at location 1.
func createBuffers(stride, extra int32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, extra, gl.FLOAT, false, stride*4, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

const solidVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uProjection;

out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
	vColor = aColor;
}
`

const solidFragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`

const imageVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;

uniform mat4 uProjection;

out vec2 vTexCoord;

void main() {
	gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
	vTexCoord = aTexCoord;
}
`

const imageFragmentShader = `
#version 410 core

uniform sampler2D uTexture;

in vec2 vTexCoord;
out vec4 FragColor;

void main() {
	FragColor = texture(uTexture, vTexCoord);
}
`
