// Package overlay draws a status line with the character's scale and rotation.
package overlay

import (
	"fmt"

	"spritedemo/internal/graphics"
	"spritedemo/internal/graphics/font"
	"spritedemo/internal/graphics/renderer"
	"spritedemo/internal/graphics/shaders"
	"spritedemo/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const margin = 8

// Overlay renders text on top of the scene
type Overlay struct {
	fontPixels int
	visible    bool
	color      mgl32.Vec3

	atlas     *font.Atlas
	textureID uint32
	shader    *graphics.Shader
	vao       uint32
	vbo       uint32
}

// NewOverlay creates the overlay; nothing touches GL until Init
func NewOverlay(fontPixels int, visible bool) *Overlay {
	return &Overlay{
		fontPixels: fontPixels,
		visible:    visible,
		color:      mgl32.Vec3{1, 1, 1},
	}
}

// Init bakes the font atlas, uploads it as a GL_RED texture and compiles the text shader
func (o *Overlay) Init() error {
	atlas, err := font.BuildDefaultAtlas(o.fontPixels)
	if err != nil {
		return fmt.Errorf("building font atlas: %w", err)
	}
	o.atlas = atlas

	shader, err := graphics.NewShaderFromSource(shaders.TextVertex, shaders.TextFragment)
	if err != nil {
		return fmt.Errorf("text shader: %w", err)
	}
	o.shader = shader

	img := atlas.Image
	gl.GenTextures(1, &o.textureID)
	gl.BindTexture(gl.TEXTURE_2D, o.textureID)
	// Ensure tight byte alignment for single-channel upload
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return nil
}

// Toggle flips visibility and returns the new state
func (o *Overlay) Toggle() bool {
	o.visible = !o.visible
	return o.visible
}

// Render draws the status lines in the top-left corner
func (o *Overlay) Render(ctx renderer.RenderContext) {
	if !o.visible {
		return
	}
	defer profiling.Track("overlay.Render")()

	lineStep := float32(o.atlas.LineHeight)
	y := ctx.Camera.Height - margin - lineStep
	var vertices []float32
	for _, line := range ctx.Scene.StatusLines() {
		vertices = append(vertices, o.atlas.Layout(line, margin, y, 1)...)
		y -= lineStep
	}
	if len(vertices) == 0 {
		return
	}

	o.shader.Use()
	o.shader.SetMatrix4("projection", ctx.Proj)
	o.shader.SetVector3("textColor", o.color)
	o.shader.SetInt("text", 0)

	gl.BindTexture(gl.TEXTURE_2D, o.textureID)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)

	// Orphan the buffer each frame to avoid GPU stalls on dynamic updates
	size := len(vertices) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/4))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// SetViewport is a no-op: text is laid out in logical pixels
func (o *Overlay) SetViewport(width, height int) {}

// Dispose frees the atlas texture, buffers and shader
func (o *Overlay) Dispose() {
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
		o.vao = 0
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
		o.vbo = 0
	}
	if o.textureID != 0 {
		gl.DeleteTextures(1, &o.textureID)
		o.textureID = 0
	}
	if o.shader != nil {
		o.shader.Delete()
	}
}
