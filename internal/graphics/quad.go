package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Quad vertex layout: position (3), color (3), texcoord (2).
const (
	QuadFloatsPerVertex = 8
	QuadVertexCount     = 6

	quadStride = QuadFloatsPerVertex * 4
)

// QuadVertices is a unit square centred on the origin, two CCW triangles.
var QuadVertices = []float32{
	// triangle 0
	-0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 0.0, 1.0, // top-left
	-0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0, // bottom-left
	0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, // top-right
	// triangle 1
	-0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0, // bottom-left
	0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 0.0, // bottom-right
	0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, // top-right
}

// Quad owns the VAO/VBO pair for QuadVertices
type Quad struct {
	vao uint32
	vbo uint32
}

// NewQuad uploads QuadVertices and configures the attribute layout
func NewQuad() *Quad {
	q := &Quad{}

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(QuadVertices)*4, gl.Ptr(QuadVertices), gl.STATIC_DRAW)

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	// position
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, quadStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	// color
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, quadStride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	// texcoord
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, quadStride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)

	// unbind to reduce accidental state changes
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return q
}

// Bind makes the quad's VAO current
func (q *Quad) Bind() {
	gl.BindVertexArray(q.vao)
}

// Draw issues the draw call for the bound quad
func (q *Quad) Draw() {
	gl.DrawArrays(gl.TRIANGLES, 0, QuadVertexCount)
}

// Unbind clears the VAO binding
func (q *Quad) Unbind() {
	gl.BindVertexArray(0)
}

// Dispose frees both the vertex array and its buffer
func (q *Quad) Dispose() {
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
		q.vao = 0
	}
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
		q.vbo = 0
	}
}
