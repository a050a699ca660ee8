package draw

import (
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// The quad is a unit square around the origin made of two triangles. The
// texture coordinates put the top row of the image (v = 0) at the top of
// the quad.
var (
	quadVertices = [...]float32{
		-0.5, -0.5, 0.5, -0.5, 0.5, 0.5, // triangle 1
		-0.5, -0.5, 0.5, 0.5, -0.5, 0.5, // triangle 2
	}
	quadTexCoords = [...]float32{
		0, 1, 1, 1, 1, 0, // triangle 1
		0, 1, 1, 0, 0, 0, // triangle 2
	}
)

const quadVertexCount = len(quadVertices) / 2

// Renderer draws textured quads with a ShaderProgram. A frame is drawn as
//
//	r.Begin()
//	r.Draw(model, texture) // for every sprite, back to front
//	r.End()
//
// and shown when the UpdateFunction returns.
type Renderer struct {
	program   *ShaderProgram
	positions uint32
	texCoords uint32
}

// NewRenderer creates the vertex buffers for the quad and sets the color
// that Begin clears the screen with.
func NewRenderer(program *ShaderProgram, background Color) *Renderer {
	r := &Renderer{program: program}
	gl.GenBuffers(1, &r.positions)
	gl.GenBuffers(1, &r.texCoords)
	gl.ClearColor(background.R, background.G, background.B, background.A)
	return r
}

// Begin clears the screen and uploads the quad geometry.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.program.Use()
	r.upload(r.positions, r.program.PositionAttribute(), quadVertices[:])
	r.upload(r.texCoords, r.program.TexCoordAttribute(), quadTexCoords[:])
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (r *Renderer) upload(buffer, attribute uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STREAM_DRAW)
	gl.VertexAttribPointer(attribute, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(attribute)
}

// Draw renders the quad with the given model matrix and texture.
func (r *Renderer) Draw(model mgl32.Mat4, texture Texture) {
	r.program.SetModelMatrix(model)
	gl.BindTexture(gl.TEXTURE_2D, texture.ID)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(quadVertexCount))
}

// End disables the vertex attributes that Begin enabled.
func (r *Renderer) End() {
	gl.DisableVertexAttribArray(r.program.PositionAttribute())
	gl.DisableVertexAttribArray(r.program.TexCoordAttribute())
}
