// Package scene renders the generated surface mesh: the main color pass
// and the offscreen picking pass share one set of GPU buffers.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/surfaceplot/internal/engine/shader"
	"github.com/Faultbox/surfaceplot/internal/engine/scene/shaders"
	"github.com/Faultbox/surfaceplot/internal/engine/surface"
	"github.com/Faultbox/surfaceplot/pkg/math"
)

// Attribute locations shared by both shader programs.
const (
	locPosition     = 0
	locColor        = 1
	locPickingColor = 2
)

// SurfaceRenderer owns the GPU-side copy of the attribute buffers and the
// two shader programs that consume them.
type SurfaceRenderer struct {
	program     uint32
	pickProgram uint32

	locViewProj     int32
	locPickViewProj int32

	vao      uint32
	posVBO   uint32
	colorVBO uint32
	pickVBO  uint32
	ebo      uint32

	indexCount int32
}

// NewSurfaceRenderer compiles the surface and picking programs.
// Requires a current OpenGL context.
func NewSurfaceRenderer() (*SurfaceRenderer, error) {
	sr := &SurfaceRenderer{}

	program, err := shader.CompileProgram(shaders.SurfaceVertexShader, shaders.SurfaceFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("surface shader: %w", err)
	}
	sr.program = program
	sr.locViewProj = shader.GetUniform(program, "uViewProj")

	pickProgram, err := shader.CompileProgram(shaders.PickingVertexShader, shaders.PickingFragmentShader)
	if err != nil {
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("picking shader: %w", err)
	}
	sr.pickProgram = pickProgram
	sr.locPickViewProj = shader.GetUniform(pickProgram, "uViewProj")

	gl.GenVertexArrays(1, &sr.vao)
	gl.BindVertexArray(sr.vao)

	gl.GenBuffers(1, &sr.posVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.posVBO)
	// 4 floats per vertex: x, z, y, validity
	gl.VertexAttribPointerWithOffset(locPosition, 4, gl.FLOAT, false, 16, 0)
	gl.EnableVertexAttribArray(locPosition)

	gl.GenBuffers(1, &sr.colorVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.colorVBO)
	gl.VertexAttribPointerWithOffset(locColor, 4, gl.UNSIGNED_BYTE, true, 4, 0)
	gl.EnableVertexAttribArray(locColor)

	gl.GenBuffers(1, &sr.pickVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.pickVBO)
	gl.VertexAttribPointerWithOffset(locPickingColor, 3, gl.UNSIGNED_BYTE, true, 3, 0)
	gl.EnableVertexAttribArray(locPickingColor)

	gl.GenBuffers(1, &sr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sr.ebo)

	gl.BindVertexArray(0)

	return sr, nil
}

// Upload copies every attribute buffer to the GPU. Call after a full
// recomputation; for scoped changes the per-attribute uploads below avoid
// touching clean buffers.
func (sr *SurfaceRenderer) Upload(b *surface.Buffers) {
	sr.UploadIndices(b)
	sr.UploadPositions(b)
	sr.UploadColors(b)
	sr.UploadPickingColors(b)
}

// UploadIndices copies the triangle index buffer.
func (sr *SurfaceRenderer) UploadIndices(b *surface.Buffers) {
	sr.indexCount = int32(b.IndexCount)
	if len(b.Indices) == 0 {
		return
	}
	gl.BindVertexArray(sr.vao)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(b.Indices)*4, gl.Ptr(b.Indices), gl.STATIC_DRAW)
	gl.BindVertexArray(0)
}

// UploadPositions copies the position buffer.
func (sr *SurfaceRenderer) UploadPositions(b *surface.Buffers) {
	if len(b.Positions) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.posVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.Positions)*4, gl.Ptr(b.Positions), gl.STATIC_DRAW)
}

// UploadColors copies the vertex color buffer.
func (sr *SurfaceRenderer) UploadColors(b *surface.Buffers) {
	if len(b.Colors) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.colorVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.Colors), gl.Ptr(b.Colors), gl.STATIC_DRAW)
}

// UploadPickingColors copies the picking color buffer.
func (sr *SurfaceRenderer) UploadPickingColors(b *surface.Buffers) {
	if len(b.PickingColors) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.pickVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.PickingColors), gl.Ptr(b.PickingColors), gl.STATIC_DRAW)
}

// Draw renders the main color pass.
func (sr *SurfaceRenderer) Draw(viewProj math.Mat4) {
	if sr.indexCount == 0 {
		return
	}
	gl.UseProgram(sr.program)
	gl.UniformMatrix4fv(sr.locViewProj, 1, false, viewProj.Ptr())

	gl.BindVertexArray(sr.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, sr.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// DrawPicking renders the offscreen picking pass with picking colors as
// fragment output. The caller binds the picking framebuffer first.
func (sr *SurfaceRenderer) DrawPicking(viewProj math.Mat4) {
	if sr.indexCount == 0 {
		return
	}
	gl.UseProgram(sr.pickProgram)
	gl.UniformMatrix4fv(sr.locPickViewProj, 1, false, viewProj.Ptr())

	gl.BindVertexArray(sr.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, sr.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Destroy releases all GPU resources.
func (sr *SurfaceRenderer) Destroy() {
	if sr.vao != 0 {
		gl.DeleteVertexArrays(1, &sr.vao)
		sr.vao = 0
	}
	for _, buf := range []*uint32{&sr.posVBO, &sr.colorVBO, &sr.pickVBO, &sr.ebo} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
	if sr.program != 0 {
		gl.DeleteProgram(sr.program)
		sr.program = 0
	}
	if sr.pickProgram != 0 {
		gl.DeleteProgram(sr.pickProgram)
		sr.pickProgram = 0
	}
}
