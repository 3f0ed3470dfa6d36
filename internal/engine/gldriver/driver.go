// Package gldriver implements the selection renderer's graphics driver on OpenGL.
//
// It stands in for the host renderer: a default drawing mode, a small
// tag-indexed shader table, argument registers mapped to uniforms, and
// client-side vertex submission streamed through one dynamic buffer.
package gldriver

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/forgelight/internal/engine/gldriver/shaders"
	"github.com/Faultbox/forgelight/internal/forge/highlight"
	"github.com/Faultbox/forgelight/internal/logger"
	"github.com/Faultbox/forgelight/pkg/math"
)

// maxStreamVertices bounds a single DrawPrimitive submission.
const maxStreamVertices = 64

// DefaultOpacity is the face opacity of selection boxes.
const DefaultOpacity = 0.5

// Driver is an OpenGL highlight.GraphicsDriver.
// IMPORTANT: create and use it on the thread owning the GL context.
type Driver struct {
	shaders map[highlight.TagIndex]*program
	active  *program

	vao    uint32
	vbo    uint32
	stride int

	viewProj mgl32.Mat4
	opacity  float32

	log *zap.Logger
}

// New loads OpenGL, compiles the selection shader and creates the streaming buffers.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New() (*Driver, error) {
	d := &Driver{
		shaders:  make(map[highlight.TagIndex]*program),
		viewProj: mgl32.Ident4(),
		opacity:  DefaultOpacity,
		log:      logger.Named("gldriver"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	d.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	prog, err := compileProgram(shaders.SelectionVertexShader, shaders.SelectionFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("selection shader: %w", err)
	}
	d.shaders[highlight.SelectionShaderTag] = prog

	gl.GenVertexArrays(1, &d.vao)
	gl.GenBuffers(1, &d.vbo)
	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, maxStreamVertices*highlight.VertexStride, nil, gl.STREAM_DRAW)
	d.setLayout(highlight.VertexStride)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	d.log.Info("graphics driver ready",
		zap.Uint32("selection_program", prog.id),
		zap.Int("stride", d.stride),
	)
	return d, nil
}

// Close releases GL resources.
func (d *Driver) Close() {
	for _, p := range d.shaders {
		p.delete()
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
	}
}

// Resize updates the viewport.
func (d *Driver) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	d.log.Debug("viewport resized", zap.Int("width", width), zap.Int("height", height))
}

// Begin clears the frame.
func (d *Driver) Begin() {
	gl.DepthMask(true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetViewProjection sets the camera matrix used by every following draw.
func (d *Driver) SetViewProjection(m mgl32.Mat4) {
	d.viewProj = m
}

// SetOpacity sets the face opacity of following draws.
func (d *Driver) SetOpacity(opacity float32) {
	d.opacity = opacity
}

// setLayout points the position/UV attributes at a vertex stride.
// The VAO and VBO must be bound.
func (d *Driver) setLayout(stride int) {
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(stride), 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, int32(stride), 3*4)
	gl.EnableVertexAttribArray(1)
	d.stride = stride
}

// UseDefaultShader implements highlight.GraphicsDriver.
// Only the implicit geometry mode is available.
func (d *Driver) UseDefaultShader(mode highlight.DefaultShader) bool {
	if mode != highlight.DefaultShaderImplicit {
		return false
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)
	gl.Disable(gl.CULL_FACE)
	return true
}

// LookupShader implements highlight.GraphicsDriver.
func (d *Driver) LookupShader(tag highlight.TagIndex) (highlight.ShaderHandle, bool) {
	p, ok := d.shaders[tag]
	if !ok {
		return 0, false
	}
	return highlight.ShaderHandle(p.id), true
}

// ActivateShader implements highlight.GraphicsDriver.
func (d *Driver) ActivateShader(tag highlight.TagIndex, shader highlight.ShaderHandle, primitive highlight.PrimitiveType) {
	p, ok := d.shaders[tag]
	if !ok || highlight.ShaderHandle(p.id) != shader {
		d.active = nil
		return
	}
	d.active = p
	gl.UseProgram(p.id)
	gl.UniformMatrix4fv(p.locViewProj, 1, false, &d.viewProj[0])
	gl.Uniform1f(p.locOpacity, d.opacity)
	gl.BindVertexArray(d.vao)
}

// SetArgument implements highlight.GraphicsDriver.
func (d *Driver) SetArgument(slot highlight.ArgumentSlot, values []float32) {
	if d.active == nil {
		return
	}
	switch slot {
	case highlight.ArgumentTransform:
		if len(values) >= 12 {
			// Three 4-float rows upload as the three columns of a mat3x4.
			gl.UniformMatrix3x4fv(d.active.locTrans, 1, false, &values[0])
		}
	case highlight.ArgumentColor:
		if len(values) >= 4 {
			gl.Uniform4fv(d.active.locColor, 1, &values[0])
		}
	}
}

// DrawPrimitive implements highlight.GraphicsDriver.
func (d *Driver) DrawPrimitive(primitive highlight.PrimitiveType, primitiveCount int, vertices []highlight.Vertex, stride int) {
	if d.active == nil || len(vertices) == 0 {
		return
	}
	mode, count, ok := primitiveMode(primitive, primitiveCount)
	if !ok || count > len(vertices) || count > maxStreamVertices {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	if stride != d.stride {
		d.setLayout(stride)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, count*stride, unsafe.Pointer(&vertices[0]))
	gl.DrawArrays(mode, 0, int32(count))
}

// Finish restores the GL state changed by UseDefaultShader.
func (d *Driver) Finish() {
	gl.DepthMask(true)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	d.active = nil
}

// DrawSolidBox draws a box with the selection program outside any hook.
// The viewer uses it for the host's own geometry.
func (d *Driver) DrawSolidBox(transform math.Basis, color [4]float32) {
	p := d.shaders[highlight.SelectionShaderTag]
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.BLEND)

	d.ActivateShader(highlight.SelectionShaderTag, highlight.ShaderHandle(p.id), highlight.PrimitiveTriangleStrip)
	gl.Uniform1f(p.locOpacity, 1)

	rows := transform.Rows()
	d.SetArgument(highlight.ArgumentTransform, rows[:])
	d.SetArgument(highlight.ArgumentColor, color[:])
	for face := 0; face < highlight.FaceCount; face++ {
		d.DrawPrimitive(highlight.PrimitiveTriangleStrip, highlight.FacePrimitiveCount, highlight.Face(face), highlight.VertexStride)
	}
	d.Finish()
}

// primitiveMode maps a host primitive to a GL mode and vertex count.
func primitiveMode(primitive highlight.PrimitiveType, primitiveCount int) (uint32, int, bool) {
	if primitiveCount <= 0 {
		return 0, 0, false
	}
	switch primitive {
	case highlight.PrimitiveTriangleStrip:
		return gl.TRIANGLE_STRIP, primitiveCount + 2, true
	default:
		return 0, 0, false
	}
}
