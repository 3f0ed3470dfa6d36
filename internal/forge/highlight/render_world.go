package highlight

import "math"

// Phase offsets of the red, green and blue channels of the color cycle.
const (
	redPhase   = 2
	greenPhase = 0
	bluePhase  = 4
)

// SelectionColor returns the RGBA box color for a color phase.
// Every box drawn in a frame shares it.
func SelectionColor(phase float32) [4]float32 {
	wave := func(offset float64) float32 {
		return float32(math.Sin(float64(phase)+offset))*0.5 + 0.5
	}
	return [4]float32{wave(redPhase), wave(greenPhase), wave(bluePhase), 1}
}

// renderImplicit draws one box per snapshot item. It runs after the host's
// implicit geometry pass.
func (r *Renderer) renderImplicit() {
	if !r.state.implicit() || !r.state.enabled {
		return
	}

	gfx := r.deps.Graphics
	if !gfx.UseDefaultShader(DefaultShaderImplicit) {
		return
	}
	shader, ok := gfx.LookupShader(SelectionShaderTag)
	if !ok {
		return
	}
	gfx.ActivateShader(SelectionShaderTag, shader, PrimitiveTriangleStrip)

	color := SelectionColor(r.colorCounter)
	for i := range r.snapshot.Items() {
		rows := r.snapshot.items[i].Transform.Rows()

		gfx.SetArgument(ArgumentTransform, rows[:])
		gfx.SetArgument(ArgumentColor, color[:])

		for face := 0; face < FaceCount; face++ {
			gfx.DrawPrimitive(PrimitiveTriangleStrip, FacePrimitiveCount, Face(face), VertexStride)
		}
	}
}
