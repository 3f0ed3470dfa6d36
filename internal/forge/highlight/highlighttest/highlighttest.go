// Package highlighttest provides recording host services for driving the
// highlight renderer without a real renderer or HUD.
package highlighttest

import (
	"fmt"

	"github.com/Faultbox/forgelight/internal/forge/highlight"
	"github.com/Faultbox/forgelight/internal/forge/objects"
	"github.com/Faultbox/forgelight/internal/forge/variant"
)

// FixedClock is a Clock with a constant step.
type FixedClock float32

// SecondsPerTick implements highlight.Clock.
func (c FixedClock) SecondsPerTick() float32 { return float32(c) }

// Variants is a MapVariantSource returning Variant when it is non-nil.
type Variants struct {
	Variant *variant.MapVariant
}

// CurrentMapVariant implements highlight.MapVariantSource.
func (v *Variants) CurrentMapVariant() (*variant.MapVariant, bool) {
	return v.Variant, v.Variant != nil
}

// Draw is one recorded DrawPrimitive call with the arguments bound at the time.
type Draw struct {
	Primitive      highlight.PrimitiveType
	PrimitiveCount int
	Vertices       []highlight.Vertex
	Stride         int
	Transform      [12]float32
	Color          [4]float32
}

// Activation is one recorded ActivateShader call.
type Activation struct {
	Tag       highlight.TagIndex
	Shader    highlight.ShaderHandle
	Primitive highlight.PrimitiveType
}

// Graphics records every GraphicsDriver call.
type Graphics struct {
	// DefaultShaderAvailable controls UseDefaultShader's result.
	DefaultShaderAvailable bool
	// Shaders maps tags to the handles LookupShader returns.
	Shaders map[highlight.TagIndex]highlight.ShaderHandle

	DefaultShaderRequests []highlight.DefaultShader
	Activations           []Activation
	Draws                 []Draw

	transform [12]float32
	color     [4]float32
}

// NewGraphics returns a driver where the selection shader is available.
func NewGraphics() *Graphics {
	return &Graphics{
		DefaultShaderAvailable: true,
		Shaders: map[highlight.TagIndex]highlight.ShaderHandle{
			highlight.SelectionShaderTag: 1,
		},
	}
}

// Reset forgets recorded calls, keeping availability settings.
func (g *Graphics) Reset() {
	g.DefaultShaderRequests = nil
	g.Activations = nil
	g.Draws = nil
}

// UseDefaultShader implements highlight.GraphicsDriver.
func (g *Graphics) UseDefaultShader(shader highlight.DefaultShader) bool {
	g.DefaultShaderRequests = append(g.DefaultShaderRequests, shader)
	return g.DefaultShaderAvailable
}

// LookupShader implements highlight.GraphicsDriver.
func (g *Graphics) LookupShader(tag highlight.TagIndex) (highlight.ShaderHandle, bool) {
	h, ok := g.Shaders[tag]
	return h, ok
}

// ActivateShader implements highlight.GraphicsDriver.
func (g *Graphics) ActivateShader(tag highlight.TagIndex, shader highlight.ShaderHandle, primitive highlight.PrimitiveType) {
	g.Activations = append(g.Activations, Activation{Tag: tag, Shader: shader, Primitive: primitive})
}

// SetArgument implements highlight.GraphicsDriver.
func (g *Graphics) SetArgument(slot highlight.ArgumentSlot, values []float32) {
	switch slot {
	case highlight.ArgumentTransform:
		copy(g.transform[:], values)
	case highlight.ArgumentColor:
		copy(g.color[:], values)
	}
}

// DrawPrimitive implements highlight.GraphicsDriver.
func (g *Graphics) DrawPrimitive(primitive highlight.PrimitiveType, primitiveCount int, vertices []highlight.Vertex, stride int) {
	g.Draws = append(g.Draws, Draw{
		Primitive:      primitive,
		PrimitiveCount: primitiveCount,
		Vertices:       vertices,
		Stride:         stride,
		Transform:      g.transform,
		Color:          g.color,
	})
}

// Call is one recorded HUD primitive call.
type Call struct {
	Name string
	Args []int64
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// HUD records every HUDPrimitives call.
type HUD struct {
	Calls []Call
}

func (h *HUD) record(name string, args ...int64) {
	h.Calls = append(h.Calls, Call{Name: name, Args: args})
}

// Markers returns how many marker sequences were started.
func (h *HUD) Markers() int {
	n := 0
	for _, c := range h.Calls {
		if c.Name == "BeginMarker" {
			n++
		}
	}
	return n
}

// BoundObjects returns the objects bound by each marker, in call order.
func (h *HUD) BoundObjects() []objects.Index {
	var out []objects.Index
	for _, c := range h.Calls {
		if c.Name == "BindObject" {
			out = append(out, objects.Index(c.Args[0]))
		}
	}
	return out
}

// BeginMarker implements highlight.HUDPrimitives.
func (h *HUD) BeginMarker() { h.record("BeginMarker") }

// PushCamera implements highlight.HUDPrimitives.
func (h *HUD) PushCamera() { h.record("PushCamera") }

// BindObject implements highlight.HUDPrimitives.
func (h *HUD) BindObject(object objects.Index, context int32, mode, visible int8) {
	h.record("BindObject", int64(object), int64(context), int64(mode), int64(visible))
}

// SetOverlayTarget implements highlight.HUDPrimitives.
func (h *HUD) SetOverlayTarget(target int32) { h.record("SetOverlayTarget", int64(target)) }

// SetChannel implements highlight.HUDPrimitives.
func (h *HUD) SetChannel(channel int32, value uint8) {
	h.record("SetChannel", int64(channel), int64(value))
}

// SetRenderState implements highlight.HUDPrimitives.
func (h *HUD) SetRenderState(state, value, extra int32) {
	h.record("SetRenderState", int64(state), int64(value), int64(extra))
}

// SetDrawOrder implements highlight.HUDPrimitives.
func (h *HUD) SetDrawOrder(layer, order int32) { h.record("SetDrawOrder", int64(layer), int64(order)) }

// PopCamera implements highlight.HUDPrimitives.
func (h *HUD) PopCamera() { h.record("PopCamera") }

// EndMarker implements highlight.HUDPrimitives.
func (h *HUD) EndMarker() { h.record("EndMarker") }
