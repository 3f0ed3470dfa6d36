package highlight

import (
	"github.com/Faultbox/forgelight/internal/engine/hooks"
	"github.com/Faultbox/forgelight/internal/forge/objects"
	"github.com/Faultbox/forgelight/internal/forge/variant"
	"github.com/Faultbox/forgelight/pkg/math"
)

// Selection is the set of objects the user currently has selected.
type Selection interface {
	Contains(id objects.Index) bool
	Any() bool
}

// ObjectTable enumerates live objects and exposes their geometry.
// Range must only yield ids with valid data.
type ObjectTable interface {
	Range(fn func(id objects.Index) bool)
	Transform(id objects.Index) math.Basis
	BoundingBox(id objects.Index) math.AABB
	Center(id objects.Index) math.Vec3
}

// MapVariantSource returns the loaded map variant, if any.
type MapVariantSource interface {
	CurrentMapVariant() (*variant.MapVariant, bool)
}

// Clock reports the fixed simulation step.
type Clock interface {
	SecondsPerTick() float32
}

// TagIndex identifies a tag (shader definition) in the host's tag cache.
type TagIndex uint32

// ShaderHandle is an opaque shader definition returned by LookupShader.
type ShaderHandle uintptr

// DefaultShader selects one of the host's built-in drawing modes.
type DefaultShader int

// PrimitiveType is a host primitive topology.
type PrimitiveType int

// ArgumentSlot is a host shader argument register.
type ArgumentSlot int

const (
	// SelectionShaderTag is the shader used for implicit selection boxes.
	SelectionShaderTag TagIndex = 0x303c

	// DefaultShaderImplicit is the drawing mode for implicit geometry.
	DefaultShaderImplicit DefaultShader = 64

	// PrimitiveTriangleStrip draws n primitives from n+2 vertices.
	PrimitiveTriangleStrip PrimitiveType = 5

	// ArgumentColor takes 4 floats (RGBA).
	ArgumentColor ArgumentSlot = 20
	// ArgumentTransform takes 12 floats (math.Basis.Rows layout).
	ArgumentTransform ArgumentSlot = 24
)

// GraphicsDriver is the subset of the host renderer used for world-space boxes.
type GraphicsDriver interface {
	// UseDefaultShader enters a built-in drawing mode; false means it is unavailable.
	UseDefaultShader(shader DefaultShader) bool
	LookupShader(tag TagIndex) (ShaderHandle, bool)
	ActivateShader(tag TagIndex, shader ShaderHandle, primitive PrimitiveType)
	SetArgument(slot ArgumentSlot, values []float32)
	DrawPrimitive(primitive PrimitiveType, primitiveCount int, vertices []Vertex, stride int)
}

// HUDPrimitives are the host HUD renderer's internal state calls.
// The highlight marker is produced by replaying them in a fixed order.
type HUDPrimitives interface {
	BeginMarker()
	PushCamera()
	BindObject(object objects.Index, context int32, mode, visible int8)
	SetOverlayTarget(target int32)
	SetChannel(channel int32, value uint8)
	SetRenderState(state, value, extra int32)
	SetDrawOrder(layer, order int32)
	PopCamera()
	EndMarker()
}

// Interceptor installs wraps on the two host call sites the renderer needs.
// *hooks.Registry implements it.
type Interceptor interface {
	HookRasterizeImplicitGeometry(wrap func(next hooks.RasterizeFunc) hooks.RasterizeFunc)
	HookSpecialWeaponHUD(wrap func(next hooks.SpecialHUDFunc) hooks.SpecialHUDFunc)
}
