package host

import (
	"go.uber.org/zap"

	"github.com/Faultbox/forgelight/internal/forge/objects"
)

// Marker is one HUD marker composed during a frame.
type Marker struct {
	Object  objects.Index
	Context int32
	// Channels holds the channel values set while the marker was open.
	Channels map[int32]uint8
	// DrawOrder is the (layer, order) pair in effect at EndMarker.
	DrawOrder [2]int32
}

// HUDState is the host HUD renderer's state machine. Forge code drives it
// through highlight.HUDPrimitives; the host composes the result each frame.
type HUDState struct {
	cameraDepth   int
	overlayTarget int32
	renderState   map[int32][2]int32
	open          *Marker
	markers       []Marker

	// violations counts calls made out of protocol order.
	violations int
	log        *zap.Logger
}

// NewHUDState returns an idle HUD.
func NewHUDState(log *zap.Logger) *HUDState {
	return &HUDState{
		renderState: make(map[int32][2]int32),
		log:         log,
	}
}

// BeginFrame drops the markers of the previous frame.
func (h *HUDState) BeginFrame() {
	h.markers = h.markers[:0]
}

// Markers returns the markers composed this frame.
func (h *HUDState) Markers() []Marker {
	return h.markers
}

// CameraDepth returns the number of unpopped camera pushes.
func (h *HUDState) CameraDepth() int {
	return h.cameraDepth
}

// Violations returns how many out-of-order calls were seen.
func (h *HUDState) Violations() int {
	return h.violations
}

// RenderState returns the last value set for a render state.
func (h *HUDState) RenderState(state int32) ([2]int32, bool) {
	v, ok := h.renderState[state]
	return v, ok
}

func (h *HUDState) violation(call string) {
	h.violations++
	h.log.Warn("hud call out of order", zap.String("call", call))
}

// BeginMarker opens a marker.
func (h *HUDState) BeginMarker() {
	if h.open != nil {
		h.violation("BeginMarker")
	}
	h.open = &Marker{Object: objects.None, Channels: make(map[int32]uint8)}
}

// PushCamera saves the camera for overlay drawing.
func (h *HUDState) PushCamera() {
	h.cameraDepth++
}

// BindObject attaches the open marker to an object.
func (h *HUDState) BindObject(object objects.Index, context int32, mode, visible int8) {
	if h.open == nil {
		h.violation("BindObject")
		return
	}
	if visible == 0 {
		return
	}
	h.open.Object = object
	h.open.Context = context
}

// SetOverlayTarget selects the overlay surface.
func (h *HUDState) SetOverlayTarget(target int32) {
	h.overlayTarget = target
}

// SetChannel sets a shader channel on the open marker.
func (h *HUDState) SetChannel(channel int32, value uint8) {
	if h.open == nil {
		h.violation("SetChannel")
		return
	}
	h.open.Channels[channel] = value
}

// SetRenderState sets a raster state value.
func (h *HUDState) SetRenderState(state, value, extra int32) {
	h.renderState[state] = [2]int32{value, extra}
}

// SetDrawOrder sets the draw layer and order of the open marker.
func (h *HUDState) SetDrawOrder(layer, order int32) {
	if h.open == nil {
		h.violation("SetDrawOrder")
		return
	}
	h.open.DrawOrder = [2]int32{layer, order}
}

// PopCamera restores the camera saved by PushCamera.
func (h *HUDState) PopCamera() {
	if h.cameraDepth == 0 {
		h.violation("PopCamera")
		return
	}
	h.cameraDepth--
}

// EndMarker closes the open marker and queues it for composition.
func (h *HUDState) EndMarker() {
	if h.open == nil {
		h.violation("EndMarker")
		return
	}
	h.markers = append(h.markers, *h.open)
	h.open = nil
}

// OverlayTarget returns the overlay surface last selected.
func (h *HUDState) OverlayTarget() int32 {
	return h.overlayTarget
}
