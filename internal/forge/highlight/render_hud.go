package highlight

import (
	"math"

	"github.com/Faultbox/forgelight/internal/engine/hooks"
	"github.com/Faultbox/forgelight/internal/forge/objects"
)

// SpecialHUDMarkerType is the special HUD marker slot used for selections.
const SpecialHUDMarkerType = 6

// HUD channel that carries the marker type to the marker shader.
const markerTypeChannel = 18

// markerChannelValue encodes a marker type as the 0-255 channel value the
// HUD marker shader expects (types are spread over eighths of the range).
func markerChannelValue(markerType int) uint8 {
	return uint8(math.Floor(float64(markerType) * 255.0 * 0.125))
}

// renderSpecialHUD lights the special HUD marker for every selected placement.
// The host's own update has already run when this is called.
func (r *Renderer) renderSpecialHUD(args *hooks.SpecialHUDArgs) {
	if !r.state.specialHud() || !r.state.enabled {
		return
	}

	mapv, ok := r.deps.Variants.CurrentMapVariant()
	if !ok || mapv == nil {
		return
	}
	sel := r.deps.Selection
	if !sel.Any() {
		return
	}

	for _, placement := range mapv.Used() {
		if !sel.Contains(placement.ObjectIndex) {
			continue
		}
		if args.Active != nil {
			args.Active[SpecialHUDMarkerType] = 1
		}
		r.drawMarker(placement.ObjectIndex, args.Context)
	}
}

// drawMarker replays the host HUD renderer's marker sequence for one object.
// The order and arguments are what the host's own marker path issues.
func (r *Renderer) drawMarker(object objects.Index, context int32) {
	hud := r.deps.HUD

	hud.BeginMarker()
	hud.PushCamera()
	hud.BindObject(object, context, 0, 1)
	hud.SetOverlayTarget(0)
	hud.SetChannel(markerTypeChannel, markerChannelValue(SpecialHUDMarkerType))
	hud.SetRenderState(2, 23, -1)
	hud.SetDrawOrder(0, 1)
	hud.SetRenderState(1, 0, 0)
	hud.SetRenderState(2, 0, 0)
	hud.PopCamera()
	hud.EndMarker()
}

// MarkerSequenceLength is the number of HUD primitive calls per marker.
const MarkerSequenceLength = 11
