package highlight

import (
	"errors"
	"fmt"
	"strings"
)

// RendererType selects how selected objects are highlighted.
type RendererType int

const (
	// RendererNone draws nothing.
	RendererNone RendererType = iota
	// RendererImplicit draws world-space boxes.
	RendererImplicit
	// RendererSpecialHud lights the special HUD marker for selected placements.
	RendererSpecialHud
)

// ErrUnknownRendererType is returned by ParseRendererType.
var ErrUnknownRendererType = errors.New("unknown renderer type")

func (t RendererType) String() string {
	switch t {
	case RendererNone:
		return "none"
	case RendererImplicit:
		return "implicit"
	case RendererSpecialHud:
		return "special_hud"
	default:
		return fmt.Sprintf("RendererType(%d)", int(t))
	}
}

// ParseRendererType parses the config spelling of a renderer type.
func ParseRendererType(s string) (RendererType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "off":
		return RendererNone, nil
	case "implicit":
		return RendererImplicit, nil
	case "special_hud", "specialhud", "hud":
		return RendererSpecialHud, nil
	}
	return RendererNone, fmt.Errorf("%w: %q", ErrUnknownRendererType, s)
}

// State is the renderer's mode gate. Only the setters write it.
type State struct {
	enabled      bool
	rendererType RendererType
}

// Enabled reports the master switch.
func (s State) Enabled() bool {
	return s.enabled
}

// RendererType reports the active strategy. Values outside the known
// constants are kept as-is and match neither strategy.
func (s State) RendererType() RendererType {
	return s.rendererType
}

// implicit reports whether world-space boxes are the active strategy.
func (s State) implicit() bool {
	return s.rendererType == RendererImplicit
}

// specialHud reports whether the HUD marker is the active strategy.
func (s State) specialHud() bool {
	return s.rendererType == RendererSpecialHud
}
