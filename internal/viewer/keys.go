package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/forgelight/internal/forge/highlight"
)

type actionKind int

const (
	actionQuit actionKind = iota
	actionRenderer
	actionToggle
	actionCycle
	actionScreenshot
)

type keyAction struct {
	kind     actionKind
	renderer highlight.RendererType
}

// keyActions maps keys to viewer actions:
// ESC quits, 0/1/2 pick the renderer, H toggles the highlight, Tab moves the
// selection and F12 saves a screenshot.
var keyActions = map[sdl.Scancode]keyAction{
	sdl.SCANCODE_ESCAPE: {kind: actionQuit},
	sdl.SCANCODE_0:      {kind: actionRenderer, renderer: highlight.RendererNone},
	sdl.SCANCODE_1:      {kind: actionRenderer, renderer: highlight.RendererImplicit},
	sdl.SCANCODE_2:      {kind: actionRenderer, renderer: highlight.RendererSpecialHud},
	sdl.SCANCODE_KP_0:   {kind: actionRenderer, renderer: highlight.RendererNone},
	sdl.SCANCODE_KP_1:   {kind: actionRenderer, renderer: highlight.RendererImplicit},
	sdl.SCANCODE_KP_2:   {kind: actionRenderer, renderer: highlight.RendererSpecialHud},
	sdl.SCANCODE_H:      {kind: actionToggle},
	sdl.SCANCODE_TAB:    {kind: actionCycle},
	sdl.SCANCODE_F12:    {kind: actionScreenshot},
}
