// Package highlight draws the forge selection highlight.
//
// Two strategies share one selection: world-space boxes drawn after the host's
// implicit geometry pass, and a special HUD marker lit during the host's
// special weapon HUD update. Update runs once per tick and prepares the boxes;
// the render stages only read what Update left behind.
package highlight

import (
	"go.uber.org/zap"

	"github.com/Faultbox/forgelight/internal/engine/hooks"
	"github.com/Faultbox/forgelight/internal/logger"
)

// Deps are the host services the renderer reads from and draws through.
type Deps struct {
	Selection Selection
	Objects   ObjectTable
	Variants  MapVariantSource
	Clock     Clock
	Graphics  GraphicsDriver
	HUD       HUDPrimitives
}

// Renderer owns the selection snapshot, the color phase and the mode gate.
// All methods must be called from the host's frame thread.
type Renderer struct {
	deps  Deps
	state State

	snapshot     Snapshot
	colorCounter float32

	initialized bool
	log         *zap.Logger
}

// New creates a disabled renderer with RendererNone selected.
func New(deps Deps) *Renderer {
	return &Renderer{
		deps: deps,
		log:  logger.Named("highlight"),
	}
}

// Initialize installs the render stages on the host call sites.
// Only the first call has an effect.
func (r *Renderer) Initialize(ic Interceptor) {
	if r.initialized {
		r.log.Debug("already initialized")
		return
	}
	r.initialized = true

	ic.HookRasterizeImplicitGeometry(func(next hooks.RasterizeFunc) hooks.RasterizeFunc {
		return func() {
			next()
			r.renderImplicit()
		}
	})
	ic.HookSpecialWeaponHUD(func(next hooks.SpecialHUDFunc) hooks.SpecialHUDFunc {
		return func(args *hooks.SpecialHUDArgs) {
			next(args)
			r.renderSpecialHUD(args)
		}
	})

	r.log.Info("selection renderer initialized",
		zap.Stringer("renderer", r.state.rendererType),
		zap.Bool("enabled", r.state.enabled),
	)
}

// SetEnabled sets the master switch.
func (r *Renderer) SetEnabled(enabled bool) {
	if r.state.enabled != enabled {
		r.log.Debug("selection renderer toggled", zap.Bool("enabled", enabled))
	}
	r.state.enabled = enabled
}

// SetRendererType selects the highlight strategy.
func (r *Renderer) SetRendererType(t RendererType) {
	if r.state.rendererType != t {
		r.log.Debug("selection renderer type changed",
			zap.Stringer("from", r.state.rendererType),
			zap.Stringer("to", t),
		)
	}
	r.state.rendererType = t
}

// State returns a copy of the mode gate.
func (r *Renderer) State() State {
	return r.state
}

// Snapshot returns the items prepared by the last implicit Update.
// The slice is only valid until the next Update.
func (r *Renderer) Snapshot() []Item {
	return r.snapshot.Items()
}

// ColorPhase returns the current color animation phase in [0, 2π).
func (r *Renderer) ColorPhase() float32 {
	return r.colorCounter
}
