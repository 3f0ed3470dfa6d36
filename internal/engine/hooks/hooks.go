// Package hooks provides the host extension points the forge tools attach to.
//
// Each extension point wraps one host routine. Installed wraps receive the
// next function in the chain and decide when (and whether) to call it, so a
// wrap can run before, after or instead of the host's own routine.
package hooks

import (
	"go.uber.org/zap"

	"github.com/Faultbox/forgelight/internal/logger"
)

// SpecialMarkerTypeCount is the number of special HUD marker slots.
const SpecialMarkerTypeCount = 8

// RasterizeFunc is the host's implicit geometry rasterization pass.
type RasterizeFunc func()

// SpecialHUDArgs carries the arguments of the host's special weapon HUD update.
type SpecialHUDArgs struct {
	// Context is the HUD user/viewport the update runs for.
	Context int32
	// UnitObject is the local player's unit.
	UnitObject uint32
	// Flags is passed through untouched.
	Flags int32
	// ObjectsInCluster are the objects near the unit considered for markers.
	ObjectsInCluster []uint32
	// Active receives 1 for every marker type that should be drawn this frame.
	Active *[SpecialMarkerTypeCount]uint8
}

// SpecialHUDFunc is the host's special weapon HUD update routine.
type SpecialHUDFunc func(args *SpecialHUDArgs)

// Chain composes wraps around a base function of type F.
// The last installed wrap is the outermost.
type Chain[F any] struct {
	wraps []func(next F) F
}

// Install adds a wrap to the chain.
func (c *Chain[F]) Install(wrap func(next F) F) {
	c.wraps = append(c.wraps, wrap)
}

// Len returns the number of installed wraps.
func (c *Chain[F]) Len() int {
	return len(c.wraps)
}

// Bind returns base wrapped by every installed wrap.
func (c *Chain[F]) Bind(base F) F {
	fn := base
	for _, w := range c.wraps {
		fn = w(fn)
	}
	return fn
}

// Registry holds the host's extension points and tick callbacks.
type Registry struct {
	rasterize  Chain[RasterizeFunc]
	specialHUD Chain[SpecialHUDFunc]
	ticks      []func()
	log        *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{log: logger.Named("hooks")}
}

// HookRasterizeImplicitGeometry wraps the implicit geometry rasterization pass.
func (r *Registry) HookRasterizeImplicitGeometry(wrap func(next RasterizeFunc) RasterizeFunc) {
	r.rasterize.Install(wrap)
	r.log.Debug("hook installed", zap.String("point", "rasterize_implicit_geometry"), zap.Int("depth", r.rasterize.Len()))
}

// HookSpecialWeaponHUD wraps the special weapon HUD update.
func (r *Registry) HookSpecialWeaponHUD(wrap func(next SpecialHUDFunc) SpecialHUDFunc) {
	r.specialHUD.Install(wrap)
	r.log.Debug("hook installed", zap.String("point", "special_weapon_hud"), zap.Int("depth", r.specialHUD.Len()))
}

// OnTick registers fn to run once per simulation tick, in registration order.
func (r *Registry) OnTick(fn func()) {
	r.ticks = append(r.ticks, fn)
}

// Tick runs every tick callback.
func (r *Registry) Tick() {
	for _, fn := range r.ticks {
		fn()
	}
}

// RasterizeImplicitGeometry returns the hooked version of the host pass.
func (r *Registry) RasterizeImplicitGeometry(original RasterizeFunc) RasterizeFunc {
	return r.rasterize.Bind(original)
}

// SpecialWeaponHUD returns the hooked version of the host HUD update.
func (r *Registry) SpecialWeaponHUD(original SpecialHUDFunc) SpecialHUDFunc {
	return r.specialHUD.Bind(original)
}
