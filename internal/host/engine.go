// Package host is a small stand-in for the game engine the forge tools run in.
//
// It owns the world, a fixed-step clock and the HUD, and pumps frames through
// the hook registry the same way the real engine reaches its hooked call
// sites: ticks first, then the implicit geometry pass, then the HUD update.
package host

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/forgelight/internal/engine/hooks"
	"github.com/Faultbox/forgelight/internal/logger"
)

// unitMarkerType is the marker slot the host lights for nearby objects.
const unitMarkerType = 0

// Engine pumps simulation ticks and frames.
type Engine struct {
	hooks *hooks.Registry
	world *World
	clock Clock
	hud   *HUDState

	// drawGeometry is the host's own implicit geometry, drawn before hooks run.
	drawGeometry func()

	accumulator time.Duration
	ticks       uint64
	frames      uint64

	// Active is the special marker activation array of the last HUD update.
	Active [hooks.SpecialMarkerTypeCount]uint8

	log *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithGeometryPass sets the host's own implicit geometry drawing.
func WithGeometryPass(fn func()) Option {
	return func(e *Engine) {
		e.drawGeometry = fn
	}
}

// NewEngine creates an engine around a registry and world.
func NewEngine(reg *hooks.Registry, world *World, clock Clock, opts ...Option) *Engine {
	log := logger.Named("host")
	e := &Engine{
		hooks: reg,
		world: world,
		clock: clock,
		hud:   NewHUDState(log.Named("hud")),
		log:   log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// World returns the engine's world.
func (e *Engine) World() *World {
	return e.world
}

// Clock returns the simulation clock.
func (e *Engine) Clock() Clock {
	return e.clock
}

// HUD returns the HUD state the forge tools draw into.
func (e *Engine) HUD() *HUDState {
	return e.hud
}

// Ticks returns the number of simulation ticks run.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Frames returns the number of frames rendered.
func (e *Engine) Frames() uint64 {
	return e.frames
}

// Tick runs one simulation tick.
func (e *Engine) Tick() {
	e.ticks++
	e.hooks.Tick()
}

// Advance runs as many ticks as fit in the elapsed real time dt
// and returns how many ran. Leftover time carries over.
func (e *Engine) Advance(dt time.Duration) int {
	e.accumulator += dt
	step := e.clock.TickDuration()
	n := 0
	for e.accumulator >= step {
		e.accumulator -= step
		e.Tick()
		n++
	}
	return n
}

// RenderFrame runs the hooked implicit geometry pass and the hooked HUD update.
func (e *Engine) RenderFrame() {
	e.frames++

	e.hooks.RasterizeImplicitGeometry(e.rasterizeImplicitGeometry)()

	e.hud.BeginFrame()
	e.Active = [hooks.SpecialMarkerTypeCount]uint8{}
	args := &hooks.SpecialHUDArgs{
		Context:          0,
		UnitObject:       uint32(e.world.PlayerUnit),
		ObjectsInCluster: e.cluster(),
		Active:           &e.Active,
	}
	e.hooks.SpecialWeaponHUD(e.updateSpecialWeaponHUD)(args)
}

func (e *Engine) rasterizeImplicitGeometry() {
	if e.drawGeometry != nil {
		e.drawGeometry()
	}
}

// updateSpecialWeaponHUD is the host's own special HUD logic: the unit marker
// lights whenever other objects share the player's cluster.
func (e *Engine) updateSpecialWeaponHUD(args *hooks.SpecialHUDArgs) {
	for _, obj := range args.ObjectsInCluster {
		if obj != args.UnitObject {
			args.Active[unitMarkerType] = 1
			return
		}
	}
}

// cluster returns every live object; the stand-in host has a single cluster.
func (e *Engine) cluster() []uint32 {
	ids := e.world.Objects.Indices()
	out := make([]uint32, len(ids))
	for i, id := range ids {
		out[i] = uint32(id)
	}
	return out
}
