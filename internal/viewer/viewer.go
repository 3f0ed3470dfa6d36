// Package viewer runs the interactive forge viewer: an SDL window showing a
// scene's objects with the selection highlight drawn through the host hooks.
package viewer

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/forgelight/internal/engine/camera"
	"github.com/Faultbox/forgelight/internal/engine/gldriver"
	"github.com/Faultbox/forgelight/internal/engine/hooks"
	"github.com/Faultbox/forgelight/internal/engine/input"
	"github.com/Faultbox/forgelight/internal/engine/window"
	"github.com/Faultbox/forgelight/internal/forge/highlight"
	"github.com/Faultbox/forgelight/internal/forge/objects"
	"github.com/Faultbox/forgelight/internal/host"
	"github.com/Faultbox/forgelight/internal/logger"
	"github.com/Faultbox/forgelight/pkg/math"
)

// Title is the window title prefix.
const Title = "Forgelight"

// objectColor is the fill color of scene objects.
var objectColor = [4]float32{0.45, 0.47, 0.52, 1}

// Config holds viewer configuration.
type Config struct {
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	TickRate   int
	Renderer   highlight.RendererType
	Enabled    bool

	ScreenshotDir string
}

// Viewer is the main viewer instance.
type Viewer struct {
	config  Config
	running bool

	window *window.Window
	driver *gldriver.Driver
	input  *input.Input
	camera *camera.OrbitCamera

	engine    *host.Engine
	highlight *highlight.Renderer

	log *zap.Logger
}

// New opens the window and wires the highlight renderer into a host engine
// running world.
func New(cfg Config, world *host.World) (*Viewer, error) {
	v := &Viewer{
		config: cfg,
		input:  input.New(),
		camera: camera.NewOrbitCamera(),
		log:    logger.Named("viewer"),
	}
	v.log.Info("initializing viewer",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("objects", world.Objects.Len()),
	)

	// Window first, since the OpenGL context must exist for the driver.
	var err error
	v.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v.driver, err = gldriver.New()
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create graphics driver: %w", err)
	}
	width, height := v.window.DrawableSize()
	v.driver.Resize(width, height)

	reg := hooks.NewRegistry()
	v.engine = host.NewEngine(reg, world, host.NewClock(cfg.TickRate),
		host.WithGeometryPass(v.drawObjects))

	v.highlight = highlight.New(highlight.Deps{
		Selection: world.Selection,
		Objects:   world.Objects,
		Variants:  world,
		Clock:     v.engine.Clock(),
		Graphics:  v.driver,
		HUD:       v.engine.HUD(),
	})
	v.highlight.Initialize(reg)
	reg.OnTick(v.highlight.Update)
	v.highlight.SetRendererType(cfg.Renderer)
	v.highlight.SetEnabled(cfg.Enabled)

	if lo, hi, ok := sceneBounds(world.Objects); ok {
		v.camera.FitToBounds(lo, hi)
	}

	v.log.Info("viewer initialized")
	return v, nil
}

// Run starts the main loop. It returns when the window closes or ESC is pressed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		for _, event := range v.input.Events() {
			v.handleEvent(event)
		}

		v.engine.Advance(dt)
		v.render()
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.window.SetTitle(v.title(frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases the driver and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.driver != nil {
		v.driver.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventWindowResize:
		v.driver.Resize(event.Width, event.Height)
	case input.EventMouseMove:
		if event.ButtonsHeld&sdl.ButtonLMask() != 0 {
			v.camera.HandleDrag(float32(event.RelX), float32(event.RelY))
		}
	case input.EventMouseWheel:
		v.camera.HandleZoom(event.WheelY)
	case input.EventKeyDown:
		v.handleKey(event.Key)
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	action, ok := keyActions[key]
	if !ok {
		return
	}
	switch action.kind {
	case actionQuit:
		v.running = false
	case actionRenderer:
		v.highlight.SetRendererType(action.renderer)
	case actionToggle:
		v.highlight.SetEnabled(!v.highlight.State().Enabled())
	case actionCycle:
		id := v.engine.World().CycleSelection()
		v.log.Debug("selection cycled", zap.Stringer("object", id))
	case actionScreenshot:
		width, height := v.window.DrawableSize()
		name, err := v.driver.Screenshot(v.config.ScreenshotDir, width, height)
		if err != nil {
			v.log.Warn("screenshot failed", zap.Error(err))
			return
		}
		v.log.Info("screenshot saved", zap.String("file", name))
	}
}

func (v *Viewer) render() {
	v.driver.Begin()
	v.driver.SetViewProjection(v.camera.ViewProjection(v.window.Aspect()))
	v.engine.RenderFrame()
	v.driver.Finish()
}

// drawObjects is the host's own implicit geometry: one solid box per object.
func (v *Viewer) drawObjects() {
	table := v.engine.World().Objects
	table.Range(func(id objects.Index) bool {
		size := table.BoundingBox(id).Size()
		box := table.Transform(id).ScaleAxes(size.X, size.Y, size.Z)
		box.Position = table.Center(id)
		v.driver.DrawSolidBox(box, objectColor)
		return true
	})
}

func (v *Viewer) title(fps int) string {
	state := v.highlight.State()
	return fmt.Sprintf("%s | %s enabled=%v | selected=%d boxes=%d markers=%d | %d fps",
		Title,
		state.RendererType(),
		state.Enabled(),
		v.engine.World().Selection.Len(),
		len(v.highlight.Snapshot()),
		len(v.engine.HUD().Markers()),
		fps,
	)
}

// sceneBounds returns the world-space box around every object.
func sceneBounds(table *objects.Table) (mgl32.Vec3, mgl32.Vec3, bool) {
	var lo, hi math.Vec3
	first := true
	table.Range(func(id objects.Index) bool {
		c := table.Center(id)
		half := table.BoundingBox(id).Size().Scale(0.5)
		a, b := c.Sub(half), c.Add(half)
		if first {
			lo, hi = a, b
			first = false
			return true
		}
		lo = math.Vec3{X: min(lo.X, a.X), Y: min(lo.Y, a.Y), Z: min(lo.Z, a.Z)}
		hi = math.Vec3{X: max(hi.X, b.X), Y: max(hi.Y, b.Y), Z: max(hi.Z, b.Z)}
		return true
	})
	if first {
		return mgl32.Vec3{}, mgl32.Vec3{}, false
	}
	return mgl32.Vec3(lo.Array()), mgl32.Vec3(hi.Array()), true
}
