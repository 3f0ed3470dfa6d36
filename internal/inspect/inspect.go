// Package inspect drives the selection highlight headlessly and reports what
// it produced each frame.
package inspect

import (
	"fmt"
	"io"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/Faultbox/forgelight/internal/engine/hooks"
	"github.com/Faultbox/forgelight/internal/forge/highlight"
	"github.com/Faultbox/forgelight/internal/forge/highlight/highlighttest"
	"github.com/Faultbox/forgelight/internal/host"
	"github.com/Faultbox/forgelight/internal/logger"
)

// Options controls a headless run.
type Options struct {
	Ticks    int
	TickRate int
	Renderer highlight.RendererType
	Enabled  bool
}

// Frame is what one tick plus one frame produced.
type Frame struct {
	Tick    uint64
	Boxes   int // snapshot items after the tick
	Draws   int // DrawPrimitive calls issued by the highlight
	Markers int // HUD markers composed
	Phase   float32
	Active  [hooks.SpecialMarkerTypeCount]uint8
}

// Report is the result of a headless run.
type Report struct {
	Renderer   highlight.RendererType
	Enabled    bool
	Frames     []Frame
	Violations int
}

// Run ticks world opts.Ticks times, rendering one frame after each tick into
// a recording graphics driver and the host HUD.
func Run(world *host.World, opts Options) Report {
	log := logger.Named("inspect")

	reg := hooks.NewRegistry()
	gfx := highlighttest.NewGraphics()
	engine := host.NewEngine(reg, world, host.NewClock(opts.TickRate))

	r := highlight.New(highlight.Deps{
		Selection: world.Selection,
		Objects:   world.Objects,
		Variants:  world,
		Clock:     engine.Clock(),
		Graphics:  gfx,
		HUD:       engine.HUD(),
	})
	r.Initialize(reg)
	reg.OnTick(r.Update)
	r.SetRendererType(opts.Renderer)
	r.SetEnabled(opts.Enabled)

	report := Report{
		Renderer: opts.Renderer,
		Enabled:  opts.Enabled,
		Frames:   make([]Frame, 0, opts.Ticks),
	}
	for i := 0; i < opts.Ticks; i++ {
		gfx.Reset()
		engine.Tick()
		engine.RenderFrame()

		report.Frames = append(report.Frames, Frame{
			Tick:    engine.Ticks(),
			Boxes:   len(r.Snapshot()),
			Draws:   len(gfx.Draws),
			Markers: len(engine.HUD().Markers()),
			Phase:   r.ColorPhase(),
			Active:  engine.Active,
		})
	}
	report.Violations = engine.HUD().Violations()

	log.Info("headless run finished",
		zap.Stringer("renderer", opts.Renderer),
		zap.Bool("enabled", opts.Enabled),
		zap.Int("ticks", opts.Ticks),
		zap.Int("violations", report.Violations),
	)
	return report
}

// Last returns the final frame, or a zero Frame for an empty run.
func (r Report) Last() Frame {
	if len(r.Frames) == 0 {
		return Frame{}
	}
	return r.Frames[len(r.Frames)-1]
}

// Print writes a per-frame table followed by a summary line.
func (r Report) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TICK\tBOXES\tDRAWS\tMARKERS\tPHASE\tACTIVE")
	for _, f := range r.Frames {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.4f\t%v\n", f.Tick, f.Boxes, f.Draws, f.Markers, f.Phase, f.Active)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	last := r.Last()
	_, err := fmt.Fprintf(w, "\nrenderer=%s enabled=%v frames=%d boxes=%d draws=%d markers=%d violations=%d\n",
		r.Renderer, r.Enabled, len(r.Frames), last.Boxes, last.Draws, last.Markers, r.Violations)
	return err
}
