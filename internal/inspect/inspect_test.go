package inspect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Faultbox/forgelight/internal/forge/highlight"
	"github.com/Faultbox/forgelight/internal/forge/objects"
	"github.com/Faultbox/forgelight/internal/forge/variant"
	"github.com/Faultbox/forgelight/internal/host"
	"github.com/Faultbox/forgelight/pkg/math"
)

// testWorld has objects 1..3 placed in a variant, with 2 and 3 selected.
func testWorld() *host.World {
	w := host.NewWorld()
	w.Variant = variant.New("Test")
	for i := objects.Index(1); i <= 3; i++ {
		b := math.IdentityBasis()
		b.Position = math.Vec3{Y: float32(i) * 4}
		w.Objects.Add(i, objects.Object{
			Transform: b,
			Bounds:    math.AABB{Max: math.Vec3{X: 2, Y: 2, Z: 2}},
		})
		w.Variant.Place(i, 0)
	}
	w.Selection.Add(2)
	w.Selection.Add(3)
	w.PlayerUnit = 1
	return w
}

func TestRun(t *testing.T) {
	tests := []struct {
		name        string
		renderer    highlight.RendererType
		enabled     bool
		wantBoxes   int
		wantDraws   int
		wantMarkers int
	}{
		{"implicit", highlight.RendererImplicit, true, 2, 2 * highlight.FaceCount, 0},
		{"implicit disabled", highlight.RendererImplicit, false, 2, 0, 0},
		{"special hud", highlight.RendererSpecialHud, true, 0, 0, 2},
		{"special hud disabled", highlight.RendererSpecialHud, false, 0, 0, 0},
		{"none", highlight.RendererNone, true, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Run(testWorld(), Options{Ticks: 5, TickRate: 60, Renderer: tt.renderer, Enabled: tt.enabled})

			if len(report.Frames) != 5 {
				t.Fatalf("frames = %d, want 5", len(report.Frames))
			}
			last := report.Last()
			if last.Tick != 5 {
				t.Errorf("last tick = %d, want 5", last.Tick)
			}
			if last.Boxes != tt.wantBoxes || last.Draws != tt.wantDraws || last.Markers != tt.wantMarkers {
				t.Errorf("boxes/draws/markers = %d/%d/%d, want %d/%d/%d",
					last.Boxes, last.Draws, last.Markers, tt.wantBoxes, tt.wantDraws, tt.wantMarkers)
			}
			if report.Violations != 0 {
				t.Errorf("violations = %d, want 0", report.Violations)
			}
		})
	}
}

func TestRunSpecialHUDActivatesMarkerType(t *testing.T) {
	report := Run(testWorld(), Options{Ticks: 1, TickRate: 60, Renderer: highlight.RendererSpecialHud, Enabled: true})
	active := report.Last().Active
	if active[highlight.SpecialHUDMarkerType] != 1 {
		t.Errorf("Active = %v, want type %d set", active, highlight.SpecialHUDMarkerType)
	}
	// Host logic still runs: the player shares the cluster with other objects.
	if active[0] != 1 {
		t.Errorf("Active[0] = %d, want host unit marker", active[0])
	}
}

func TestRunPhaseAdvances(t *testing.T) {
	report := Run(testWorld(), Options{Ticks: 3, TickRate: 10, Renderer: highlight.RendererImplicit, Enabled: true})
	for i, f := range report.Frames {
		want := float32(i+1) * 0.1
		if diff := f.Phase - want; diff > 1e-5 || diff < -1e-5 {
			t.Errorf("frame %d phase = %v, want %v", i, f.Phase, want)
		}
	}
}

func TestReportPrint(t *testing.T) {
	report := Run(testWorld(), Options{Ticks: 2, TickRate: 60, Renderer: highlight.RendererImplicit, Enabled: true})

	var buf bytes.Buffer
	if err := report.Print(&buf); err != nil {
		t.Fatalf("Print: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"TICK", "renderer=implicit", "frames=2", "boxes=2", "draws=12", "markers=0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReportLastEmpty(t *testing.T) {
	if got := (Report{}).Last(); got != (Frame{}) {
		t.Errorf("Last() = %+v, want zero", got)
	}
}
