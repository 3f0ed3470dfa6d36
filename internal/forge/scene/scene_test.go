package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/forgelight/internal/forge/objects"
	"github.com/Faultbox/forgelight/pkg/math"
)

const sampleScene = `
variant: Sandbox
player: 1
objects:
  - id: 1
    position: [0, 0, 0]
    bounds: {min: [-0.5, -0.5, 0], max: [0.5, 0.5, 2]}
  - id: 7
    position: [5, 0, 0]
    forward: [0, 1, 0]
    up: [0, 0, 1]
    bounds: {min: [-1, -1, -1], max: [1, 1, 1]}
    placed: true
    selected: true
  - id: 3
    position: [0, 4, 0]
    bounds: {min: [-2, -1, 0], max: [2, 1, 1]}
    placed: true
`

func TestParse(t *testing.T) {
	w, err := Parse([]byte(sampleScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	ids := w.Objects.Indices()
	want := []objects.Index{1, 7, 3}
	if len(ids) != len(want) {
		t.Fatalf("objects = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("object %d = %v, want %v", i, ids[i], want[i])
		}
	}

	if w.Variant == nil || w.Variant.Name != "Sandbox" {
		t.Fatalf("variant = %+v, want Sandbox", w.Variant)
	}
	used := w.Variant.Used()
	if len(used) != 2 || used[0].ObjectIndex != 7 || used[1].ObjectIndex != 3 {
		t.Errorf("placements = %+v, want [7 3]", used)
	}

	if !w.Selection.Contains(7) || w.Selection.Len() != 1 {
		t.Errorf("selection = %v, want [7]", w.Selection.Indices())
	}
	if w.PlayerUnit != 1 {
		t.Errorf("player = %v, want 1", w.PlayerUnit)
	}

	obj, _ := w.Objects.Get(7)
	if obj.Transform.Forward != (math.Vec3{Y: 1}) {
		t.Errorf("object 7 forward = %v, want (0, 1, 0)", obj.Transform.Forward)
	}
	if c := w.Objects.Center(7); c != (math.Vec3{X: 5}) {
		t.Errorf("object 7 center = %v, want (5, 0, 0)", c)
	}
}

func TestParseNoVariant(t *testing.T) {
	w, err := Parse([]byte("objects:\n  - id: 2\n    placed: true\n    bounds: {min: [0,0,0], max: [1,1,1]}\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := w.CurrentMapVariant(); ok {
		t.Error("scene without variant name should leave no variant loaded")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "duplicate id",
			yaml: "objects:\n  - id: 1\n  - id: 1\n",
			want: ErrDuplicateObject,
		},
		{
			name: "unknown player",
			yaml: "player: 9\nobjects:\n  - id: 1\n",
			want: ErrUnknownObject,
		},
		{
			name: "parallel axes",
			yaml: "objects:\n  - id: 1\n    forward: [0, 0, 1]\n    up: [0, 0, 2]\n",
			want: ErrDegenerateAxes,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Parse([]byte("objects: [")); err == nil {
		t.Error("expected decode error for malformed YAML")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("/nonexistent/scene.yaml"); err == nil {
		t.Error("expected error loading missing scene")
	}
}

func TestSaveLoadKeepsLayout(t *testing.T) {
	w, err := Parse([]byte(sampleScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := Save(w, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("scene not written: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Objects.Len() != 3 || loaded.Selection.Len() != 1 || len(loaded.Variant.Used()) != 2 {
		t.Errorf("reloaded scene differs: objects=%d selected=%d placed=%d",
			loaded.Objects.Len(), loaded.Selection.Len(), len(loaded.Variant.Used()))
	}
	if loaded.Objects.Center(7) != w.Objects.Center(7) {
		t.Errorf("object 7 center moved: %v -> %v", w.Objects.Center(7), loaded.Objects.Center(7))
	}
}

func TestLoadSampleScene(t *testing.T) {
	w, err := Load(filepath.Join("..", "..", "..", "scene.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w.Objects.Len() != 5 {
		t.Errorf("objects = %d, want 5", w.Objects.Len())
	}
	if got := w.Selection.Indices(); len(got) != 2 || got[0] != 7 || got[1] != 12 {
		t.Errorf("selection = %v, want [7 12]", got)
	}
	v, ok := w.CurrentMapVariant()
	if !ok || len(v.Used()) != 3 {
		t.Errorf("variant = %v, %v; want 3 placements", v, ok)
	}
	if w.PlayerUnit != objects.Index(1) {
		t.Errorf("player = %v, want 1", w.PlayerUnit)
	}
}
