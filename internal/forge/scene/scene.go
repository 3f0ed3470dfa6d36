// Package scene loads forge test scenes from YAML.
//
// A scene lists objects with their orientation and bounds, which of them are
// placed in the map variant, and which start out selected:
//
//	variant: Sandbox
//	player: 1
//	objects:
//	  - id: 7
//	    position: [5, 0, 0]
//	    forward: [1, 0, 0]
//	    up: [0, 0, 1]
//	    bounds: {min: [-1, -1, -1], max: [1, 1, 1]}
//	    placed: true
//	    selected: true
package scene

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/forgelight/internal/forge/objects"
	"github.com/Faultbox/forgelight/internal/forge/variant"
	"github.com/Faultbox/forgelight/internal/host"
	"github.com/Faultbox/forgelight/pkg/math"
)

var (
	// ErrDuplicateObject is returned when two objects share an id.
	ErrDuplicateObject = errors.New("duplicate object id")
	// ErrUnknownObject is returned when the player references a missing object.
	ErrUnknownObject = errors.New("unknown object id")
	// ErrDegenerateAxes is returned when forward and up are parallel or zero.
	ErrDegenerateAxes = errors.New("degenerate object axes")
)

// Vec3 is a YAML [x, y, z] triple.
type Vec3 [3]float32

func (v Vec3) vec() math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Bounds is a YAML bounding box.
type Bounds struct {
	Min Vec3 `yaml:"min"`
	Max Vec3 `yaml:"max"`
}

// Object is one scene object.
type Object struct {
	ID       uint32 `yaml:"id"`
	Position Vec3   `yaml:"position"`
	Forward  *Vec3  `yaml:"forward,omitempty"`
	Up       *Vec3  `yaml:"up,omitempty"`
	Bounds   Bounds `yaml:"bounds"`
	Placed   bool   `yaml:"placed"`
	Selected bool   `yaml:"selected"`
}

// File is the on-disk scene layout.
type File struct {
	// Variant names the map variant; empty means no variant is loaded.
	Variant string   `yaml:"variant"`
	Player  *uint32  `yaml:"player,omitempty"`
	Objects []Object `yaml:"objects"`
}

// Load reads and builds a scene file.
func Load(path string) (*host.World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	w, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return w, nil
}

// Parse builds a world from YAML scene data.
func Parse(data []byte) (*host.World, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return Build(&f)
}

// Build turns a decoded scene into a world. Objects keep file order.
func Build(f *File) (*host.World, error) {
	w := host.NewWorld()
	if f.Variant != "" {
		w.Variant = variant.New(f.Variant)
	}

	for i, o := range f.Objects {
		id := objects.Index(o.ID)
		if _, exists := w.Objects.Get(id); exists {
			return nil, fmt.Errorf("object %d (%v): %w", i, id, ErrDuplicateObject)
		}

		transform, err := orientation(o)
		if err != nil {
			return nil, fmt.Errorf("object %d (%v): %w", i, id, err)
		}
		w.Objects.Add(id, objects.Object{
			Transform: transform,
			Bounds:    math.AABB{Min: o.Bounds.Min.vec(), Max: o.Bounds.Max.vec()},
		})

		if o.Placed && w.Variant != nil {
			if !w.Variant.Place(id, 0) {
				return nil, fmt.Errorf("object %d (%v): placement table full", i, id)
			}
		}
		if o.Selected {
			w.Selection.Add(id)
		}
	}

	if f.Player != nil {
		id := objects.Index(*f.Player)
		if _, ok := w.Objects.Get(id); !ok {
			return nil, fmt.Errorf("player %v: %w", id, ErrUnknownObject)
		}
		w.PlayerUnit = id
	}
	return w, nil
}

func orientation(o Object) (math.Basis, error) {
	forward := math.Vec3{X: 1}
	up := math.Vec3{Z: 1}
	if o.Forward != nil {
		forward = o.Forward.vec()
	}
	if o.Up != nil {
		up = o.Up.vec()
	}
	if forward.Length() == 0 || up.Cross(forward).Length() == 0 {
		return math.Basis{}, ErrDegenerateAxes
	}
	return math.NewBasis(forward, up, o.Position.vec()), nil
}

// Capture converts a world back into a scene file.
func Capture(w *host.World) *File {
	f := &File{}
	placed := map[objects.Index]bool{}
	if w.Variant != nil {
		f.Variant = w.Variant.Name
		for _, p := range w.Variant.Used() {
			placed[p.ObjectIndex] = true
		}
	}
	if w.PlayerUnit != objects.None {
		p := uint32(w.PlayerUnit)
		f.Player = &p
	}

	w.Objects.Range(func(id objects.Index) bool {
		obj, _ := w.Objects.Get(id)
		fwd := Vec3(obj.Transform.Forward.Array())
		up := Vec3(obj.Transform.Up.Array())
		f.Objects = append(f.Objects, Object{
			ID:       uint32(id),
			Position: Vec3(obj.Transform.Position.Array()),
			Forward:  &fwd,
			Up:       &up,
			Bounds:   Bounds{Min: Vec3(obj.Bounds.Min.Array()), Max: Vec3(obj.Bounds.Max.Array())},
			Placed:   placed[id],
			Selected: w.Selection.Contains(id),
		})
		return true
	})
	return f
}

// Save writes a world as a scene file.
func Save(w *host.World, path string) error {
	data, err := yaml.Marshal(Capture(w))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
