package objects

import (
	"testing"

	"github.com/Faultbox/forgelight/pkg/math"
)

func unitObject(pos math.Vec3) Object {
	b := math.IdentityBasis()
	b.Position = pos
	return Object{
		Transform: b,
		Bounds:    math.AABB{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}},
	}
}

func TestTableEnumerationOrder(t *testing.T) {
	tbl := NewTable()
	for _, id := range []Index{9, 3, 7} {
		tbl.Add(id, unitObject(math.Vec3{}))
	}

	var got []Index
	tbl.Range(func(id Index) bool {
		got = append(got, id)
		return true
	})

	want := []Index{9, 3, 7}
	if len(got) != len(want) {
		t.Fatalf("Range visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Range[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTableRangeStops(t *testing.T) {
	tbl := NewTable()
	for id := Index(0); id < 10; id++ {
		tbl.Add(id, unitObject(math.Vec3{}))
	}

	visited := 0
	tbl.Range(func(id Index) bool {
		visited++
		return visited < 4
	})
	if visited != 4 {
		t.Errorf("expected Range to stop after 4 calls, got %d", visited)
	}
}

func TestTableReplaceKeepsSlot(t *testing.T) {
	tbl := NewTable()
	tbl.Add(1, unitObject(math.Vec3{}))
	tbl.Add(2, unitObject(math.Vec3{}))
	tbl.Add(1, unitObject(math.Vec3{X: 4}))

	ids := tbl.Indices()
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("Indices() = %v, want [1 2]", ids)
	}
	if c := tbl.Center(1); c != (math.Vec3{X: 4}) {
		t.Errorf("Center(1) = %v, want (4, 0, 0)", c)
	}
}

func TestTableRemove(t *testing.T) {
	tbl := NewTable()
	tbl.Add(1, unitObject(math.Vec3{}))
	tbl.Add(2, unitObject(math.Vec3{}))
	tbl.Add(3, unitObject(math.Vec3{}))

	tbl.Remove(2)
	tbl.Remove(42)

	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	if _, ok := tbl.Get(2); ok {
		t.Error("object 2 should be gone")
	}
	ids := tbl.Indices()
	if ids[0] != 1 || ids[1] != 3 {
		t.Errorf("Indices() = %v, want [1 3]", ids)
	}
}

func TestObjectCenterOffsetBounds(t *testing.T) {
	obj := Object{
		Transform: math.NewBasis(math.Vec3{Y: 1}, math.Vec3{Z: 1}, math.Vec3{X: 10}),
		Bounds:    math.AABB{Min: math.Vec3{}, Max: math.Vec3{X: 2, Y: 2, Z: 2}},
	}
	// Local center (1,1,1); forward is +Y, left is -X, up is +Z.
	want := math.Vec3{X: 9, Y: 1, Z: 1}
	if got := obj.Center(); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
}

func TestIndexString(t *testing.T) {
	if None.String() != "none" {
		t.Errorf("None.String() = %q", None.String())
	}
	if Index(0x10).String() != "0x00000010" {
		t.Errorf("Index(0x10).String() = %q", Index(0x10).String())
	}
}
