// Package objects holds the live object table the forge tools read from.
package objects

import (
	"fmt"

	"github.com/Faultbox/forgelight/pkg/math"
)

// Index identifies a live object (datum index). None marks an empty slot.
type Index uint32

// None is the index used by unused placements and empty slots.
const None Index = 0xFFFFFFFF

func (i Index) String() string {
	if i == None {
		return "none"
	}
	return fmt.Sprintf("0x%08X", uint32(i))
}

// Object is a live object: orientation, position and local bounds.
type Object struct {
	// Transform is orthonormal; its position is the object origin.
	Transform math.Basis
	// Bounds is the local-space bounding box around the origin.
	Bounds math.AABB
}

// Center returns the world-space center of the object's bounds.
func (o Object) Center() math.Vec3 {
	return o.Transform.TransformPoint(o.Bounds.Center())
}

// Table is the ordered set of live objects.
// Enumeration follows insertion order; removal keeps the order of the rest.
type Table struct {
	order []Index
	byID  map[Index]*Object
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{byID: make(map[Index]*Object)}
}

// Add inserts or replaces an object. Replacing keeps its enumeration slot.
func (t *Table) Add(id Index, obj Object) {
	if existing, ok := t.byID[id]; ok {
		*existing = obj
		return
	}
	o := obj
	t.byID[id] = &o
	t.order = append(t.order, id)
}

// Remove deletes an object. Missing ids are ignored.
func (t *Table) Remove(id Index) {
	if _, ok := t.byID[id]; !ok {
		return
	}
	delete(t.byID, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Get returns the object with the given id.
func (t *Table) Get(id Index) (Object, bool) {
	o, ok := t.byID[id]
	if !ok {
		return Object{}, false
	}
	return *o, true
}

// Len returns the number of live objects.
func (t *Table) Len() int {
	return len(t.order)
}

// Indices returns the live ids in enumeration order.
func (t *Table) Indices() []Index {
	out := make([]Index, len(t.order))
	copy(out, t.order)
	return out
}

// Range calls fn for each live id in enumeration order until fn returns false.
func (t *Table) Range(fn func(id Index) bool) {
	for _, id := range t.order {
		if !fn(id) {
			return
		}
	}
}

// Transform returns the object's orthonormal transform, or identity for unknown ids.
func (t *Table) Transform(id Index) math.Basis {
	if o, ok := t.byID[id]; ok {
		return o.Transform
	}
	return math.IdentityBasis()
}

// BoundingBox returns the object's local bounds, or an empty box for unknown ids.
func (t *Table) BoundingBox(id Index) math.AABB {
	if o, ok := t.byID[id]; ok {
		return o.Bounds
	}
	return math.AABB{}
}

// Center returns the object's world-space center.
func (t *Table) Center(id Index) math.Vec3 {
	if o, ok := t.byID[id]; ok {
		return o.Center()
	}
	return math.Vec3{}
}
