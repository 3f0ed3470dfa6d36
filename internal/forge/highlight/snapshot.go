package highlight

import "github.com/Faultbox/forgelight/pkg/math"

// MaxItems is the capacity of the selection snapshot.
const MaxItems = 256

// BoxPadding enlarges boxes slightly so they don't z-fight the object.
const BoxPadding = 1.01

// Item is one selected object prepared for drawing.
type Item struct {
	// Transform maps the unit box onto the object: axes scaled by
	// extent*BoxPadding, position at the object's center.
	Transform math.Basis
	Width     float32
	Depth     float32
	Height    float32
}

// Snapshot is a fixed-capacity list of items, rebuilt every tick.
// It never allocates after construction.
type Snapshot struct {
	items [MaxItems]Item
	count int
}

// Reset drops every item.
func (s *Snapshot) Reset() {
	s.count = 0
}

// Next returns the next free slot, or false when full.
func (s *Snapshot) Next() (*Item, bool) {
	if s.count >= MaxItems {
		return nil, false
	}
	it := &s.items[s.count]
	s.count++
	return it, true
}

// Full reports whether no slot is left.
func (s *Snapshot) Full() bool {
	return s.count >= MaxItems
}

// Len returns the number of live items.
func (s *Snapshot) Len() int {
	return s.count
}

// Items returns the live items. The slice aliases the buffer and is only
// valid until the next Update.
func (s *Snapshot) Items() []Item {
	return s.items[:s.count]
}

// itemFor fills it from an object's transform, bounds and center.
func itemFor(it *Item, transform math.Basis, bounds math.AABB, center math.Vec3) {
	size := bounds.Size()
	it.Transform = transform.ScaleAxes(size.X*BoxPadding, size.Y*BoxPadding, size.Z*BoxPadding)
	it.Transform.Position = center
	it.Width = size.X
	it.Depth = size.Y
	it.Height = size.Z
}
