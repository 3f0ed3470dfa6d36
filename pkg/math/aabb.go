package math

// AABB is an axis-aligned box in an object's local space.
type AABB struct {
	Min Vec3
	Max Vec3
}

// Size returns max - min per axis.
func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}
