package math

// Basis is a 4x3 transform: three axes plus a position.
// An object's orientation is orthonormal; scaled copies are used to
// describe boxes whose axis lengths are the box extents.
type Basis struct {
	Forward  Vec3
	Left     Vec3
	Up       Vec3
	Position Vec3
}

// IdentityBasis returns axes X/Y/Z at the origin.
func IdentityBasis() Basis {
	return Basis{
		Forward: Vec3{1, 0, 0},
		Left:    Vec3{0, 1, 0},
		Up:      Vec3{0, 0, 1},
	}
}

// NewBasis builds an orthonormal basis from a forward and up hint.
// Left is derived as up × forward and up is re-orthogonalized.
func NewBasis(forward, up, position Vec3) Basis {
	f := forward.Normalize()
	l := up.Cross(f).Normalize()
	u := f.Cross(l)
	return Basis{Forward: f, Left: l, Up: u, Position: position}
}

// ScaleAxes returns b with each axis multiplied by the matching factor.
// Position is unchanged.
func (b Basis) ScaleAxes(forward, left, up float32) Basis {
	b.Forward = b.Forward.Scale(forward)
	b.Left = b.Left.Scale(left)
	b.Up = b.Up.Scale(up)
	return b
}

// TransformPoint maps a local point into world space.
func (b Basis) TransformPoint(p Vec3) Vec3 {
	return b.Position.
		Add(b.Forward.Scale(p.X)).
		Add(b.Left.Scale(p.Y)).
		Add(b.Up.Scale(p.Z))
}

// Rows returns the basis as three rows of four floats, axes and position
// interleaved per component:
//
//	[F.X L.X U.X P.X]
//	[F.Y L.Y U.Y P.Y]
//	[F.Z L.Z U.Z P.Z]
func (b Basis) Rows() [12]float32 {
	return [12]float32{
		b.Forward.X, b.Left.X, b.Up.X, b.Position.X,
		b.Forward.Y, b.Left.Y, b.Up.Y, b.Position.Y,
		b.Forward.Z, b.Left.Z, b.Up.Z, b.Position.Z,
	}
}
