package highlight

import "unsafe"

// Vertex is a position + UV vertex of the box template.
type Vertex struct {
	X, Y, Z float32
	U, V    float32
}

const (
	// FaceCount is the number of quads in the box template.
	FaceCount = 6
	// FaceVertexCount is the number of strip vertices per face.
	FaceVertexCount = 4
	// FacePrimitiveCount is the number of triangles per face.
	FacePrimitiveCount = FaceVertexCount - 2
	// VertexStride is the byte size of a Vertex.
	VertexStride = int(unsafe.Sizeof(Vertex{}))
)

// BoxVertices is a unit cube centered on the origin, one 4-vertex strip per face.
var BoxVertices = [FaceCount * FaceVertexCount]Vertex{
	// front
	{-0.5, 0.5, -0.5, 0.0, 0.0},
	{0.5, 0.5, -0.5, 0.5, 0.0},
	{-0.5, -0.5, -0.5, 0.0, 0.5},
	{0.5, -0.5, -0.5, 0.5, 0.5},
	// back
	{-0.5, 0.5, 0.5, 0.5, 0.0},
	{-0.5, -0.5, 0.5, 0.5, 0.5},
	{0.5, 0.5, 0.5, 0.0, 0.0},
	{0.5, -0.5, 0.5, 0.0, 0.5},
	// top
	{-0.5, 0.5, 0.5, 0.0, 0.0},
	{0.5, 0.5, 0.5, 0.5, 0.0},
	{-0.5, 0.5, -0.5, 0.0, 0.5},
	{0.5, 0.5, -0.5, 0.5, 0.5},
	// bottom
	{-0.5, -0.5, 0.5, 0.0, 0.0},
	{-0.5, -0.5, -0.5, 0.5, 0.0},
	{0.5, -0.5, 0.5, 0.0, 0.5},
	{0.5, -0.5, -0.5, 0.5, 0.5},
	// right
	{0.5, 0.5, -0.5, 0.0, 0.0},
	{0.5, 0.5, 0.5, 0.5, 0.0},
	{0.5, -0.5, -0.5, 0.0, 0.5},
	{0.5, -0.5, 0.5, 0.5, 0.5},
	// left
	{-0.5, 0.5, -0.5, 0.5, 0.0},
	{-0.5, -0.5, -0.5, 0.5, 0.5},
	{-0.5, 0.5, 0.5, 0.0, 0.0},
	{-0.5, -0.5, 0.5, 0.0, 0.5},
}

// Face returns the 4 strip vertices of face i.
func Face(i int) []Vertex {
	return BoxVertices[i*FaceVertexCount : (i+1)*FaceVertexCount]
}
