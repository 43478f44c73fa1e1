// Package mesh decodes triangle meshes from STL, OBJ and PLY files and
// prepares them for slicing: normalization into a fixed-size bounding
// cube, per-vertex normals, and volume/surface-area metrics.
package mesh

import (
	"errors"

	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/pkg/geometry"
)

// Decode and normalization failures. Decoders wrap these with context;
// callers match them with errors.Is.
var (
	ErrUnsupportedFormat  = errors.New("unsupported mesh format")
	ErrMalformedFile      = errors.New("malformed mesh file")
	ErrMissingPositions   = errors.New("mesh contains no vertex positions")
	ErrDegenerateGeometry = errors.New("degenerate geometry: zero-extent bounding box")
)

// Mesh is a triangle mesh. All arrays are flat: Positions has 3 floats
// per vertex (x,y,z), Normals has 3 floats per vertex, Indices has 3
// entries per triangle. A mesh without Indices is a triangle soup where
// every 9 consecutive floats form one triangle.
type Mesh struct {
	Positions []float64 `json:"positions"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals   []float64 `json:"normals,omitempty"`
	Indices   []uint32  `json:"indices,omitempty"`
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	if len(m.Indices) > 0 {
		return len(m.Indices) / 3
	}
	return len(m.Positions) / 9
}

// IsIndexed reports whether triangles reference shared vertices.
func (m *Mesh) IsIndexed() bool {
	return len(m.Indices) > 0
}

// Vertex returns the position of vertex i.
func (m *Mesh) Vertex(i int) geometry.Vector3 {
	return geometry.Vector3{
		X: m.Positions[i*3],
		Y: m.Positions[i*3+1],
		Z: m.Positions[i*3+2],
	}
}

// Triangle returns the i-th triangle, resolving indices when present.
func (m *Mesh) Triangle(i int) geometry.Triangle {
	if m.IsIndexed() {
		return geometry.NewTriangle(
			m.Vertex(int(m.Indices[i*3])),
			m.Vertex(int(m.Indices[i*3+1])),
			m.Vertex(int(m.Indices[i*3+2])),
		)
	}
	return geometry.NewTriangle(
		m.Vertex(i*3),
		m.Vertex(i*3+1),
		m.Vertex(i*3+2),
	)
}

// BoundingBox computes the axis-aligned bounding box over all vertices.
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for i := 0; i < m.VertexCount(); i++ {
		bbox.Extend(m.Vertex(i))
	}
	return bbox
}

// validate checks the structural invariants shared by all decoders.
// Violations are reported as ErrMalformedFile or ErrMissingPositions so
// nothing format-specific leaks across the package boundary.
func (m *Mesh) validate() error {
	if len(m.Positions) == 0 {
		return ErrMissingPositions
	}
	if len(m.Positions)%3 != 0 {
		return errors.New("position array length is not a multiple of 3")
	}
	if len(m.Indices)%3 != 0 {
		return errors.New("index array length is not a multiple of 3")
	}
	vertexCount := uint32(m.VertexCount())
	for _, idx := range m.Indices {
		if idx >= vertexCount {
			return errors.New("triangle index out of range")
		}
	}
	return nil
}
