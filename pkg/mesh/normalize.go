package mesh

import (
	"fmt"

	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/pkg/geometry"
)

// TargetSize is the edge length of the bounding cube all meshes are
// scaled into. The slicer and the renderer both assume this extent.
const TargetSize = 100.0

// Normalize re-centers the mesh at the origin and uniformly rescales it
// so its longest bounding-box dimension equals TargetSize. Missing
// per-vertex normals are derived first. The input mesh is not mutated;
// the returned bounding box is recomputed after the transform.
func Normalize(m *Mesh) (*Mesh, geometry.BoundingBox, error) {
	out := &Mesh{
		Positions: make([]float64, len(m.Positions)),
		Indices:   append([]uint32(nil), m.Indices...),
	}

	if len(m.Normals) == len(m.Positions) && len(m.Normals) > 0 {
		out.Normals = append([]float64(nil), m.Normals...)
	} else {
		out.Normals = computeVertexNormals(m)
	}

	bbox := m.BoundingBox()
	maxDimension := bbox.MaxDimension()
	if maxDimension == 0 {
		return nil, geometry.BoundingBox{}, fmt.Errorf("normalize: %w", ErrDegenerateGeometry)
	}

	center := bbox.Center()
	scale := TargetSize / maxDimension
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		out.Positions[i*3] = (v.X - center.X) * scale
		out.Positions[i*3+1] = (v.Y - center.Y) * scale
		out.Positions[i*3+2] = (v.Z - center.Z) * scale
	}

	return out, out.BoundingBox(), nil
}

// computeVertexNormals derives per-vertex normals as the normalized
// average of adjacent face normals. The cross product is left
// unnormalized during accumulation so larger faces weigh more, which
// matches how most mesh toolchains smooth normals.
func computeVertexNormals(m *Mesh) []float64 {
	normals := make([]float64, len(m.Positions))

	accumulate := func(vertexIdx int, n geometry.Vector3) {
		normals[vertexIdx*3] += n.X
		normals[vertexIdx*3+1] += n.Y
		normals[vertexIdx*3+2] += n.Z
	}

	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		faceNormal := tri.V2.Sub(tri.V1).Cross(tri.V3.Sub(tri.V1))
		if m.IsIndexed() {
			accumulate(int(m.Indices[t*3]), faceNormal)
			accumulate(int(m.Indices[t*3+1]), faceNormal)
			accumulate(int(m.Indices[t*3+2]), faceNormal)
		} else {
			accumulate(t*3, faceNormal)
			accumulate(t*3+1, faceNormal)
			accumulate(t*3+2, faceNormal)
		}
	}

	for i := 0; i < len(normals); i += 3 {
		n := geometry.NewVector3(normals[i], normals[i+1], normals[i+2]).Normalize()
		normals[i], normals[i+1], normals[i+2] = n.X, n.Y, n.Z
	}
	return normals
}
