// Package slicer extracts horizontal cross-section contours ("cutting
// paths") from a normalized triangle mesh. Contours drive both the cut
// animation and the wire-consumption analytics.
package slicer

import (
	"context"
	"math"

	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/pkg/geometry"
	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/pkg/mesh"
)

// DefaultSliceCount is the number of slicing intervals spanning the
// mesh's vertical extent when the caller does not override it.
const DefaultSliceCount = 20

// tolerance is the slack applied when testing whether a triangle edge
// crosses a slicing plane. Edges flatter than this are treated as
// plane-parallel and produce no intersection point.
const tolerance = 0.1

// Contour is one horizontal cross-section: an ordered point sequence
// all sharing the plane's Z. It is not guaranteed to close into a loop.
type Contour struct {
	Z      float64            `json:"z"`
	Points []geometry.Vector3 `json:"points"`
}

// CuttingPaths slices the mesh with sliceCount+1 evenly spaced planes
// between its Z extremes and returns the non-empty contours in
// bottom-to-top order. Heights intersecting no geometry are skipped, so
// the result may hold fewer than sliceCount+1 entries.
func CuttingPaths(m *mesh.Mesh, bbox geometry.BoundingBox, sliceCount int) []Contour {
	contours, _ := CuttingPathsContext(context.Background(), m, bbox, sliceCount)
	return contours
}

// CuttingPathsContext is CuttingPaths with cooperative cancellation
// between plane iterations. Slicing dominates pipeline cost on large
// meshes, so this is the one seam where an upload replacing another
// mid-flight can stop early.
func CuttingPathsContext(ctx context.Context, m *mesh.Mesh, bbox geometry.BoundingBox, sliceCount int) ([]Contour, error) {
	if sliceCount <= 0 {
		sliceCount = DefaultSliceCount
	}

	minZ := bbox.Min.Z
	sliceHeight := (bbox.Max.Z - bbox.Min.Z) / float64(sliceCount)

	var contours []Contour
	for i := 0; i <= sliceCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		z := minZ + float64(i)*sliceHeight
		contour := SliceAt(m, z)
		if len(contour.Points) > 0 {
			contours = append(contours, contour)
		}
	}
	return contours, nil
}

// SliceAt intersects every triangle edge with the plane Z = z and
// stitches the resulting point pool into a path. Pools of fewer than 3
// points are returned in collection order, unstitched.
func SliceAt(m *mesh.Mesh, z float64) Contour {
	var points []geometry.Vector3

	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		edges := [3][2]geometry.Vector3{
			{tri.V1, tri.V2},
			{tri.V2, tri.V3},
			{tri.V3, tri.V1},
		}
		for _, edge := range edges {
			if p, ok := intersectEdge(edge[0], edge[1], z); ok {
				points = append(points, p)
			}
		}
	}

	if len(points) >= 3 {
		points = stitch(points)
	}
	return Contour{Z: z, Points: points}
}

// intersectEdge returns the point where the segment start→end crosses
// the plane Z = z, if it does. The interpolated point's Z is snapped to
// exactly z to remove floating-point drift.
func intersectEdge(start, end geometry.Vector3, z float64) (geometry.Vector3, bool) {
	crosses := (start.Z <= z+tolerance && end.Z >= z-tolerance) ||
		(end.Z <= z+tolerance && start.Z >= z-tolerance)
	if !crosses {
		return geometry.Vector3{}, false
	}
	if math.Abs(end.Z-start.Z) <= tolerance {
		// Plane-parallel or degenerate edge.
		return geometry.Vector3{}, false
	}

	t := (z - start.Z) / (end.Z - start.Z)
	p := start.Lerp(end, t)
	p.Z = z
	return p, true
}

// PathLength returns the total polyline length of a contour.
func (c Contour) PathLength() float64 {
	total := 0.0
	for i := 1; i < len(c.Points); i++ {
		total += c.Points[i].Distance(c.Points[i-1])
	}
	return total
}
