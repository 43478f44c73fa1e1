package mesh

import "math"

// Volume computes the enclosed volume via the divergence theorem: the
// signed tetrahedron volumes from the origin to each triangle are
// accumulated and the absolute value of the sum is returned. The result
// is exact for a closed, consistently wound mesh; open or mixed-winding
// meshes yield an approximation.
func Volume(m *Mesh) float64 {
	total := 0.0
	for i := 0; i < m.TriangleCount(); i++ {
		total += m.Triangle(i).SignedVolume()
	}
	return math.Abs(total)
}

// SurfaceArea sums the area of every triangle.
func SurfaceArea(m *Mesh) float64 {
	total := 0.0
	for i := 0; i < m.TriangleCount(); i++ {
		total += m.Triangle(i).Area()
	}
	return total
}
