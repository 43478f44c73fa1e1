package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCentersAndScales(t *testing.T) {
	// Cube of side 20 with min corner at (10,10,10).
	m := indexedCube(20, 10, 10, 10)

	normalized, bbox, err := Normalize(m)
	require.NoError(t, err)

	center := bbox.Center()
	assert.InDelta(t, 0, center.X, 1e-9)
	assert.InDelta(t, 0, center.Y, 1e-9)
	assert.InDelta(t, 0, center.Z, 1e-9)
	assert.InDelta(t, TargetSize, bbox.MaxDimension(), 1e-9)

	// Volume scales by (100/20)^3 = 125: 20^3 * 125 = 1,000,000.
	assert.InDelta(t, 1_000_000, Volume(normalized), 1e-3)
	// Area scales by (100/20)^2 = 25: 6*20^2 * 25 = 60,000.
	assert.InDelta(t, 60_000, SurfaceArea(normalized), 1e-6)
}

func TestNormalizeNonUniformExtent(t *testing.T) {
	// A flat-ish box: only the longest axis reaches TargetSize.
	m := &Mesh{
		Positions: []float64{
			0, 0, 0,
			40, 0, 0,
			40, 10, 0,
			0, 10, 0,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}

	_, bbox, err := Normalize(m)
	require.NoError(t, err)

	size := bbox.Size()
	assert.InDelta(t, 100, size.X, 1e-9)
	assert.InDelta(t, 25, size.Y, 1e-9)
	assert.InDelta(t, 0, size.Z, 1e-9)
}

func TestNormalizeDegenerateGeometry(t *testing.T) {
	// All vertices coincide: zero-extent bounding box.
	m := &Mesh{
		Positions: []float64{5, 5, 5, 5, 5, 5, 5, 5, 5},
	}
	_, _, err := Normalize(m)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	m := indexedCube(2, 0, 0, 0)
	original := append([]float64(nil), m.Positions...)

	_, _, err := Normalize(m)
	require.NoError(t, err)
	assert.Equal(t, original, m.Positions)
}

func TestNormalizeDerivesVertexNormals(t *testing.T) {
	m := indexedCube(2, 0, 0, 0)
	require.Empty(t, m.Normals)

	normalized, _, err := Normalize(m)
	require.NoError(t, err)

	require.Len(t, normalized.Normals, len(normalized.Positions))
	for i := 0; i < normalized.VertexCount(); i++ {
		nx := normalized.Normals[i*3]
		ny := normalized.Normals[i*3+1]
		nz := normalized.Normals[i*3+2]
		length := nx*nx + ny*ny + nz*nz
		assert.InDelta(t, 1.0, length, 1e-9, "vertex %d normal should be unit length", i)
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	m := indexedCube(20, 10, 10, 10)

	n1, b1, err := Normalize(m)
	require.NoError(t, err)
	n2, b2, err := Normalize(m)
	require.NoError(t, err)

	assert.Equal(t, n1.Positions, n2.Positions)
	assert.Equal(t, n1.Normals, n2.Normals)
	assert.Equal(t, b1, b2)
}

func TestNormalizeSoupMesh(t *testing.T) {
	m := soupCube(4, -2, -2, -2)

	_, bbox, err := Normalize(m)
	require.NoError(t, err)
	assert.InDelta(t, TargetSize, bbox.MaxDimension(), 1e-9)
}
