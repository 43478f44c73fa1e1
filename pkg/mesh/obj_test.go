package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOBJCube(t *testing.T) {
	m, err := Decode([]byte(objCubeFile), FormatOBJ)
	require.NoError(t, err)

	assert.True(t, m.IsIndexed())
	assert.Equal(t, 8, m.VertexCount())
	assert.Equal(t, 12, m.TriangleCount())
	assert.Equal(t, cubeVertices(2, 0, 0, 0), m.Positions)
}

func TestDecodeOBJFaceVariants(t *testing.T) {
	// Slash-separated texture/normal references and negative indices.
	data := []byte(`v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1/1 2/2/1 3//1
f -4 -2 -1
`)
	m, err := Decode(data, FormatOBJ)
	require.NoError(t, err)

	assert.Equal(t, 2, m.TriangleCount())
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)
}

func TestDecodeOBJQuadIsFanTriangulated(t *testing.T) {
	data := []byte(`v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`)
	m, err := Decode(data, FormatOBJ)
	require.NoError(t, err)

	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)
}

func TestDecodeOBJFirstObjectOnly(t *testing.T) {
	data := []byte(`o first
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
o second
v 5 5 5
`)
	m, err := Decode(data, FormatOBJ)
	require.NoError(t, err)

	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 1, m.TriangleCount())
}

func TestDecodeOBJMalformed(t *testing.T) {
	cases := map[string]string{
		"bad coordinate":  "v 0 zero 0\n",
		"short vertex":    "v 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n",
		"short face":      "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2\n",
		"index zero":      "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
		"index too large": "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n",
	}
	for name, input := range cases {
		_, err := Decode([]byte(input), FormatOBJ)
		assert.ErrorIs(t, err, ErrMalformedFile, name)
	}
}

func TestDecodeOBJNoVertices(t *testing.T) {
	_, err := Decode([]byte("# just a comment\n"), FormatOBJ)
	assert.ErrorIs(t, err, ErrMissingPositions)
}
