package mesh

import (
	"bytes"
	"encoding/binary"
	"math"
)

// cubeVertices are the 8 corners of an axis-aligned cube with the given
// side length, minimum corner at origin offset by (ox, oy, oz).
func cubeVertices(side, ox, oy, oz float64) []float64 {
	s := side
	return []float64{
		ox, oy, oz,
		ox + s, oy, oz,
		ox + s, oy + s, oz,
		ox, oy + s, oz,
		ox, oy, oz + s,
		ox + s, oy, oz + s,
		ox + s, oy + s, oz + s,
		ox, oy + s, oz + s,
	}
}

// cubeIndices triangulate the cube with consistent outward winding, so
// the signed-volume sum is exact.
func cubeIndices() []uint32 {
	return []uint32{
		0, 2, 1, 0, 3, 2, // bottom (-z)
		4, 5, 6, 4, 6, 7, // top (+z)
		0, 1, 5, 0, 5, 4, // front (-y)
		2, 3, 7, 2, 7, 6, // back (+y)
		0, 4, 7, 0, 7, 3, // left (-x)
		1, 2, 6, 1, 6, 5, // right (+x)
	}
}

// indexedCube builds an indexed cube mesh.
func indexedCube(side, ox, oy, oz float64) *Mesh {
	return &Mesh{
		Positions: cubeVertices(side, ox, oy, oz),
		Indices:   cubeIndices(),
	}
}

// soupCube expands the indexed cube into a triangle soup, the shape an
// STL decode produces.
func soupCube(side, ox, oy, oz float64) *Mesh {
	indexed := indexedCube(side, ox, oy, oz)
	soup := &Mesh{}
	for _, idx := range indexed.Indices {
		v := indexed.Vertex(int(idx))
		soup.Positions = append(soup.Positions, v.X, v.Y, v.Z)
	}
	return soup
}

// binarySTLCube encodes the cube as a binary STL byte buffer.
func binarySTLCube(side float64) []byte {
	cube := indexedCube(side, 0, 0, 0)

	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	binary.Write(&buf, binary.LittleEndian, uint32(cube.TriangleCount()))

	for t := 0; t < cube.TriangleCount(); t++ {
		tri := cube.Triangle(t)
		n := tri.Normal()
		for _, v := range [][3]float64{
			{n.X, n.Y, n.Z},
			{tri.V1.X, tri.V1.Y, tri.V1.Z},
			{tri.V2.X, tri.V2.Y, tri.V2.Z},
			{tri.V3.X, tri.V3.Y, tri.V3.Z},
		} {
			for _, f := range v {
				binary.Write(&buf, binary.LittleEndian, float32(f))
			}
		}
		binary.Write(&buf, binary.LittleEndian, uint16(0))
	}
	return buf.Bytes()
}

const asciiSTLTriangle = `solid tri
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
endsolid tri
`

const objCubeFile = `# unit test cube
o cube
v 0 0 0
v 2 0 0
v 2 2 0
v 0 2 0
v 0 0 2
v 2 0 2
v 2 2 2
v 0 2 2
f 1 3 2
f 1 4 3
f 5 6 7
f 5 7 8
f 1 2 6
f 1 6 5
f 3 4 8
f 3 8 7
f 1 5 8
f 1 8 4
f 2 3 7
f 2 7 6
`

const plyCubeASCII = `ply
format ascii 1.0
comment unit test cube
element vertex 8
property float x
property float y
property float z
element face 12
property list uchar int vertex_indices
end_header
0 0 0
2 0 0
2 2 0
0 2 0
0 0 2
2 0 2
2 2 2
0 2 2
3 0 2 1
3 0 3 2
3 4 5 6
3 4 6 7
3 0 1 5
3 0 5 4
3 2 3 7
3 2 7 6
3 0 4 7
3 0 7 3
3 1 2 6
3 1 6 5
`

// plyCubeBinary encodes the same cube with a binary_little_endian body.
func plyCubeBinary(side float64) []byte {
	var buf bytes.Buffer
	buf.WriteString("ply\n")
	buf.WriteString("format binary_little_endian 1.0\n")
	buf.WriteString("element vertex 8\n")
	buf.WriteString("property float x\nproperty float y\nproperty float z\n")
	buf.WriteString("element face 12\n")
	buf.WriteString("property list uchar int vertex_indices\n")
	buf.WriteString("end_header\n")

	for _, f := range cubeVertices(side, 0, 0, 0) {
		binary.Write(&buf, binary.LittleEndian, math.Float32bits(float32(f)))
	}
	indices := cubeIndices()
	for i := 0; i < len(indices); i += 3 {
		buf.WriteByte(3)
		for j := 0; j < 3; j++ {
			binary.Write(&buf, binary.LittleEndian, uint32(indices[i+j]))
		}
	}
	return buf.Bytes()
}
