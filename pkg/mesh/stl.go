package mesh

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/pkg/geometry"
)

// binarySTLHeaderSize is the fixed 80-byte header plus the uint32
// triangle count.
const binarySTLHeaderSize = 84

// binarySTLRecordSize is one facet record: normal + 3 vertices as
// float32 triples plus the attribute byte count.
const binarySTLRecordSize = 50

// decodeSTL parses an STL file into a non-indexed triangle list. Each
// facet contributes exactly 3 vertices, no deduplication. The format
// variant (ASCII vs binary) is auto-detected.
func decodeSTL(data []byte) (*Mesh, error) {
	if isASCIISTL(data) {
		return decodeASCIISTL(data)
	}
	return decodeBinarySTL(data)
}

// isASCIISTL checks for the "solid" keyword that opens an ASCII STL.
// Some binary exporters also write "solid" into the 80-byte header, so
// a buffer large enough to be binary is additionally required to
// contain a "facet" keyword before it is treated as text.
func isASCIISTL(data []byte) bool {
	if !bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return false
	}
	if len(data) < binarySTLHeaderSize {
		return true
	}
	return bytes.Contains(data, []byte("facet"))
}

func decodeBinarySTL(data []byte) (*Mesh, error) {
	if len(data) < binarySTLHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is too small for a binary STL", ErrMalformedFile, len(data))
	}

	triangleCount := binary.LittleEndian.Uint32(data[80:84])
	payload := data[binarySTLHeaderSize:]
	if uint64(len(payload)) < uint64(triangleCount)*binarySTLRecordSize {
		return nil, fmt.Errorf("%w: header declares %d triangles but payload holds %d bytes",
			ErrMalformedFile, triangleCount, len(payload))
	}

	m := &Mesh{
		Positions: make([]float64, 0, triangleCount*9),
		Normals:   make([]float64, 0, triangleCount*9),
	}

	for i := uint32(0); i < triangleCount; i++ {
		record := payload[i*binarySTLRecordSize : (i+1)*binarySTLRecordSize]

		var values [12]float64
		for j := range values {
			bits := binary.LittleEndian.Uint32(record[j*4 : j*4+4])
			values[j] = float64(math.Float32frombits(bits))
		}
		// record[48:50] is the attribute byte count, ignored.

		normal := geometry.NewVector3(values[0], values[1], values[2])
		v1 := geometry.NewVector3(values[3], values[4], values[5])
		v2 := geometry.NewVector3(values[6], values[7], values[8])
		v3 := geometry.NewVector3(values[9], values[10], values[11])

		appendFacet(m, normal, v1, v2, v3)
	}

	return m, nil
}

func decodeASCIISTL(data []byte) (*Mesh, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	m := &Mesh{}
	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3

	for scanner.Scan() {
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				x, errX := strconv.ParseFloat(fields[2], 64)
				y, errY := strconv.ParseFloat(fields[3], 64)
				z, errZ := strconv.ParseFloat(fields[4], 64)
				if errX != nil || errY != nil || errZ != nil {
					return nil, fmt.Errorf("%w: invalid facet normal %q", ErrMalformedFile, scanner.Text())
				}
				currentNormal = geometry.NewVector3(x, y, z)
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: vertex statement with %d fields", ErrMalformedFile, len(fields))
			}
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			z, errZ := strconv.ParseFloat(fields[3], 64)
			if errX != nil || errY != nil || errZ != nil {
				return nil, fmt.Errorf("%w: invalid vertex %q", ErrMalformedFile, scanner.Text())
			}
			vertices = append(vertices, geometry.NewVector3(x, y, z))

		case "endfacet":
			if len(vertices) != 3 {
				return nil, fmt.Errorf("%w: facet with %d vertices", ErrMalformedFile, len(vertices))
			}
			appendFacet(m, currentNormal, vertices[0], vertices[1], vertices[2])
			vertices = vertices[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}

	return m, nil
}

// appendFacet adds one triangle to a soup mesh. A zero facet normal
// (permitted by both STL variants) is replaced by the computed face
// normal so the decoded mesh never needs a second normal pass.
func appendFacet(m *Mesh, normal, v1, v2, v3 geometry.Vector3) {
	if normal.Length() == 0 {
		normal = geometry.NewTriangle(v1, v2, v3).Normal()
	}
	for _, v := range []geometry.Vector3{v1, v2, v3} {
		m.Positions = append(m.Positions, v.X, v.Y, v.Z)
		m.Normals = append(m.Normals, normal.X, normal.Y, normal.Z)
	}
}
