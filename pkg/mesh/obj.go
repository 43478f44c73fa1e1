package mesh

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// decodeOBJ parses a Wavefront OBJ file into an indexed mesh. Only
// vertex positions and face connectivity are honored; texture and
// normal references in face elements are accepted and discarded, and
// parsing stops at the second object/group statement so multi-object
// files contribute their first sub-object only.
func decodeOBJ(data []byte) (*Mesh, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	m := &Mesh{}
	objectsSeen := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "o", "g":
			objectsSeen++
			if objectsSeen > 1 {
				// First sub-object only.
				return m, nil
			}

		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: vertex with %d components", ErrMalformedFile, lineNo, len(fields)-1)
			}
			for _, f := range fields[1:4] {
				value, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedFile, lineNo, err)
				}
				m.Positions = append(m.Positions, value)
			}

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: face with %d vertices", ErrMalformedFile, lineNo, len(fields)-1)
			}
			face := make([]uint32, 0, len(fields)-1)
			for _, element := range fields[1:] {
				idx, err := parseOBJIndex(element, m.VertexCount())
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedFile, lineNo, err)
				}
				face = append(face, idx)
			}
			// Fan-triangulate polygons with more than 3 corners.
			for i := 1; i+1 < len(face); i++ {
				m.Indices = append(m.Indices, face[0], face[i], face[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}

	return m, nil
}

// parseOBJIndex resolves one face element ("7", "7/2", "7/2/5", "7//5",
// "-1") to a zero-based vertex index. OBJ indices are one-based;
// negative values count back from the most recent vertex.
func parseOBJIndex(element string, vertexCount int) (uint32, error) {
	vertexPart := element
	if slash := strings.IndexByte(element, '/'); slash >= 0 {
		vertexPart = element[:slash]
	}
	value, err := strconv.Atoi(vertexPart)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q", element)
	}
	if value < 0 {
		value = vertexCount + value + 1
	}
	if value < 1 || value > vertexCount {
		return 0, fmt.Errorf("face index %q out of range (have %d vertices)", element, vertexCount)
	}
	return uint32(value - 1), nil
}
