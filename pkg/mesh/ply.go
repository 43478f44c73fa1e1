package mesh

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// plyProperty is one declared property of a PLY element.
type plyProperty struct {
	name      string
	valueType string
	isList    bool
	countType string
}

// plyElement is one element group from a PLY header.
type plyElement struct {
	name       string
	count      int
	properties []plyProperty
}

type plyHeader struct {
	binary   bool
	elements []plyElement
}

var plyTypeSizes = map[string]int{
	"char": 1, "int8": 1, "uchar": 1, "uint8": 1,
	"short": 2, "int16": 2, "ushort": 2, "uint16": 2,
	"int": 4, "int32": 4, "uint": 4, "uint32": 4,
	"float": 4, "float32": 4,
	"double": 8, "float64": 8,
}

// decodePLY parses a PLY file (ASCII or binary little-endian) into a
// mesh. Files carrying a face element produce an indexed mesh; files
// that are pure point/vertex dumps come back non-indexed and are
// treated as triangle soup downstream.
func decodePLY(data []byte) (*Mesh, error) {
	reader := bufio.NewReader(bytes.NewReader(data))

	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, err
	}

	m := &Mesh{}
	for _, element := range header.elements {
		switch element.name {
		case "vertex":
			err = readPLYVertices(reader, header.binary, element, m)
		case "face":
			err = readPLYFaces(reader, header.binary, element, m)
		default:
			err = skipPLYElement(reader, header.binary, element)
		}
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

func parsePLYHeader(reader *bufio.Reader) (*plyHeader, error) {
	magic, err := readPLYLine(reader)
	if err != nil || magic != "ply" {
		return nil, fmt.Errorf("%w: missing ply magic", ErrMalformedFile)
	}

	header := &plyHeader{}
	formatSeen := false

	for {
		line, err := readPLYLine(reader)
		if err != nil {
			return nil, fmt.Errorf("%w: unterminated header", ErrMalformedFile)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "comment", "obj_info":
			continue

		case "format":
			if len(fields) < 2 {
				return nil, fmt.Errorf("%w: bad format statement", ErrMalformedFile)
			}
			switch fields[1] {
			case "ascii":
				header.binary = false
			case "binary_little_endian":
				header.binary = true
			default:
				return nil, fmt.Errorf("%w: unsupported ply encoding %q", ErrMalformedFile, fields[1])
			}
			formatSeen = true

		case "element":
			if len(fields) < 3 {
				return nil, fmt.Errorf("%w: bad element statement", ErrMalformedFile)
			}
			count, err := strconv.Atoi(fields[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("%w: bad element count %q", ErrMalformedFile, fields[2])
			}
			header.elements = append(header.elements, plyElement{name: fields[1], count: count})

		case "property":
			if len(header.elements) == 0 {
				return nil, fmt.Errorf("%w: property before element", ErrMalformedFile)
			}
			current := &header.elements[len(header.elements)-1]
			if len(fields) >= 5 && fields[1] == "list" {
				current.properties = append(current.properties, plyProperty{
					name:      fields[4],
					isList:    true,
					countType: fields[2],
					valueType: fields[3],
				})
			} else if len(fields) >= 3 {
				current.properties = append(current.properties, plyProperty{
					name:      fields[2],
					valueType: fields[1],
				})
			} else {
				return nil, fmt.Errorf("%w: bad property statement", ErrMalformedFile)
			}

		case "end_header":
			if !formatSeen {
				return nil, fmt.Errorf("%w: end_header before format", ErrMalformedFile)
			}
			return header, nil

		default:
			return nil, fmt.Errorf("%w: unknown header statement %q", ErrMalformedFile, fields[0])
		}
	}
}

// readPLYLine reads one header line. PLY headers are always text,
// regardless of body encoding.
func readPLYLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func readPLYVertices(reader *bufio.Reader, isBinary bool, element plyElement, m *Mesh) error {
	xi, yi, zi := plyPropertyIndex(element, "x"), plyPropertyIndex(element, "y"), plyPropertyIndex(element, "z")
	if xi < 0 || yi < 0 || zi < 0 {
		return fmt.Errorf("%w: vertex element lacks x/y/z properties", ErrMalformedFile)
	}
	nxi, nyi, nzi := plyPropertyIndex(element, "nx"), plyPropertyIndex(element, "ny"), plyPropertyIndex(element, "nz")
	hasNormals := nxi >= 0 && nyi >= 0 && nzi >= 0

	values := make([]float64, len(element.properties))
	for i := 0; i < element.count; i++ {
		if err := readPLYRow(reader, isBinary, element.properties, values); err != nil {
			return err
		}
		m.Positions = append(m.Positions, values[xi], values[yi], values[zi])
		if hasNormals {
			m.Normals = append(m.Normals, values[nxi], values[nyi], values[nzi])
		}
	}
	return nil
}

func readPLYFaces(reader *bufio.Reader, isBinary bool, element plyElement, m *Mesh) error {
	listIdx := -1
	for i, p := range element.properties {
		if p.isList && (p.name == "vertex_indices" || p.name == "vertex_index") {
			listIdx = i
			break
		}
	}
	if listIdx < 0 {
		return fmt.Errorf("%w: face element lacks a vertex index list", ErrMalformedFile)
	}

	for i := 0; i < element.count; i++ {
		for propIdx, p := range element.properties {
			if !p.isList {
				var discard [1]float64
				if err := readPLYScalars(reader, isBinary, p.valueType, discard[:]); err != nil {
					return err
				}
				continue
			}

			var countValue [1]float64
			if err := readPLYScalars(reader, isBinary, p.countType, countValue[:]); err != nil {
				return err
			}
			count := int(countValue[0])
			if count < 0 || count > 255 {
				return fmt.Errorf("%w: face with %d vertices", ErrMalformedFile, count)
			}
			entries := make([]float64, count)
			if err := readPLYScalarsN(reader, isBinary, p.valueType, entries); err != nil {
				return err
			}
			if propIdx != listIdx {
				continue
			}
			if count < 3 {
				return fmt.Errorf("%w: face with %d vertices", ErrMalformedFile, count)
			}
			face := make([]uint32, count)
			for j, e := range entries {
				face[j] = uint32(e)
			}
			for j := 1; j+1 < len(face); j++ {
				m.Indices = append(m.Indices, face[0], face[j], face[j+1])
			}
		}
	}
	return nil
}

func skipPLYElement(reader *bufio.Reader, isBinary bool, element plyElement) error {
	values := make([]float64, 1)
	for i := 0; i < element.count; i++ {
		for _, p := range element.properties {
			if p.isList {
				if err := readPLYScalars(reader, isBinary, p.countType, values); err != nil {
					return err
				}
				entries := make([]float64, int(values[0]))
				if err := readPLYScalarsN(reader, isBinary, p.valueType, entries); err != nil {
					return err
				}
			} else {
				if err := readPLYScalars(reader, isBinary, p.valueType, values); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func plyPropertyIndex(element plyElement, name string) int {
	for i, p := range element.properties {
		if p.name == name {
			return i
		}
	}
	return -1
}

// readPLYRow reads one full row of non-list properties.
func readPLYRow(reader *bufio.Reader, isBinary bool, properties []plyProperty, out []float64) error {
	if isBinary {
		for i, p := range properties {
			if err := readPLYScalars(reader, true, p.valueType, out[i:i+1]); err != nil {
				return err
			}
		}
		return nil
	}

	line, err := readPLYLine(reader)
	if err != nil {
		return fmt.Errorf("%w: truncated element data", ErrMalformedFile)
	}
	fields := strings.Fields(line)
	if len(fields) < len(properties) {
		return fmt.Errorf("%w: row has %d values, want %d", ErrMalformedFile, len(fields), len(properties))
	}
	for i := range properties {
		out[i], err = strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedFile, err)
		}
	}
	return nil
}

// readPLYScalars reads exactly one scalar of the given PLY type. In
// ASCII mode scalars are whitespace-separated tokens.
func readPLYScalars(reader *bufio.Reader, isBinary bool, valueType string, out []float64) error {
	return readPLYScalarsN(reader, isBinary, valueType, out[:1])
}

func readPLYScalarsN(reader *bufio.Reader, isBinary bool, valueType string, out []float64) error {
	if !isBinary {
		for i := range out {
			token, err := readPLYToken(reader)
			if err != nil {
				return fmt.Errorf("%w: truncated element data", ErrMalformedFile)
			}
			out[i], err = strconv.ParseFloat(token, 64)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrMalformedFile, err)
			}
		}
		return nil
	}

	size, ok := plyTypeSizes[valueType]
	if !ok {
		return fmt.Errorf("%w: unknown ply type %q", ErrMalformedFile, valueType)
	}
	buf := make([]byte, size)
	for i := range out {
		if _, err := io.ReadFull(reader, buf); err != nil {
			return fmt.Errorf("%w: truncated element data", ErrMalformedFile)
		}
		switch valueType {
		case "char", "int8":
			out[i] = float64(int8(buf[0]))
		case "uchar", "uint8":
			out[i] = float64(buf[0])
		case "short", "int16":
			out[i] = float64(int16(binary.LittleEndian.Uint16(buf)))
		case "ushort", "uint16":
			out[i] = float64(binary.LittleEndian.Uint16(buf))
		case "int", "int32":
			out[i] = float64(int32(binary.LittleEndian.Uint32(buf)))
		case "uint", "uint32":
			out[i] = float64(binary.LittleEndian.Uint32(buf))
		case "float", "float32":
			out[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(buf)))
		case "double", "float64":
			out[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf))
		}
	}
	return nil
}

// readPLYToken reads the next whitespace-delimited token from an ASCII
// body, crossing line boundaries.
func readPLYToken(reader *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		b, err := reader.ReadByte()
		if err != nil {
			if sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			if sb.Len() > 0 {
				return sb.String(), nil
			}
		default:
			sb.WriteByte(b)
		}
	}
}
