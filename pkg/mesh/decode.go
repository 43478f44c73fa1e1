package mesh

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a supported mesh file encoding.
type Format string

const (
	FormatSTL Format = "stl"
	FormatOBJ Format = "obj"
	FormatPLY Format = "ply"
)

// FormatFromFilename derives the format from a file name's extension,
// case-insensitively. Unknown extensions yield ErrUnsupportedFormat.
func FormatFromFilename(name string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch ext {
	case "stl":
		return FormatSTL, nil
	case "obj":
		return FormatOBJ, nil
	case "ply":
		return FormatPLY, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// Decode parses raw file bytes into a Mesh according to the declared
// format. It is a pure function of its inputs: decoders hold no state
// between calls.
func Decode(data []byte, format Format) (*Mesh, error) {
	var (
		m   *Mesh
		err error
	)
	switch format {
	case FormatSTL:
		m, err = decodeSTL(data)
	case FormatOBJ:
		m, err = decodeOBJ(data)
	case FormatPLY:
		m, err = decodePLY(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if err := m.validate(); err != nil {
		if err == ErrMissingPositions {
			return nil, fmt.Errorf("%s: %w", format, ErrMissingPositions)
		}
		// Structural violations from any decoder surface uniformly.
		return nil, fmt.Errorf("%s: %w: %v", format, ErrMalformedFile, err)
	}
	return m, nil
}
