// Package simulation runs the wire-EDM model pipeline: decode a mesh
// upload, normalize it into the machining envelope, measure it, slice
// it into cutting paths, and derive process analytics and predictions
// for the UI.
package simulation

import (
	"context"
	"fmt"

	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/pkg/geometry"
	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/pkg/mesh"
	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/pkg/slicer"
)

// Metadata summarizes the measured properties of a parsed model.
type Metadata struct {
	VertexCount int     `json:"vertexCount"`
	FaceCount   int     `json:"faceCount"`
	Volume      float64 `json:"volume"`
	SurfaceArea float64 `json:"surfaceArea"`
}

// Result is the aggregate produced for one successfully parsed upload.
// It is immutable after assembly: the renderer animates a transform,
// never the geometry itself.
type Result struct {
	Mesh         *mesh.Mesh           `json:"mesh"`
	BoundingBox  geometry.BoundingBox `json:"boundingBox"`
	CuttingPaths []slicer.Contour     `json:"cuttingPaths"`
	Metadata     Metadata             `json:"metadata"`
}

// Options tunes a pipeline run.
type Options struct {
	// SliceCount is the number of slicing intervals. Zero means
	// slicer.DefaultSliceCount.
	SliceCount int
}

// Parse runs the full pipeline on one uploaded file. Each call is an
// independent, stateless unit of work: either a complete Result comes
// back or an error does, never both.
func Parse(data []byte, filename string, opts Options) (*Result, error) {
	return ParseContext(context.Background(), data, filename, opts)
}

// ParseContext is Parse with cancellation between slicing iterations.
func ParseContext(ctx context.Context, data []byte, filename string, opts Options) (*Result, error) {
	format, err := mesh.FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}

	decoded, err := mesh.Decode(data, format)
	if err != nil {
		return nil, err
	}

	normalized, bbox, err := mesh.Normalize(decoded)
	if err != nil {
		return nil, err
	}

	contours, err := slicer.CuttingPathsContext(ctx, normalized, bbox, opts.SliceCount)
	if err != nil {
		return nil, fmt.Errorf("slicing %s: %w", filename, err)
	}

	return assemble(normalized, bbox, contours), nil
}

// assemble packages the pipeline outputs. Pure aggregation; failures
// only ever propagate from the stages feeding it.
func assemble(m *mesh.Mesh, bbox geometry.BoundingBox, contours []slicer.Contour) *Result {
	return &Result{
		Mesh:         m,
		BoundingBox:  bbox,
		CuttingPaths: contours,
		Metadata: Metadata{
			VertexCount: m.VertexCount(),
			FaceCount:   m.TriangleCount(),
			Volume:      mesh.Volume(m),
			SurfaceArea: mesh.SurfaceArea(m),
		},
	}
}
