package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/pkg/simulation"
)

var infoSliceCount int

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display measurements for a mesh file",
	Long:  "Decode and normalize a mesh file, then show vertex/face counts, bounding box, volume, surface area, and cutting-path statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().IntVarP(&infoSliceCount, "count", "n", 0, "Number of slicing intervals (default 20)")
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	result := parseFile(filename, infoSliceCount)

	fmt.Println("Mesh Information")
	fmt.Println("================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Vertices: %d\n", result.Metadata.VertexCount)
	fmt.Printf("  Faces: %d\n", result.Metadata.FaceCount)
	fmt.Printf("  Volume: %.6f cubic units\n", result.Metadata.Volume)
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.Metadata.SurfaceArea)

	fmt.Println("Bounding Box (normalized):")
	fmt.Printf("  Min: (%.3f, %.3f, %.3f)\n", result.BoundingBox.Min.X, result.BoundingBox.Min.Y, result.BoundingBox.Min.Z)
	fmt.Printf("  Max: (%.3f, %.3f, %.3f)\n", result.BoundingBox.Max.X, result.BoundingBox.Max.Y, result.BoundingBox.Max.Z)
	size := result.BoundingBox.Size()
	fmt.Printf("  Size: (%.3f, %.3f, %.3f)\n\n", size.X, size.Y, size.Z)

	fmt.Println("Cutting Paths:")
	fmt.Printf("  Contours: %d\n", len(result.CuttingPaths))
	totalPoints := 0
	for _, contour := range result.CuttingPaths {
		totalPoints += len(contour.Points)
	}
	fmt.Printf("  Total points: %d\n", totalPoints)
}

// parseFile runs the pipeline on a file or exits with an error message.
func parseFile(filename string, sliceCount int) *simulation.Result {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	result, err := simulation.Parse(data, filename, simulation.Options{SliceCount: sliceCount})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing mesh file: %v\n", err)
		os.Exit(1)
	}
	return result
}
