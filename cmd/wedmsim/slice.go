package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	sliceCount int
	sliceJSON  bool
)

var sliceCmd = &cobra.Command{
	Use:   "slice [file]",
	Short: "Extract cutting-path contours from a mesh file",
	Long:  "Slice a normalized mesh with evenly spaced horizontal planes and print the resulting contours.",
	Args:  cobra.ExactArgs(1),
	Run:   runSlice,
}

func init() {
	rootCmd.AddCommand(sliceCmd)

	sliceCmd.Flags().IntVarP(&sliceCount, "count", "n", 0, "Number of slicing intervals (default 20)")
	sliceCmd.Flags().BoolVar(&sliceJSON, "json", false, "Emit contours as JSON")
}

func runSlice(cmd *cobra.Command, args []string) {
	result := parseFile(args[0], sliceCount)

	if sliceJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result.CuttingPaths); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding contours: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("Cutting paths: %d contours\n\n", len(result.CuttingPaths))
	for i, contour := range result.CuttingPaths {
		fmt.Printf("Contour %d: z=%.3f, %d points, length %.3f\n",
			i, contour.Z, len(contour.Points), contour.PathLength())
	}
}
