package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/version"
)

var rootCmd = &cobra.Command{
	Use:   "wedmsim",
	Short: "Wire-EDM process simulator for 3D mesh files",
	Long: `wedmsim ingests STL, OBJ and PLY mesh files and prepares them for a
simulated wire electrical-discharge-machining run: the mesh is normalized
into the machining envelope, measured, and sliced into horizontal cutting
paths. Derived process metrics and illustrative model predictions are
available per parameter set, and the serve command exposes the pipeline
to the browser UI.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
