package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/pkg/simulation"
	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/pkg/watcher"
)

var watchSliceCount int

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-parse a mesh file whenever it changes",
	Long:  "Watch a mesh file and print updated measurements after every save. Useful while iterating on a model in a CAD tool.",
	Args:  cobra.ExactArgs(1),
	Run:   runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().IntVarP(&watchSliceCount, "count", "n", 0, "Number of slicing intervals (default 20)")
}

func runWatch(cmd *cobra.Command, args []string) {
	filename := args[0]

	// A failed parse must not end the watch: the file may be mid-save
	// or temporarily invalid.
	report := func(path string) {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			return
		}
		result, err := simulation.Parse(data, path, simulation.Options{SliceCount: watchSliceCount})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing mesh file: %v\n", err)
			return
		}
		fmt.Printf("%s: %d vertices, %d faces, volume %.3f, %d contours\n",
			path, result.Metadata.VertexCount, result.Metadata.FaceCount,
			result.Metadata.Volume, len(result.CuttingPaths))
	}

	// Initial parse before waiting for changes.
	report(filename)

	w, err := watcher.New(0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating watcher: %v\n", err)
		os.Exit(1)
	}
	defer w.Close()

	if err := w.Watch(filename, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error watching file: %v\n", err)
		os.Exit(1)
	}
	w.Start(func(err error) {
		fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
	})

	fmt.Println("Watching for changes. Press Ctrl+C to stop.")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}
