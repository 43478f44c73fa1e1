package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/internal/config"
	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/internal/server"
)

var (
	servePort   int
	serveConfig string
	serveDebug  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the simulator HTTP API",
	Long:  "Serve the upload, model, and prediction endpoints consumed by the browser UI.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Listen port (overrides config)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to settings file")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable request logging")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(serveConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	cache, err := server.NewCache(cfg.CachePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cache: %v\n", err)
		os.Exit(1)
	}
	defer cache.Close()

	srv := server.NewServer(cfg, cache)
	srv.SetDebug(serveDebug)
	if err := srv.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
