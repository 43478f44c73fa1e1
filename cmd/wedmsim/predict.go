package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/pkg/simulation"
)

var (
	predictParams simulation.ProcessParameters
	predictSeed   int64
)

var predictCmd = &cobra.Command{
	Use:   "predict [file]",
	Short: "Run process analytics and model predictions for a mesh file",
	Long: `Parse a mesh file and evaluate the derived process metrics plus the
SVM/ANN/ELM/GA regression stand-ins for the given machine parameters.`,
	Args: cobra.ExactArgs(1),
	Run:  runPredict,
}

func init() {
	rootCmd.AddCommand(predictCmd)

	defaults := simulation.DefaultParameters()
	predictCmd.Flags().Float64Var(&predictParams.Voltage, "voltage", defaults.Voltage, "Gap voltage (V)")
	predictCmd.Flags().Float64Var(&predictParams.Current, "current", defaults.Current, "Discharge current (A)")
	predictCmd.Flags().Float64Var(&predictParams.PulseOnTime, "pulse-on", defaults.PulseOnTime, "Pulse on time (µs)")
	predictCmd.Flags().Float64Var(&predictParams.PulseOffTime, "pulse-off", defaults.PulseOffTime, "Pulse off time (µs)")
	predictCmd.Flags().Float64Var(&predictParams.WireSpeed, "wire-speed", defaults.WireSpeed, "Wire feed speed (mm/s)")
	predictCmd.Flags().Float64Var(&predictParams.DielectricFlow, "dielectric-flow", defaults.DielectricFlow, "Dielectric flushing rate (L/min)")
	predictCmd.Flags().Float64Var(&predictParams.WireOffset, "wire-offset", defaults.WireOffset, "Wire path compensation (mm)")
	predictCmd.Flags().Float64Var(&predictParams.SparkGap, "spark-gap", defaults.SparkGap, "Spark gap (mm)")
	predictCmd.Flags().Int64Var(&predictSeed, "seed", 1, "Predictor coefficient seed")
}

func runPredict(cmd *cobra.Command, args []string) {
	if err := predictParams.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := parseFile(args[0], 0)
	metrics := simulation.Analyze(result, predictParams)

	fmt.Println("Process Metrics")
	fmt.Println("===============")
	fmt.Printf("  Material removal rate: %.3f cubic units/min\n", metrics.MaterialRemovalRate)
	fmt.Printf("  Estimated cut time: %.2f min\n", metrics.EstimatedCutTime)
	fmt.Printf("  Wire consumption: %.1f m\n", metrics.WireConsumption)
	fmt.Printf("  Total path length: %.3f units\n", metrics.TotalPathLength)
	fmt.Printf("  Contours: %d\n\n", metrics.ContourCount)

	predictions, err := simulation.PredictAll(predictParams, predictSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Model Predictions")
	fmt.Println("=================")
	for _, p := range predictions {
		fmt.Printf("  %-4s  MRR %.2f mm³/min  Ra %.2f µm  kerf %.3f mm  score %.2f\n",
			p.Kind, p.MaterialRemovalRate, p.SurfaceRoughness, p.KerfWidth, p.Score)
	}
}
